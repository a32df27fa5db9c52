package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/contagion/config"
)

// options are the front-end flags that never reach the core config
type options struct {
	configPath string
	debug      bool
	mute       bool

	ticks int
	dt    string
	chart string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "contagion: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := config.NewViper()
	opts := &options{}

	root := &cobra.Command{
		Use:           "contagion",
		Short:         "Epidemic spread among wandering agents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "TOML config file")
	pf.Uint64("seed", 0, "random seed, 0 picks one from the clock")
	pf.Int("count", config.Default().PersonCount, "healthy agents spawned next to patient zero")
	pf.String("broadphase", config.Default().Broadphase, "contact broadphase: scan, grid, rtree")
	pf.Int("workers", config.Default().Workers, "contact detection goroutines")
	pf.BoolVar(&opts.debug, "debug", false, "write debug log under logs/")
	bindFlags(v, root)

	run := &cobra.Command{
		Use:   "run",
		Short: "Interactive terminal view",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, opts.configPath)
			if err != nil {
				return err
			}
			return runInteractive(cfg, opts)
		},
	}
	run.Flags().BoolVar(&opts.mute, "mute", false, "start with sound off")

	headless := &cobra.Command{
		Use:   "headless",
		Short: "Run without a screen and print a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, opts.configPath)
			if err != nil {
				return err
			}
			return runHeadless(cmd.OutOrStdout(), cfg, opts)
		},
	}
	hf := headless.Flags()
	hf.IntVar(&opts.ticks, "ticks", 3000, "number of ticks to simulate")
	hf.StringVar(&opts.dt, "dt", "16ms", "fixed tick duration")
	hf.StringVar(&opts.chart, "chart", "", "write the epidemic curve to this PNG")

	root.AddCommand(run, headless)
	return root
}

// bindFlags maps persistent flags onto config keys so flags override file and environment
func bindFlags(v *viper.Viper, root *cobra.Command) {
	pf := root.PersistentFlags()
	_ = v.BindPFlag("seed", pf.Lookup("seed"))
	_ = v.BindPFlag("person_count", pf.Lookup("count"))
	_ = v.BindPFlag("broadphase", pf.Lookup("broadphase"))
	_ = v.BindPFlag("workers", pf.Lookup("workers"))
}
