package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. CONTAGION_PERSON_COUNT=200
const EnvPrefix = "CONTAGION"

// NewViper returns a viper instance preloaded with defaults and environment binding
// Callers may bind CLI flags onto it before Load
func NewViper() *viper.Viper {
	v := viper.New()
	d := Default()

	v.SetDefault("person_count", d.PersonCount)
	v.SetDefault("person_speed", d.PersonSpeed)
	v.SetDefault("person_size", d.PersonSize)
	v.SetDefault("box_size", d.BoxSize)
	v.SetDefault("player_speed", d.PlayerSpeed)
	v.SetDefault("resteer_period", d.ResteerPeriod)
	v.SetDefault("infection_cooldown", d.InfectionCooldown)
	v.SetDefault("infection_odds", d.InfectionOdds)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("broadphase", d.Broadphase)
	v.SetDefault("contact_mode", d.ContactMode)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("clamp_player", d.ClampPlayer)
	v.SetDefault("player_infectable", d.PlayerInfectable)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the optional TOML file at path, decodes and validates
// An empty path skips the file layer
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
