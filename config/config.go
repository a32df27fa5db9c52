// Package config holds the tunables of a simulation run and loads them from
// defaults, an optional TOML file, CONTAGION_* environment variables and bound flags
package config

import (
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/contagion/parameter"
)

// ErrInvalidConfig is the cause of every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full set of simulation tunables
// Zero value is not usable; start from Default()
type Config struct {
	PersonCount int     `mapstructure:"person_count"`
	PersonSpeed float64 `mapstructure:"person_speed"`
	PersonSize  float64 `mapstructure:"person_size"`
	BoxSize     float64 `mapstructure:"box_size"`
	PlayerSpeed float64 `mapstructure:"player_speed"`

	ResteerPeriod     time.Duration `mapstructure:"resteer_period"`
	InfectionCooldown time.Duration `mapstructure:"infection_cooldown"`
	InfectionOdds     int           `mapstructure:"infection_odds"`

	// Seed of the default random source; 0 picks a time-based seed
	Seed uint64 `mapstructure:"seed"`

	Broadphase  string `mapstructure:"broadphase"`
	ContactMode string `mapstructure:"contact_mode"`
	// Workers splits contact detection; 0 and 1 both mean a single goroutine
	Workers int `mapstructure:"workers"`

	ClampPlayer      bool `mapstructure:"clamp_player"`
	PlayerInfectable bool `mapstructure:"player_infectable"`
}

// Default mirrors the parameter constants
func Default() Config {
	return Config{
		PersonCount:       parameter.PersonCount,
		PersonSpeed:       parameter.PersonSpeed,
		PersonSize:        parameter.PersonSize,
		BoxSize:           parameter.BoxSize,
		PlayerSpeed:       parameter.PlayerSpeed,
		ResteerPeriod:     parameter.ResteerPeriod,
		InfectionCooldown: parameter.InfectionCooldown,
		InfectionOdds:     parameter.InfectionOdds,
		Broadphase:        parameter.BroadphaseGrid,
		ContactMode:       parameter.ContactPair,
		Workers:           1,
	}
}

// Validate rejects configurations that would produce degenerate state
func (c Config) Validate() error {
	switch {
	case c.PersonCount < 0:
		return errors.Wrapf(ErrInvalidConfig, "person_count %d is negative", c.PersonCount)
	case !finite(c.BoxSize), !finite(c.PersonSize), !finite(c.PersonSpeed), !finite(c.PlayerSpeed):
		return errors.Wrapf(ErrInvalidConfig, "box_size %g, person_size %g, person_speed %g and player_speed %g must be finite",
			c.BoxSize, c.PersonSize, c.PersonSpeed, c.PlayerSpeed)
	case c.BoxSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "box_size %g must be positive", c.BoxSize)
	case c.PersonSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "person_size %g must be positive", c.PersonSize)
	case c.PersonSpeed < 0:
		return errors.Wrapf(ErrInvalidConfig, "person_speed %g is negative", c.PersonSpeed)
	case c.PlayerSpeed < 0:
		return errors.Wrapf(ErrInvalidConfig, "player_speed %g is negative", c.PlayerSpeed)
	case c.ResteerPeriod <= 0:
		return errors.Wrapf(ErrInvalidConfig, "resteer_period %s must be positive", c.ResteerPeriod)
	case c.InfectionCooldown <= 0:
		return errors.Wrapf(ErrInvalidConfig, "infection_cooldown %s must be positive", c.InfectionCooldown)
	case c.InfectionOdds < 1:
		return errors.Wrapf(ErrInvalidConfig, "infection_odds %d must be at least 1", c.InfectionOdds)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "workers %d is negative", c.Workers)
	}

	switch c.Broadphase {
	case parameter.BroadphaseScan, parameter.BroadphaseGrid, parameter.BroadphaseRTree:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown broadphase %q", c.Broadphase)
	}

	switch c.ContactMode {
	case parameter.ContactPair, parameter.ContactAgent:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown contact_mode %q", c.ContactMode)
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ClampMin is the lower confinement bound on both axes
func (c Config) ClampMin() float64 {
	return -c.BoxSize/2 - c.PersonSize/2
}

// ClampMax is the upper confinement bound on both axes
func (c Config) ClampMax() float64 {
	return c.BoxSize/2 - c.PersonSize/2
}
