package config

import (
	"fmt"
)

// Mode selects how the target niceness of a newly focused process is
// computed from its current niceness.
type Mode string

const (
	// ModeAdditive adds Value to the process's current niceness.
	ModeAdditive Mode = "additive"
	// ModeAbsolute sets the niceness to Value outright.
	ModeAbsolute Mode = "absolute"
)

// Niceness bounds on Linux (lower is more favorable).
const (
	NiceMin = -20
	NiceMax = 19
)

// Priority describes the adjustment applied to the focused process.
// It is read once at startup and never mutated afterwards.
type Priority struct {
	Mode  Mode `json:"mode" yaml:"mode"`
	Value int  `json:"value" yaml:"value"`
}

// Target computes the niceness to apply given the process's current value.
func (p Priority) Target(current int) int {
	if p.Mode == ModeAbsolute {
		return p.Value
	}
	return current + p.Value
}

// APIConfig configures the optional HTTP status API.
type APIConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Port    int  `json:"port" yaml:"port"`
}

// Config is the effective runtime configuration, assembled from command-line
// flags and FOCUSNICE_* environment variables. There is deliberately no
// configuration file.
type Config struct {
	Priority Priority  `json:"priority" yaml:"priority"`
	LogLevel string    `json:"log_level" yaml:"log_level"`
	LogJSON  bool      `json:"log_json" yaml:"log_json"`
	API      APIConfig `json:"api" yaml:"api"`
}

// Default returns the configuration used when no flags are given: raise the
// focused process by one niceness step.
func Default() Config {
	return Config{
		Priority: Priority{Mode: ModeAdditive, Value: -1},
		LogLevel: "info",
		API: APIConfig{
			Enabled: false,
			Port:    8089,
		},
	}
}

// Validate checks the configuration for values the kernel would reject.
func (c *Config) Validate() error {
	switch c.Priority.Mode {
	case ModeAdditive, ModeAbsolute:
	default:
		return fmt.Errorf("invalid priority mode: %q", c.Priority.Mode)
	}

	if c.Priority.Mode == ModeAbsolute {
		if c.Priority.Value < NiceMin || c.Priority.Value > NiceMax {
			return fmt.Errorf("absolute niceness %d out of range (%d..%d)",
				c.Priority.Value, NiceMin, NiceMax)
		}
	} else {
		// A delta larger than the whole niceness range can never do
		// anything the kernel would accept.
		if c.Priority.Value < NiceMin-NiceMax || c.Priority.Value > NiceMax-NiceMin {
			return fmt.Errorf("niceness delta %d out of range (%d..%d)",
				c.Priority.Value, NiceMin-NiceMax, NiceMax-NiceMin)
		}
	}

	if c.API.Enabled && (c.API.Port < 1 || c.API.Port > 65535) {
		return fmt.Errorf("invalid API port: %d", c.API.Port)
	}

	return nil
}
