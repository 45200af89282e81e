package config

import "testing"

func TestPriorityTarget(t *testing.T) {
	tests := []struct {
		name    string
		prio    Priority
		current int
		want    int
	}{
		{"additive negative delta", Priority{Mode: ModeAdditive, Value: -10}, 5, -5},
		{"additive positive delta", Priority{Mode: ModeAdditive, Value: 3}, 0, 3},
		{"additive zero", Priority{Mode: ModeAdditive, Value: 0}, 7, 7},
		{"absolute ignores current", Priority{Mode: ModeAbsolute, Value: -10}, 5, -10},
		{"absolute zero", Priority{Mode: ModeAbsolute, Value: 0}, 19, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.prio.Target(tt.current); got != tt.want {
				t.Errorf("Target(%d) = %d, want %d", tt.current, got, tt.want)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"absolute in range", func(c *Config) {
			c.Priority = Priority{Mode: ModeAbsolute, Value: -20}
		}, false},
		{"absolute below range", func(c *Config) {
			c.Priority = Priority{Mode: ModeAbsolute, Value: -21}
		}, true},
		{"absolute above range", func(c *Config) {
			c.Priority = Priority{Mode: ModeAbsolute, Value: 20}
		}, true},
		{"delta too large", func(c *Config) {
			c.Priority = Priority{Mode: ModeAdditive, Value: -40}
		}, true},
		{"unknown mode", func(c *Config) {
			c.Priority.Mode = "sideways"
		}, true},
		{"bad api port", func(c *Config) {
			c.API.Enabled = true
			c.API.Port = 0
		}, true},
		{"api port ignored when disabled", func(c *Config) {
			c.API.Enabled = false
			c.API.Port = 0
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
