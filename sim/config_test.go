package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_Valid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"size one", func(c *Config) { c.Size = 1 }, true},
		{"size zero", func(c *Config) { c.Size = 0 }, true},
		{"negative steps", func(c *Config) { c.NSteps = -1 }, true},
		{"zero steps ok", func(c *Config) { c.NSteps = 0 }, false},
		{"zero interval", func(c *Config) { c.Interval = 0 }, true},
		{"zero start temp", func(c *Config) { c.StartTemp = 0 }, true},
		{"negative width param", func(c *Config) { c.WidthParam = -5 }, true},
		{"trace decisions ok", func(c *Config) { c.TraceLevel = "decisions" }, false},
		{"unknown trace level", func(c *Config) { c.TraceLevel = "everything" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewSimulation_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 1
	if _, err := NewSimulation(cfg); err == nil {
		t.Fatal("expected error for size < 2")
	}
}
