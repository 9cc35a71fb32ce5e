package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/starchart/parameter"
	"github.com/lixenwraith/starchart/viewmode"
)

// Config holds viewer settings loadable from a TOML file. Zero-value
// fields fall back to defaults at load time
type Config struct {
	// TickRate is simulation steps per second
	TickRate int `toml:"tick_rate"`
	// ViewMode is the startup view mode id
	ViewMode string `toml:"view_mode"`
	// TimeMultiplier is the startup simulation speed
	TimeMultiplier float64 `toml:"time_multiplier"`
	// ColorMode selects terminal color handling: auto, truecolor, 256
	ColorMode string `toml:"color_mode"`
	// SystemFile overrides the embedded sample system
	SystemFile string `toml:"system_file"`
	// Seed fixes orbital phase randomization; 0 means time-based
	Seed int64 `toml:"seed"`
	// Debug enables file logging and the status overlay
	Debug bool `toml:"debug"`
}

// Default returns the baseline configuration
func Default() Config {
	return Config{
		TickRate:       parameter.TickRate,
		ViewMode:       string(viewmode.Realistic),
		TimeMultiplier: parameter.DefaultTimeMultiplier,
		ColorMode:      "auto",
	}
}

// Load reads a TOML config file, layering it over defaults. A missing
// file is not an error; a malformed or invalid one is
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config read: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config parse: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.TickRate < 1 || c.TickRate > 240 {
		return fmt.Errorf("config: tick_rate %d outside [1, 240]", c.TickRate)
	}
	if _, ok := viewmode.Get(viewmode.ID(c.ViewMode)); !ok {
		return fmt.Errorf("config: unknown view_mode %q", c.ViewMode)
	}
	if c.TimeMultiplier < parameter.TimeMultiplierMin || c.TimeMultiplier > parameter.TimeMultiplierMax {
		return fmt.Errorf("config: time_multiplier %v outside [%v, %v]",
			c.TimeMultiplier, parameter.TimeMultiplierMin, parameter.TimeMultiplierMax)
	}
	switch c.ColorMode {
	case "auto", "truecolor", "256":
	default:
		return fmt.Errorf("config: unknown color_mode %q", c.ColorMode)
	}
	return nil
}
