// Package config provides YAML-based game configuration loading with
// embedded defaults.
package config

// Config contains the tunable presentation and timing parameters. Gameplay
// rules themselves are fixed.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Timing TimingConfig `yaml:"timing"`
	Colors ColorConfig  `yaml:"colors"`
	Audio  AudioConfig  `yaml:"audio"`
}

// GridConfig defines the entity grid.
type GridConfig struct {
	// EntitySize is the side length, in pixels, of every entity square.
	// The playfield is truncated to a whole number of cells of this size.
	EntitySize int `yaml:"entity_size"`
}

// TimingConfig defines the simulation clock.
type TimingConfig struct {
	// FPS is the number of fixed simulation steps per second.
	FPS int `yaml:"fps"`
}

// ColorConfig names the colors of the drawable elements.
type ColorConfig struct {
	Snake  string `yaml:"snake"`
	Food   string `yaml:"food"`
	Text   string `yaml:"text"`
	Border string `yaml:"border"`
}

// AudioConfig controls the sound cues.
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the hardcoded default configuration, used when the
// embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Grid:   GridConfig{EntitySize: 40},
		Timing: TimingConfig{FPS: 10},
		Colors: ColorConfig{
			Snake:  "green",
			Food:   "red",
			Text:   "bright-white",
			Border: "gray",
		},
		Audio: AudioConfig{Enabled: true},
	}
}

// fillDefaults replaces zero values with defaults so a partial config file
// only overrides what it names.
func (c *Config) fillDefaults() {
	def := Default()
	if c.Grid.EntitySize <= 0 {
		c.Grid.EntitySize = def.Grid.EntitySize
	}
	if c.Timing.FPS <= 0 {
		c.Timing.FPS = def.Timing.FPS
	}
	if c.Colors.Snake == "" {
		c.Colors.Snake = def.Colors.Snake
	}
	if c.Colors.Food == "" {
		c.Colors.Food = def.Colors.Food
	}
	if c.Colors.Text == "" {
		c.Colors.Text = def.Colors.Text
	}
	if c.Colors.Border == "" {
		c.Colors.Border = def.Colors.Border
	}
}
