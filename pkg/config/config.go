package config

import (
	"strings"

	"github.com/arthur-debert/fancy/pkg/errors"
)

// Color modes accepted by render.color
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the complete fancy configuration
type Config struct {
	Render RenderConfig `koanf:"render"`
	Gen    GenConfig    `koanf:"gen"`
	Log    LogConfig    `koanf:"log"`
}

// RenderConfig controls `fancy render`
type RenderConfig struct {
	Color   string `koanf:"color"`
	Newline bool   `koanf:"newline"`
}

// GenConfig controls code generation
type GenConfig struct {
	Package  string   `koanf:"package"`
	Output   string   `koanf:"output"`
	Dir      string   `koanf:"dir"`
	Catalogs []string `koanf:"catalogs"`
}

// LogConfig controls logging
type LogConfig struct {
	File bool `koanf:"file"`
}

// Validate checks values that cannot be expressed by types alone
func (c *Config) Validate() error {
	switch strings.ToLower(c.Render.Color) {
	case ColorAuto, ColorAlways, ColorNever:
		c.Render.Color = strings.ToLower(c.Render.Color)
	default:
		return errors.Newf(errors.ErrConfigValid,
			"render.color must be one of auto, always, never (got %q)", c.Render.Color).
			WithDetail("key", "render.color")
	}

	if strings.TrimSpace(c.Gen.Package) == "" {
		return errors.New(errors.ErrConfigValid, "gen.package must not be empty").
			WithDetail("key", "gen.package")
	}
	if c.Gen.Output != "" && !strings.HasSuffix(c.Gen.Output, ".go") {
		return errors.Newf(errors.ErrConfigValid, "gen.output must be a .go file (got %q)", c.Gen.Output).
			WithDetail("key", "gen.output")
	}
	return nil
}
