package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// IconOptions holds all configuration for an icon generation run.
// Environment values provide defaults; command-line flags override them.
type IconOptions struct {
	OutDir  string `env:"DDD_ICONS_OUT_DIR" envDefault:"assets/event-icons"`
	Size    int    `env:"DDD_ICONS_SIZE" envDefault:"24"`
	Quiet   bool   `env:"DDD_ICONS_QUIET"`
	NoColor bool   // set from NO_COLOR, see LoadIconOptions
}

// colorEnv follows the NO_COLOR convention: any non-empty value disables
// color, so the variable is read as a string rather than a bool.
type colorEnv struct {
	NoColor string `env:"NO_COLOR"`
}

// LoadIconOptions reads IconOptions from the environment. Variables from the
// given dotenv files are loaded first without overriding ones already set;
// with no files, ".env" in the working directory is tried. Missing dotenv
// files are ignored.
func LoadIconOptions(dotenv ...string) (IconOptions, error) {
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return IconOptions{}, fmt.Errorf("loading dotenv: %w", err)
	}

	var opts IconOptions
	if err := env.Parse(&opts); err != nil {
		return IconOptions{}, fmt.Errorf("parse env: %w", err)
	}
	var color colorEnv
	if err := env.Parse(&color); err != nil {
		return IconOptions{}, fmt.Errorf("parse env: %w", err)
	}
	opts.NoColor = color.NoColor != ""
	return opts, nil
}
