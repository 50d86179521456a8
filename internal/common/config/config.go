package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
)

// ============================================================
// Configuration
// ============================================================

type Config struct {
	Port           string `env:"PORT"            envDefault:"3001"`
	Environment    string `env:"ENV"             envDefault:"development"`
	ReadTimeout    int    `env:"READ_TIMEOUT"    envDefault:"10"`
	WriteTimeout   int    `env:"WRITE_TIMEOUT"   envDefault:"10"`
	DBPath         string `env:"DB_PATH"         envDefault:"data/db/geometry.db"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations/001_init_programs.sql"`
	FontPath       string `env:"FONT_PATH"`
	RenderWidth    int    `env:"RENDER_WIDTH"    envDefault:"800"`
	RenderHeight   int    `env:"RENDER_HEIGHT"   envDefault:"600"`
	MaxFrames      int    `env:"MAX_FRAMES"      envDefault:"600"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load reads the configuration from environment variables. Malformed values
// are logged and the defaults are used instead.
func Load() *Config {
	cfg, err := parse(env.Options{})
	if err != nil {
		log.Printf("[CONFIG] %v, using defaults", err)
		return defaults()
	}
	return cfg
}

// defaults parses the envDefault tags alone. It panics if they are malformed.
func defaults() *Config {
	cfg, err := parse(env.Options{Environment: map[string]string{}})
	if err != nil {
		panic(fmt.Sprintf("config defaults: %v", err))
	}
	return cfg
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
