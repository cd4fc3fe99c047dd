package logger

import (
	"os"
	"strings"
	"time"

	"github.com/lshigami/itimock/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger from the process environment so
// config loading itself is logged. Apply re-runs the setup once .env is read.
func Init() {
	zerolog.TimeFieldFormat = time.RFC3339
	pretty := os.Getenv("LOG_PRETTY")
	configure(os.Getenv("LOG_LEVEL"), pretty == "1" || strings.EqualFold(pretty, "true"))
}

// Apply sets the level and output from the loaded config, which includes .env.
func Apply(cfg *config.Config) {
	configure(cfg.Log.Level, cfg.Log.Pretty)
	log.Debug().Str("level", zerolog.GlobalLevel().String()).Bool("pretty", cfg.Log.Pretty).Msg("Logger configured")
}

func configure(levelName string, pretty bool) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(levelName)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var base zerolog.Logger
	if pretty {
		base = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	} else {
		base = zerolog.New(os.Stderr)
	}
	log.Logger = base.With().Timestamp().Str("service", "itimock").Logger()
}
