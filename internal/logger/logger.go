package logger

import (
	"os"
	"time"

	"github.com/kgrc4si/ikgrcscore/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init installs a human readable console logger as the global zerolog logger.
// It runs before the configuration is loaded so that config warnings are visible.
func Init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}

// Configure applies the loaded configuration: JSON output outside of a dev system and the configured level.
func Configure(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Warn().Err(err).Str("level", cfg.Log.Level).Msg("Unknown log level, keeping info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if !cfg.Server.IsDevSystem {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
}
