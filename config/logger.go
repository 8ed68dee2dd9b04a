package config

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the global zerolog logger: human-readable console
// output in development, JSON elsewhere.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	env := strings.ToLower(envOrDefault("APP_ENV", "development"))
	if env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}).With().Str("service", "hotel-booking").Logger()
		return
	}

	log.Logger = zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", "hotel-booking").
		Logger()
}
