// Package logging configures the global zerolog logger for the CLI,
// adapted from freeeve-polite-betrayal/api/internal/logger/logger.go's
// Init (console writer in dev, leveled via LOG_LEVEL) down to a
// single-process CLI's needs - no request-ID context plumbing, since a run
// here is one invocation, not a server handling concurrent requests.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init sets up the global logger: human-readable console output, level
// from LOG_LEVEL (default info).
func Init() {
	zerolog.TimeFieldFormat = time.RFC3339
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	level := zerolog.InfoLevel
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		if l, err := zerolog.ParseLevel(s); err == nil {
			level = l
		}
	}
	zerolog.SetGlobalLevel(level)
}
