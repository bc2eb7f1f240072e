package kawaiigen

import (
	"os"

	"github.com/rs/zerolog"
)

// DefaultLogger returns a console logger suitable for demo and development
// use. Library users who already have a zerolog instance should pass their
// own through Config.Logger instead.
func DefaultLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().
		Timestamp().
		Logger()
}
