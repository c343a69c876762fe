package log

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type Logger = zerolog.Logger

// New returns the process logger. Local/dev environments get the console
// writer, everything else emits JSON lines.
func New(appEnv, service string) Logger {
	var logger zerolog.Logger
	if isLocal(appEnv) {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	} else {
		logger = zerolog.New(os.Stdout)
	}
	return logger.With().Timestamp().Str("service", service).Logger()
}

func isLocal(appEnv string) bool {
	env := strings.ToLower(strings.TrimSpace(appEnv))
	return env == "" || env == "dev" || env == "local"
}
