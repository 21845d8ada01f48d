package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel keeps normal runs quiet so only check results are printed.
const DefaultLevel = "error"

// New returns a console logger writing to w at the given level.
// An empty level means DefaultLevel.
func New(w io.Writer, levelStr string, noColor bool) (zerolog.Logger, error) {
	level, err := ParseLevel(levelStr)
	if err != nil {
		return zerolog.Nop(), err
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}

	ctx := zerolog.New(console).With().Timestamp()
	if level <= zerolog.DebugLevel {
		ctx = ctx.Caller()
	}
	return ctx.Logger().Level(level), nil
}

// ParseLevel converts a level name such as "debug" or "WARN" to a zerolog level.
func ParseLevel(levelStr string) (zerolog.Level, error) {
	if strings.TrimSpace(levelStr) == "" {
		levelStr = DefaultLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(levelStr)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", levelStr, err)
	}
	return level, nil
}
