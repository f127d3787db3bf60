package genkit

import (
	"log/slog"
	"os"
)

// NewLogger returns a text logger on stderr for the generator commands.
// Informational messages are suppressed unless debug is set, keeping
// stdout clean for the generated corpus.
func NewLogger(debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}
