package demoaux

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger writing records at level or above to w.
// Accepted levels are those of [slog.Level.UnmarshalText], e.g. "debug" or "warn+2".
func NewLogger(level string, w io.Writer) (*slog.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
