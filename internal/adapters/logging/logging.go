package logging

import (
	"io"
	"log/slog"
	"os"
)

type SlogAdapter struct {
	l *slog.Logger
}

func New(level string) SlogAdapter {
	return NewWithWriter(os.Stderr, level)
}

func NewWithWriter(w io.Writer, level string) SlogAdapter {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	return SlogAdapter{l: slog.New(h)}
}

func (a SlogAdapter) Info(msg string, kv ...any)  { a.l.Info(msg, kv...) }
func (a SlogAdapter) Error(msg string, kv ...any) { a.l.Error(msg, kv...) }
