package log

import (
	"io"
	"log/slog"
	"strings"
)

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// ParseLevel maps a level name to a slog.Level, reporting whether the name
// was recognized
func ParseLevel(name string) (slog.Level, bool) {
	lvl, ok := levels[strings.ToLower(name)]
	return lvl, ok
}

// New constructs a slog.Logger writing to w. format is "json" or "text";
// unknown level names fall back to info
func New(w io.Writer, format, level string) *slog.Logger {
	lvl, ok := ParseLevel(level)
	if !ok {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
