package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Options select a logging backend.
type Options struct {
	// Backend is "slog" (default), "text" or "zap".
	Backend string
	// Level is one of debug, info, warn, error.
	Level string
	// Output is where slog backends write. Ignored by zap.
	Output io.Writer
	// ZapOutput is the zap output path ("stderr", "stdout" or a file).
	ZapOutput string
	// NoColor forces plain text for the slog backend.
	NoColor bool
}

// New builds a Logger from opts.
func New(opts Options) (Logger, error) {
	switch strings.ToLower(opts.Backend) {
	case "", "slog", "text":
		level := ParseLevel(opts.Level)
		if opts.Output == nil {
			return nil, fmt.Errorf("slog backend needs an output")
		}
		var h slog.Handler
		if opts.NoColor || strings.EqualFold(opts.Backend, "text") {
			h = slog.NewTextHandler(opts.Output, &slog.HandlerOptions{Level: level})
		} else {
			h = NewColorHandler(opts.Output, level)
		}
		return NewSlogLogger(slog.New(h)), nil
	case "zap":
		return NewZapJSON(opts.Level, opts.ZapOutput)
	default:
		return nil, fmt.Errorf("unknown log backend %q", opts.Backend)
	}
}

// ParseLevel maps a level name to slog.Level. Unknown names map to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
