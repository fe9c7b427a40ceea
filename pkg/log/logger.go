package log

import (
	"io"
	"log/slog"
	"os"
)

// SetupLogger builds the process logger. JSON output goes to stderr so the
// rendered statistics own stdout; file, when non-empty, redirects everything
// there instead.
func SetupLogger(appName string, debug bool, file string) (*slog.Logger, error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var writer io.Writer = os.Stderr
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
		writer = f
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.TimeKey {
				return slog.Attr{
					Key:   "timestamp",
					Value: slog.StringValue(attr.Value.Time().Format("15:04:05.000")),
				}
			}
			return attr
		},
	})

	logger := slog.New(handler).With(
		slog.String("app", appName),
	)

	return logger, nil
}
