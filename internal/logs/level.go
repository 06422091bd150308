package logs

import (
	"flag"
	"log/slog"
)

var level = new(slog.LevelVar)

// SetLevel changes the minimum level of every logger built by this package.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// RegisterFlags adds -log-debug, -log-info, -log-warn and -log-error to fs.
func RegisterFlags(fs *flag.FlagSet) {
	for _, def := range []struct {
		name  string
		level slog.Level
	}{
		{"log-debug", slog.LevelDebug},
		{"log-info", slog.LevelInfo},
		{"log-warn", slog.LevelWarn},
		{"log-error", slog.LevelError},
	} {
		fs.BoolFunc(def.name, "set log level to "+def.level.String(), func(string) error {
			level.Set(def.level)
			return nil
		})
	}
}
