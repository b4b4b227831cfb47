package cmdutil

import (
	"context"

	"github.com/flarebyte/papyrus/internal/config"
	"github.com/flarebyte/papyrus/internal/fileio"
)

type settingsKey struct{}

// WithSettings stores the loaded config on ctx.
func WithSettings(ctx context.Context, s config.Settings) context.Context {
	return context.WithValue(ctx, settingsKey{}, s)
}

// SettingsFrom returns the config stored on ctx, or the defaults.
func SettingsFrom(ctx context.Context) config.Settings {
	if ctx != nil {
		if s, ok := ctx.Value(settingsKey{}).(config.Settings); ok {
			return s
		}
	}
	return config.Default()
}

// FileOptions converts settings into fileio options for the given format.
func FileOptions(s config.Settings, f Format) []fileio.Option {
	opts := []fileio.Option{fileio.WithEncoding(s.Encoding)}
	if s.CSV.HasDelimiter {
		opts = append(opts, fileio.WithDelimiter(s.CSV.Delimiter))
	}
	switch f {
	case FormatJSON:
		if s.JSON.HasWidth {
			opts = append(opts, fileio.WithIndent(s.JSON.Width))
		}
	case FormatYAML:
		if s.YAML.HasWidth {
			opts = append(opts, fileio.WithIndent(s.YAML.Width))
		}
	}
	return opts
}
