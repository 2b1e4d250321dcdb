package cmd

import (
	"context"

	"github.com/salmonumbrella/consoletable/internal/config"
)

type (
	errorFormatKey struct{}
	configKey      struct{}
	configPathKey  struct{}
)

// WithErrorFormat stores the error format in the context.
func WithErrorFormat(ctx context.Context, format string) context.Context {
	return context.WithValue(ctx, errorFormatKey{}, format)
}

// ErrorFormatFromContext retrieves the error format from context.
func ErrorFormatFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(errorFormatKey{}).(string); ok {
		return v
	}
	return ""
}

// WithConfig stores loaded CLI config in context for downstream helpers.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// ConfigFromContext retrieves CLI config from context.
// Returns an empty config when none was loaded.
func ConfigFromContext(ctx context.Context) *config.Config {
	if v, ok := ctx.Value(configKey{}).(*config.Config); ok && v != nil {
		return v
	}
	return &config.Config{}
}

// WithConfigPath stores the --config override.
func WithConfigPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, configPathKey{}, path)
}

// configPathFromContext returns the --config override or the default path.
func configPathFromContext(ctx context.Context) (string, error) {
	if v, ok := ctx.Value(configPathKey{}).(string); ok && v != "" {
		return v, nil
	}
	return config.DefaultConfigPath()
}
