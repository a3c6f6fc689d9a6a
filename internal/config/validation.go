package config

import (
	"github.com/punchlinehub/sitecontent/internal/foundation/errors"
)

// Validate checks a configuration after defaults were applied.
func Validate(cfg *Config) error {
	if _, err := cfg.Location(); err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "invalid build.timezone").
			Fatal().
			WithContext("value", cfg.Build.Timezone).
			Build()
	}
	if cfg.Build.Concurrency < 1 {
		return errors.ConfigError("build.concurrency must be at least 1").
			WithContext("value", cfg.Build.Concurrency).
			Build()
	}
	if d, err := cfg.Debounce(); err != nil || d < 0 {
		return errors.ConfigError("invalid build.watch_debounce").
			WithContext("value", cfg.Build.WatchDebounce).
			WithCause(err).
			Build()
	}
	if _, err := cfg.Layouts(); err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "invalid content.collections").Fatal().Build()
	}
	return nil
}
