package config

import (
	"fmt"
	"os"
	"time"
	// Embedded zone database so build.timezone resolves on minimal images.
	_ "time/tzdata"

	"gopkg.in/yaml.v3"

	"github.com/punchlinehub/sitecontent/internal/content"
	"github.com/punchlinehub/sitecontent/internal/store"
)

// DefaultPath is the configuration file used when none is given.
const DefaultPath = "sitecontent.yaml"

// Config is the root configuration.
type Config struct {
	Content ContentConfig `yaml:"content"`
	Output  OutputConfig  `yaml:"output"`
	Build   BuildConfig   `yaml:"build"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// ContentConfig locates the document store.
type ContentConfig struct {
	Directory string `yaml:"directory"`
	// Collections is keyed by kind or folder name (e.g. "blog" or "blogPost").
	Collections map[string]CollectionConfig `yaml:"collections,omitempty"`
}

// CollectionConfig overrides one kind's folder and enumeration order.
type CollectionConfig struct {
	Folder string   `yaml:"folder,omitempty"`
	Files  []string `yaml:"files,omitempty"`
}

// OutputConfig controls where exported collections are written.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Clean     bool   `yaml:"clean"`
}

// BuildConfig tunes one build cycle.
type BuildConfig struct {
	Timezone    string `yaml:"timezone"`
	Concurrency int    `yaml:"concurrency"`
	// WatchDebounce is parsed with time.ParseDuration.
	WatchDebounce string `yaml:"watch_debounce,omitempty"`
}

// LoggingConfig selects the slog level and handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// MetricsConfig enables the Prometheus textfile output.
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"`
}

// Load reads, expands and validates the configuration file at configPath.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	// #nosec G304 -- configPath comes from the CLI flag.
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Content.Directory == "" {
		cfg.Content.Directory = "./content"
	}
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = "./dist"
	}
	if cfg.Build.Timezone == "" {
		cfg.Build.Timezone = "UTC"
	}
	if cfg.Build.Concurrency == 0 {
		cfg.Build.Concurrency = 8
	}
	if cfg.Build.WatchDebounce == "" {
		cfg.Build.WatchDebounce = "500ms"
	}
	cfg.Logging.Level = NormalizeLogLevel(string(cfg.Logging.Level))
	cfg.Logging.Format = NormalizeLogFormat(string(cfg.Logging.Format))
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Build.Timezone)
}

// Debounce resolves the watch debounce interval.
func (c *Config) Debounce() (time.Duration, error) {
	return time.ParseDuration(c.Build.WatchDebounce)
}

// Layouts maps collection overrides onto store layouts.
func (c *Config) Layouts() (map[content.Kind]store.Layout, error) {
	layouts := make(map[content.Kind]store.Layout, len(c.Content.Collections))
	for name, cc := range c.Content.Collections {
		kind, err := content.ParseKind(name)
		if err != nil {
			return nil, err
		}
		layouts[kind] = store.Layout{Folder: cc.Folder, Files: cc.Files}
	}
	return layouts, nil
}

// Init writes an example configuration file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	example := Default()
	example.Content.Collections = map[string]CollectionConfig{
		"blog": {Folder: "blog"},
	}

	data, err := yaml.Marshal(example)
	if err != nil {
		return fmt.Errorf("failed to marshal example config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
