package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/punchlinehub/sitecontent/internal/content"
	"github.com/punchlinehub/sitecontent/internal/foundation/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sitecontent.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "content:\n  directory: ./site/content\n"))
	require.NoError(t, err)

	require.Equal(t, "./site/content", cfg.Content.Directory)
	require.Equal(t, "./dist", cfg.Output.Directory)
	require.Equal(t, "UTC", cfg.Build.Timezone)
	require.Equal(t, 8, cfg.Build.Concurrency)
	require.Equal(t, LogLevelInfo, cfg.Logging.Level)
	require.Equal(t, LogFormatText, cfg.Logging.Format)

	d, err := cfg.Debounce()
	require.NoError(t, err)
	require.Equal(t, 500*time.Millisecond, d)
}

func TestLoad_ExpandsEnvAndOverrides(t *testing.T) {
	t.Setenv("SITE_ROOT", "/srv/site")
	t.Setenv(EnvTimezone, "Africa/Lagos")
	path := writeConfig(t, `content:
  directory: ${SITE_ROOT}/content
  collections:
    blog:
      folder: journal
      files: [lagos-consumer-landscape, digital-ads-lagos]
logging:
  level: DEBUG
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/srv/site/content", cfg.Content.Directory)
	require.Equal(t, "Africa/Lagos", cfg.Build.Timezone)
	require.Equal(t, LogLevelDebug, cfg.Logging.Level)
	require.Equal(t, LogFormatJSON, cfg.Logging.Format)

	layouts, err := cfg.Layouts()
	require.NoError(t, err)
	require.Equal(t, "journal", layouts[content.KindBlogPost].Folder)
	require.Equal(t, []string{"lagos-consumer-landscape", "digital-ads-lagos"}, layouts[content.KindBlogPost].Files)
}

func TestLoad_RejectsBadTimezone(t *testing.T) {
	_, err := Load(writeConfig(t, "build:\n  timezone: Mars/Olympus\n"))
	require.Error(t, err)
	require.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestLoad_RejectsUnknownCollection(t *testing.T) {
	_, err := Load(writeConfig(t, "content:\n  collections:\n    podcasts: {folder: pods}\n"))
	require.Error(t, err)
}

func TestLoad_RejectsNegativeConcurrency(t *testing.T) {
	_, err := Load(writeConfig(t, "build:\n  concurrency: -1\n"))
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorContains(t, err, "configuration file not found")
}

func TestInit_WritesLoadableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitecontent.yaml")
	require.NoError(t, Init(path, false))
	require.Error(t, Init(path, false))
	require.NoError(t, Init(path, true))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "./content", cfg.Content.Directory)
}

func TestLogLevel_SlogLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, NormalizeLogLevel(" Debug ").SlogLevel())
	require.Equal(t, slog.LevelWarn, NormalizeLogLevel("warning").SlogLevel())
	require.Equal(t, slog.LevelInfo, NormalizeLogLevel("loud").SlogLevel())
}
