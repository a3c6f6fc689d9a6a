package commands

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/punchlinehub/sitecontent/internal/config"
	"github.com/punchlinehub/sitecontent/internal/foundation/errors"
	"github.com/punchlinehub/sitecontent/internal/metrics"
	"github.com/punchlinehub/sitecontent/internal/site"
	"github.com/punchlinehub/sitecontent/internal/store"
)

// Global is shared state handed to every command.
type Global struct {
	Logger *slog.Logger
	// Stdout receives command output; nil means os.Stdout.
	Stdout io.Writer
}

func (g *Global) stdout() io.Writer {
	if g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"sitecontent.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd `cmd:"" help:"Build every collection and export it as JSON"`
	List  ListCmd  `cmd:"" help:"Print one collection as JSON"`
	Watch WatchCmd `cmd:"" help:"Rebuild whenever content changes"`
	Init  InitCmd  `cmd:"" help:"Write an example configuration file"`
}

// AfterApply runs after flag parsing; it installs a provisional logger that
// loadRuntime replaces once the configuration is known.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply(g *Global) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	g.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(g.Logger)
	return nil
}

// runtime is everything a command needs to start build cycles.
type runtime struct {
	cfg   *config.Config
	loc   *time.Location
	store *store.FSStore
	log   *slog.Logger
}

func loadRuntime(g *Global, root *CLI) (*runtime, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		if _, ok := errors.AsClassified(err); ok {
			return nil, err
		}
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to load configuration").
			WithContext("path", root.Config).
			Build()
	}

	level := cfg.Logging.Level
	if root.Verbose {
		level = config.LogLevelDebug
	}
	g.Logger = config.NewLogger(os.Stderr, level, cfg.Logging.Format)
	slog.SetDefault(g.Logger)

	// Validate already resolved both of these.
	loc, _ := cfg.Location()
	layouts, _ := cfg.Layouts()

	return &runtime{
		cfg:   cfg,
		loc:   loc,
		store: store.NewFSStore(cfg.Content.Directory, layouts, cfg.Build.Concurrency),
		log:   g.Logger,
	}, nil
}

func (r *runtime) newBuild(rec metrics.Recorder) *site.Build {
	return site.NewBuild(r.store, site.Options{
		Location: r.loc,
		Recorder: rec,
		Logger:   r.log,
	})
}

func writeTextfile(rec *metrics.PrometheusRecorder, path string) error {
	if err := rec.WriteTextfile(path); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write metrics textfile").
			Warning().
			WithContext("path", path).
			Build()
	}
	return nil
}
