package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/punchlinehub/sitecontent/internal/content"
	"github.com/punchlinehub/sitecontent/internal/export"
	"github.com/punchlinehub/sitecontent/internal/logfields"
	"github.com/punchlinehub/sitecontent/internal/metrics"
	"github.com/punchlinehub/sitecontent/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Output string `short:"o" help:"Output directory; overrides output.directory" type:"path"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	rt, err := loadRuntime(g, root)
	if err != nil {
		return err
	}
	outputDir := rt.cfg.Output.Directory
	if w.Output != "" {
		outputDir = w.Output
	}
	debounce, _ := rt.cfg.Debounce()

	var rec metrics.Recorder = metrics.NoopRecorder{}
	var prom *metrics.PrometheusRecorder
	if rt.cfg.Metrics.Textfile != "" {
		prom = metrics.NewPrometheusRecorder(nil)
		rec = prom
	}
	exp := export.New(outputDir, export.Options{Clean: rt.cfg.Output.Clean, Logger: rt.log})

	// Each cycle gets a fresh Build, so nothing is cached across changes.
	rebuild := func(context.Context) error {
		build := rt.newBuild(rec)
		_, err := exp.Export(build)
		if prom != nil {
			if werr := writeTextfile(prom, rt.cfg.Metrics.Textfile); werr != nil {
				rt.log.Warn("Metrics not written", logfields.Error(werr))
			}
		}
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rebuild(ctx); err != nil {
		rt.log.Error("Initial build failed; waiting for changes", logfields.Error(err))
	}

	dirs := make([]string, 0, len(content.Kinds))
	for _, kind := range content.Kinds {
		dirs = append(dirs, rt.store.Dir(kind))
	}

	rt.log.Info("Watching for content changes", logfields.Path(rt.store.Root()))
	return watch.New(dirs, debounce, rebuild, rt.log).Run(ctx)
}
