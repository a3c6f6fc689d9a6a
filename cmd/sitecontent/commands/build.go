package commands

import (
	"fmt"

	"github.com/punchlinehub/sitecontent/internal/export"
	"github.com/punchlinehub/sitecontent/internal/logfields"
	"github.com/punchlinehub/sitecontent/internal/metrics"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output      string `short:"o" help:"Output directory; overrides output.directory" type:"path"`
	Clean       bool   `help:"Remove previously exported JSON before writing"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics to this textfile; overrides metrics.textfile" type:"path"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	rt, err := loadRuntime(g, root)
	if err != nil {
		return err
	}

	outputDir := rt.cfg.Output.Directory
	if b.Output != "" {
		outputDir = b.Output
	}
	metricsFile := rt.cfg.Metrics.Textfile
	if b.MetricsFile != "" {
		metricsFile = b.MetricsFile
	}

	var rec metrics.Recorder = metrics.NoopRecorder{}
	var prom *metrics.PrometheusRecorder
	if metricsFile != "" {
		prom = metrics.NewPrometheusRecorder(nil)
		rec = prom
	}

	build := rt.newBuild(rec)
	rt.log.Info("Starting content build",
		logfields.BuildID(build.ID()),
		logfields.Path(rt.cfg.Content.Directory),
		logfields.Stage("export"))

	exp := export.New(outputDir, export.Options{Clean: b.Clean || rt.cfg.Output.Clean, Logger: rt.log})
	manifest, buildErr := exp.Export(build)

	if prom != nil {
		if err := writeTextfile(prom, metricsFile); err != nil {
			rt.log.Warn("Metrics not written", logfields.Path(metricsFile), logfields.Error(err))
		}
	}
	if buildErr != nil {
		return buildErr
	}

	_, _ = fmt.Fprintf(g.stdout(), "Built %d documents into %s (%d skipped, %d warnings)\n",
		len(manifest.Documents), outputDir, len(manifest.Skipped), len(manifest.Warnings))
	return nil
}
