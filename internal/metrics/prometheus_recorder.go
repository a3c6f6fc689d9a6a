package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "sitecontent"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg                *prom.Registry
	buildDuration      prom.Histogram
	buildOutcome       *prom.CounterVec
	collectionDuration *prom.HistogramVec
	documentResults    *prom.CounterVec
	collectionSize     *prom.GaugeVec
}

// NewPrometheusRecorder constructs metrics and registers them on reg. A nil
// reg gets a fresh private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg: reg,
		buildDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Total duration of a content build",
			Buckets:   prom.DefBuckets,
		}),
		buildOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "build_outcomes_total",
			Help:      "Build outcomes by final status",
		}, []string{"outcome"}),
		collectionDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "collection_duration_seconds",
			Help:      "Duration of the read, parse, coerce and build pipeline per kind",
			Buckets:   prom.DefBuckets,
		}, []string{"kind"}),
		documentResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "documents_total",
			Help:      "Documents processed by kind and result",
		}, []string{"kind", "result"}),
		collectionSize: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "collection_records",
			Help:      "Records in the built collection",
		}, []string{"kind"}),
	}
	reg.MustRegister(pr.buildDuration, pr.buildOutcome, pr.collectionDuration, pr.documentResults, pr.collectionSize)
	return pr
}

// Registry returns the registry the metrics are registered on.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.reg }

func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	p.buildDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncBuildOutcome(outcome string) {
	p.buildOutcome.WithLabelValues(outcome).Inc()
}

func (p *PrometheusRecorder) ObserveCollectionDuration(kind string, d time.Duration) {
	p.collectionDuration.WithLabelValues(kind).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncDocumentResult(kind string, result DocumentResult, n int) {
	if n <= 0 {
		return
	}
	p.documentResults.WithLabelValues(kind, string(result)).Add(float64(n))
}

func (p *PrometheusRecorder) SetCollectionSize(kind string, n int) {
	p.collectionSize.WithLabelValues(kind).Set(float64(n))
}

// WriteTextfile writes every gathered metric to path in the text exposition
// format, atomically.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	return prom.WriteToTextfile(path, p.reg)
}
