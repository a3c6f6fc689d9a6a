// Package metrics records content build metrics.
//
// Components receive a Recorder and default to NoopRecorder, so metrics are
// opt-in:
//
//	recorder := metrics.NewPrometheusRecorder(reg)
//	b := site.NewBuild(store, site.Options{Recorder: recorder})
//
// A build is a short-lived process with nothing to scrape, so the Prometheus
// registry is flushed to a node_exporter textfile with WriteTextfile.
package metrics
