package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder_Records(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.ObserveBuildDuration(500 * time.Millisecond)
	pr.IncBuildOutcome("success")
	pr.ObserveCollectionDuration("event", 20*time.Millisecond)
	pr.IncDocumentResult("course", DocumentOK, 3)
	pr.IncDocumentResult("course", DocumentSkipped, 1)
	pr.IncDocumentResult("course", DocumentDuplicate, 0)
	pr.SetCollectionSize("course", 3)

	require.InDelta(t, 3, testutil.ToFloat64(pr.documentResults.WithLabelValues("course", "ok")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(pr.documentResults.WithLabelValues("course", "skipped")), 0)
	require.InDelta(t, 3, testutil.ToFloat64(pr.collectionSize.WithLabelValues("course")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(pr.buildOutcome.WithLabelValues("success")), 0)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, mfs)
}

func TestPrometheusRecorder_WriteTextfile(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	pr.SetCollectionSize("blogPost", 7)

	path := filepath.Join(t.TempDir(), "sitecontent.prom")
	require.NoError(t, pr.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `sitecontent_collection_records{kind="blogPost"} 7`)
}

func TestNoopRecorder_SatisfiesInterface(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveBuildDuration(time.Second)
	r.IncDocumentResult("event", DocumentMissing, 2)
}
