package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathview/metrics"
)

func TestCollectorCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.New(reg)

	c.ObserveQuery(metrics.OutcomeFound, 2*time.Millisecond)
	c.ObserveQuery(metrics.OutcomeFound, time.Millisecond)
	c.ObserveQuery(metrics.OutcomeUnreachable, time.Millisecond)
	c.AddRelaxations(5)
	c.AddRelaxations(0)
	c.AddSkippedArcs(2)
	c.SetGraphNodes(6)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.Queries.WithLabelValues(metrics.OutcomeFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Queries.WithLabelValues(metrics.OutcomeUnreachable)))
	assert.Equal(t, 5.0, testutil.ToFloat64(c.Relaxations))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.SkippedArcs))
	assert.Equal(t, 6.0, testutil.ToFloat64(c.GraphNodes))
	assert.Equal(t, 1, testutil.CollectAndCount(c.QueryDuration))
}

func TestNilRegistererIsolated(t *testing.T) {
	// Two collectors on private registries must not collide.
	require.NotPanics(t, func() {
		metrics.New(nil)
		metrics.New(nil)
	})
}

func TestHandlerServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.New(reg)
	c.AddSkippedArcs(3)

	srv := httptest.NewServer(metrics.Handler(reg))
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "pathview_skipped_arcs_total 3")
}
