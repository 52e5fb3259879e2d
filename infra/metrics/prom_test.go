package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/efficiency"
	coremetrics "github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/metrics"
	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/model"
)

func sampleRun() coremetrics.RunEvent {
	return coremetrics.RunEvent{
		RunID:              "run-1",
		Domain:             model.DomainResources,
		SortKey:            model.SortBestRatio,
		Records:            3,
		Capacity:           8000,
		GreedyObjective:    12000,
		OptimalObjective:   15000,
		Bound:              15000,
		GreedyDuration:     time.Microsecond,
		ExhaustiveDuration: time.Millisecond,
	}
}

func TestPromSinkRecordRun(t *testing.T) {
	sink, err := NewPromSink("")
	require.NoError(t, err)
	require.NoError(t, sink.RecordRun(sampleRun()))

	assert.Equal(t, 12000.0, testutil.ToFloat64(sink.objective.WithLabelValues("resources", "greedy")))
	assert.Equal(t, 15000.0, testutil.ToFloat64(sink.objective.WithLabelValues("resources", "exhaustive")))
	assert.Equal(t, 80.0, testutil.ToFloat64(sink.ratio.WithLabelValues("resources")))
	assert.Equal(t, 3.0, testutil.ToFloat64(sink.records.WithLabelValues("resources")))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.runs.WithLabelValues("resources", "best_ratio")))
}

func TestPromSinkRecordComparison(t *testing.T) {
	sink, err := NewPromSink("")
	require.NoError(t, err)
	ev := coremetrics.ComparisonEvent{Comparisons: efficiency.CompareAll(efficiency.SharedMetrics{
		Jobs: efficiency.Totals{Greedy: 50, Optimal: 60},
	})}
	require.NoError(t, sink.RecordComparison(ev))
	assert.Equal(t, 83.33, testutil.ToFloat64(sink.ratio.WithLabelValues("jobs")))
	assert.Equal(t, 0.0, testutil.ToFloat64(sink.ratio.WithLabelValues("resources")))
}

func TestPromSinkReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := NewPromSinkWithRegistry(reg, "")
	require.NoError(t, err)
	b, err := NewPromSinkWithRegistry(reg, "")
	require.NoError(t, err)
	require.NoError(t, a.RecordRun(sampleRun()))
	assert.Equal(t, 1.0, testutil.ToFloat64(b.runs.WithLabelValues("resources", "best_ratio")))
}

func TestPromSinkFlushTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alloc.prom")
	sink, err := NewPromSink(path)
	require.NoError(t, err)
	require.NoError(t, sink.RecordRun(sampleRun()))
	require.NoError(t, sink.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "allocation_efficiency_ratio"))

	empty, err := NewPromSink("")
	require.NoError(t, err)
	assert.NoError(t, empty.Flush())
}

func TestRegisteredSinks(t *testing.T) {
	types := coremetrics.SinkTypes()
	for _, want := range []string{"log", "nop", "prometheus"} {
		assert.Contains(t, types, want)
	}
}
