package metrics

import (
	"bytes"
	"testing"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/efficiency"
	coremetrics "github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/metrics"
	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/infra/logger"
)

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(logger.NewZerologLogger("metrics", logger.Options{Format: "json", Out: &buf}))
	if err := sink.RecordRun(sampleRun()); err != nil {
		t.Fatalf("record run: %v", err)
	}
	if err := sink.RecordComparison(coremetrics.ComparisonEvent{Comparisons: efficiency.CompareAll(efficiency.SharedMetrics{})}); err != nil {
		t.Fatalf("record comparison: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"run_id":"run-1"`, `"domain":"resources"`, `"message":"efficiency"`} {
		if !bytes.Contains([]byte(out), []byte(want)) {
			t.Fatalf("expected %s in %s", want, out)
		}
	}
}
