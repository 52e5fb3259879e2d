package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/app"
	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/model"
)

func run(t *testing.T) (*app.Session, app.DomainReport) {
	t.Helper()
	s := app.NewSession(app.Options{})
	s.AddJobs(
		model.Job{Name: "J1", Duration: 2, Deadline: 4, Profit: 50},
		model.Job{Name: "J2", Duration: 1, Deadline: 2, Profit: 10},
	)
	rep, err := s.ScheduleJobs(3, model.SortMaxObjective)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	return s, rep
}

func TestWriteCSV(t *testing.T) {
	_, rep := run(t)
	var buf bytes.Buffer
	if err := WriteCSV(&buf, rep); err != nil {
		t.Fatalf("write: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[1][2] != "greedy" || rows[1][4] != "J1" || rows[1][6] != "4" {
		t.Fatalf("unexpected greedy row: %v", rows[1])
	}
	if rows[2][2] != "exhaustive" || rows[2][7] != "50" {
		t.Fatalf("unexpected exhaustive row: %v", rows[2])
	}
}

func TestWriteJSON(t *testing.T) {
	s, rep := run(t)
	var buf bytes.Buffer
	if err := WriteJSON(&buf, rep); err != nil {
		t.Fatalf("write: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["domain"] != "jobs" || got["ratio"] != 100.0 || got["sort_by"] != "max_objective" {
		t.Fatalf("unexpected json: %v", got)
	}

	buf.Reset()
	if err := WriteJSON(&buf, s.Analyze()); err != nil {
		t.Fatalf("write analysis: %v", err)
	}
	var an struct {
		Comparisons []struct {
			Domain string  `json:"domain"`
			Ratio  float64 `json:"ratio"`
		} `json:"comparisons"`
	}
	if err := json.Unmarshal(buf.Bytes(), &an); err != nil {
		t.Fatalf("decode analysis: %v", err)
	}
	if len(an.Comparisons) != 2 || an.Comparisons[0].Domain != "jobs" || an.Comparisons[0].Ratio != 100 {
		t.Fatalf("unexpected analysis: %+v", an)
	}
}

func TestWriteAnalysisCSV(t *testing.T) {
	s, _ := run(t)
	var buf bytes.Buffer
	if err := WriteAnalysisCSV(&buf, s.Analyze()); err != nil {
		t.Fatalf("write: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 3 || rows[1][3] != "100.00" || rows[2][0] != "resources" || rows[2][3] != "0.00" {
		t.Fatalf("unexpected rows: %v", rows)
	}
}
