package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/app"
)

// WriteJSON writes a report, or any other result value, to w as indented
// JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteCSV writes both selections of a run, one row per selected record.
func WriteCSV(w io.Writer, rep app.DomainReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"run_id", "domain", "selector", "rank", "name", "primary", "deadline", "objective", "cumulative"}); err != nil {
		return err
	}
	for _, sel := range []struct {
		name string
		s    app.Selection
	}{{"greedy", rep.Greedy}, {"exhaustive", rep.Optimal}} {
		for i, it := range sel.s.Items {
			rec := []string{
				rep.RunID,
				rep.DomainName,
				sel.name,
				strconv.Itoa(i + 1),
				it.Name,
				formatFloat(it.Primary),
				formatFloat(it.Deadline),
				formatFloat(it.Objective),
				formatFloat(it.Cumulative),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteAnalysisCSV writes one row per compared domain.
func WriteAnalysisCSV(w io.Writer, rep app.AnalysisReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"domain", "greedy", "optimal", "ratio", "greedy_complexity", "exhaustive_complexity"}); err != nil {
		return err
	}
	for _, c := range rep.Comparisons {
		rec := []string{
			c.DomainName,
			formatFloat(c.Greedy),
			formatFloat(c.Optimal),
			strconv.FormatFloat(c.Ratio, 'f', 2, 64),
			c.GreedyComplexity,
			c.ExhaustiveComplexity,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
