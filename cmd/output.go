package cmd

import (
	"fmt"
	"io"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/app"
	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/pkg/export"
	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/pkg/report"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatCSV  = "csv"
)

func writeRun(w io.Writer, format string, rep app.DomainReport) error {
	switch format {
	case formatText, "":
		return report.WriteRun(w, rep)
	case formatJSON:
		return export.WriteJSON(w, rep)
	case formatCSV:
		return export.WriteCSV(w, rep)
	}
	return fmt.Errorf("unknown output format %q", format)
}

func writeAnalysis(w io.Writer, format string, rep app.AnalysisReport) error {
	switch format {
	case formatText, "":
		return report.WriteAnalysis(w, rep)
	case formatJSON:
		return export.WriteJSON(w, rep)
	case formatCSV:
		return export.WriteAnalysisCSV(w, rep)
	}
	return fmt.Errorf("unknown output format %q", format)
}
