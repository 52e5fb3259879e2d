package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/model"
)

// Format identifies a tabular import source.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// ReadJobs reads one job per row from a table with the JobColumns headers.
// Extra columns are ignored.
func ReadJobs(r io.Reader, format Format) ([]model.Job, error) {
	return readRecords(r, format, JobColumns, ParseJob)
}

// ReadResources reads one resource per row from a table with the
// ResourceColumns headers.
func ReadResources(r io.Reader, format Format) ([]model.Resource, error) {
	return readRecords(r, format, ResourceColumns, ParseResource)
}

func readRecords[T any](r io.Reader, format Format, cols []string, parse func([]string) (T, error)) ([]T, error) {
	rows, err := readTable(r, format)
	if err != nil {
		return nil, &ImportError{Err: err}
	}
	if len(rows) == 0 {
		return nil, &ImportError{Err: errors.New("empty source")}
	}
	idx, err := columnIndex(rows[0], cols)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(rows)-1)
	fields := make([]string, len(cols))
	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}
		for j, c := range idx {
			fields[j] = cell(row, c)
		}
		rec, err := parse(fields)
		if err != nil {
			ie := &ImportError{Row: i + 2, Err: err}
			var in *InputError
			if errors.As(err, &in) {
				ie.Column = in.Field
			}
			return nil, ie
		}
		out = append(out, rec)
	}
	return out, nil
}

func readTable(r io.Reader, format Format) ([][]string, error) {
	switch format {
	case FormatCSV:
		cr := csv.NewReader(r)
		cr.FieldsPerRecord = -1
		cr.TrimLeadingSpace = true
		return cr.ReadAll()
	case FormatXLSX:
		f, err := excelize.OpenReader(r)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		return f.GetRows(sheets[0])
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// columnIndex maps each wanted column to its position in header, matching
// names case-insensitively after trimming.
func columnIndex(header, cols []string) ([]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		key := normalize(h)
		if _, ok := pos[key]; !ok {
			pos[key] = i
		}
	}
	idx := make([]int, len(cols))
	for i, c := range cols {
		p, ok := pos[normalize(c)]
		if !ok {
			return nil, &ImportError{Row: 0, Column: c, Err: ErrMissingColumn}
		}
		idx[i] = p
	}
	return idx, nil
}

func normalize(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	return strings.ToLower(strings.TrimSpace(s))
}

// cell tolerates short rows; spreadsheets drop trailing empty cells.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
