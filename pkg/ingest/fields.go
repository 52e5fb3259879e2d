package ingest

import (
	"math"
	"strconv"
	"strings"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/model"
)

// Column names of the tabular import formats.
const (
	ColJobName      = "Job Name"
	ColDuration     = "Duration"
	ColDeadline     = "Deadline"
	ColProfit       = "Profit"
	ColResourceName = "Resource Name"
	ColCost         = "Cost"
	ColBenefit      = "Benefit"
)

// JobColumns and ResourceColumns list the required headers in field order.
var (
	JobColumns      = []string{ColJobName, ColDuration, ColDeadline, ColProfit}
	ResourceColumns = []string{ColResourceName, ColCost, ColBenefit}
)

func parseNumber(field, raw string, positive bool) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &InputError{Field: field, Reason: "is required"}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &InputError{Field: field, Value: s, Reason: "is not a number"}
	}
	if positive && v <= 0 {
		return 0, &InputError{Field: field, Value: s, Reason: "must be positive"}
	}
	return v, nil
}

func parseName(field, raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", &InputError{Field: field, Reason: "is required"}
	}
	return s, nil
}

func checkArity(fields []string, cols []string) error {
	if len(fields) < len(cols) {
		return &InputError{Field: cols[len(fields)], Reason: "is required"}
	}
	if len(fields) > len(cols) {
		return &InputError{Field: "record", Value: strings.Join(fields, ","), Reason: "has too many fields"}
	}
	return nil
}

// ParseJob validates the fields name, duration, deadline and profit of a
// manually entered job.
func ParseJob(fields []string) (model.Job, error) {
	if err := checkArity(fields, JobColumns); err != nil {
		return model.Job{}, err
	}
	name, err := parseName(ColJobName, fields[0])
	if err != nil {
		return model.Job{}, err
	}
	duration, err := parseNumber(ColDuration, fields[1], true)
	if err != nil {
		return model.Job{}, err
	}
	deadline, err := parseNumber(ColDeadline, fields[2], true)
	if err != nil {
		return model.Job{}, err
	}
	profit, err := parseNumber(ColProfit, fields[3], false)
	if err != nil {
		return model.Job{}, err
	}
	return model.Job{Name: name, Duration: duration, Deadline: deadline, Profit: profit}, nil
}

// ParseResource validates the fields name, cost and benefit of a manually
// entered resource.
func ParseResource(fields []string) (model.Resource, error) {
	if err := checkArity(fields, ResourceColumns); err != nil {
		return model.Resource{}, err
	}
	name, err := parseName(ColResourceName, fields[0])
	if err != nil {
		return model.Resource{}, err
	}
	cost, err := parseNumber(ColCost, fields[1], true)
	if err != nil {
		return model.Resource{}, err
	}
	benefit, err := parseNumber(ColBenefit, fields[2], false)
	if err != nil {
		return model.Resource{}, err
	}
	return model.Resource{Name: name, Cost: cost, Benefit: benefit}, nil
}

// SplitFields splits a comma separated record such as "J1, 2, 4, 50".
func SplitFields(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
