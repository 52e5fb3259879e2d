package ingest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/model"
)

func TestParseJob(t *testing.T) {
	j, err := ParseJob(SplitFields(" J1, 2, 4 ,50"))
	require.NoError(t, err)
	assert.Equal(t, model.Job{Name: "J1", Duration: 2, Deadline: 4, Profit: 50}, j)
}

func TestParseJobRejects(t *testing.T) {
	cases := []struct {
		name   string
		fields []string
		field  string
	}{
		{"missing profit", []string{"J1", "2", "4"}, ColProfit},
		{"empty name", []string{" ", "2", "4", "50"}, ColJobName},
		{"non numeric duration", []string{"J1", "two", "4", "50"}, ColDuration},
		{"zero deadline", []string{"J1", "2", "0", "50"}, ColDeadline},
		{"negative duration", []string{"J1", "-1", "4", "50"}, ColDuration},
		{"nan profit", []string{"J1", "1", "4", "NaN"}, ColProfit},
		{"too many", []string{"J1", "1", "4", "5", "6"}, "record"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseJob(tc.fields)
			var ie *InputError
			if !errors.As(err, &ie) {
				t.Fatalf("expected InputError, got %v", err)
			}
			if ie.Field != tc.field {
				t.Fatalf("field = %q, want %q", ie.Field, tc.field)
			}
		})
	}
}

func TestParseJobAllowsNonPositiveProfit(t *testing.T) {
	j, err := ParseJob([]string{"J1", "1", "2", "0"})
	require.NoError(t, err)
	assert.Zero(t, j.Profit)
}

func TestParseResource(t *testing.T) {
	r, err := ParseResource(SplitFields("R1,5000,9000"))
	require.NoError(t, err)
	assert.Equal(t, model.Resource{Name: "R1", Cost: 5000, Benefit: 9000}, r)

	_, err = ParseResource([]string{"R1", "0", "9000"})
	var ie *InputError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, ColCost, ie.Field)
	assert.Contains(t, ie.Error(), "must be positive")
}
