package ingest

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/model"
)

func TestReadJobsCSV(t *testing.T) {
	src := "job name , DURATION,Deadline,Profit,Notes\n" +
		"J1,2,4,50,first\n" +
		"\n" +
		"J2,1,3,30,\n"
	jobs, err := ReadJobs(strings.NewReader(src), FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, []model.Job{
		{Name: "J1", Duration: 2, Deadline: 4, Profit: 50},
		{Name: "J2", Duration: 1, Deadline: 3, Profit: 30},
	}, jobs)
}

func TestReadJobsMissingColumn(t *testing.T) {
	_, err := ReadJobs(strings.NewReader("Job Name,Duration,Profit\nJ1,2,50\n"), FormatCSV)
	var ie *ImportError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, ColDeadline, ie.Column)
	assert.True(t, errors.Is(err, ErrMissingColumn))
}

func TestReadResourcesRowError(t *testing.T) {
	src := "Resource Name,Cost,Benefit\nR1,5000,9000\nR2,abc,1\n"
	_, err := ReadResources(strings.NewReader(src), FormatCSV)
	var ie *ImportError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, 3, ie.Row)
	assert.Equal(t, ColCost, ie.Column)
	assert.Contains(t, err.Error(), "row 3")
}

func TestReadEmptySource(t *testing.T) {
	_, err := ReadResources(strings.NewReader(""), FormatCSV)
	var ie *ImportError
	require.ErrorAs(t, err, &ie)
}

func TestReadUnsupportedFormat(t *testing.T) {
	_, err := ReadJobs(strings.NewReader("x"), Format("ods"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestReadResourcesXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Resource Name", "Cost", "Benefit"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"R1", 5000, 9000}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"R3", 3000, 6000}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	res, err := ReadResources(bytes.NewReader(buf.Bytes()), FormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, []model.Resource{
		{Name: "R1", Cost: 5000, Benefit: 9000},
		{Name: "R3", Cost: 3000, Benefit: 6000},
	}, res)
}

func TestReadXLSXCorrupt(t *testing.T) {
	_, err := ReadJobs(strings.NewReader("not a workbook"), FormatXLSX)
	var ie *ImportError
	require.ErrorAs(t, err, &ie)
	assert.Zero(t, ie.Row)
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("data/Jobs.XLSX")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)
	f, err = FormatFromPath("jobs.csv")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)
	_, err = FormatFromPath("jobs.txt")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}
