package exporter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"datamedic/internal/dataset"
)

func sampleDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds := dataset.New([]string{"name", "age", "active"})
	require.NoError(t, ds.AppendRow([]dataset.Value{"alice", 30.5, true}))
	require.NoError(t, ds.AppendRow([]dataset.Value{"bob", nil, false}))
	return ds
}

func TestExportCSV_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(dir)
	ds := sampleDataset(t)

	require.NoError(t, writer.ExportCSV(ds, "out.csv", CSVOptions{}))

	reloaded, err := dataset.LoadCSV(filepath.Join(dir, "out.csv"))
	require.NoError(t, err)

	assert.Equal(t, ds.Columns(), reloaded.Columns())
	require.Equal(t, ds.NumRows(), reloaded.NumRows())
	for i := 0; i < ds.NumRows(); i++ {
		assert.Equal(t, ds.Row(i), reloaded.Row(i))
	}
}

func TestExportCSV_BOMPrefix(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(dir)

	require.NoError(t, writer.ExportCSV(sampleDataset(t), "out.csv", CSVOptions{BOMPrefix: true}))

	data, err := os.ReadFile(filepath.Join(dir, "out.csv"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3])
}

func TestExportJSON_RecordsOrientation(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(dir)

	require.NoError(t, writer.ExportJSON(sampleDataset(t), "out.json"))

	data, err := os.ReadFile(filepath.Join(dir, "out.json"))
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 2)

	assert.Equal(t, "alice", records[0]["name"])
	assert.Equal(t, 30.5, records[0]["age"])
	assert.Equal(t, true, records[0]["active"])
	assert.Nil(t, records[1]["age"])
}

func TestExportXLSX_ReadBack(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(dir)

	require.NoError(t, writer.ExportXLSX(sampleDataset(t), "out.xlsx"))

	f, err := excelize.OpenFile(filepath.Join(dir, "out.xlsx"))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"name", "age", "active"}, rows[0])
	assert.Equal(t, "alice", rows[1][0])
	assert.Equal(t, "30.5", rows[1][1])
}

func TestExport_FormatByExtension(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(dir)
	ds := sampleDataset(t)

	for _, name := range []string{"a.csv", "b.xlsx", "c.json", "d.CSV"} {
		require.NoError(t, writer.Export(ds, name))
		assert.FileExists(t, filepath.Join(dir, name))
	}
}

func TestExport_UnknownExtension(t *testing.T) {
	writer := NewWriter(t.TempDir())

	err := writer.Export(sampleDataset(t), "out.parquet")
	require.Error(t, err)

	var formatErr *FormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestExport_UnwritablePath(t *testing.T) {
	writer := NewWriter("")

	err := writer.ExportCSV(sampleDataset(t), filepath.Join(string(os.PathSeparator), "dev", "null", "nope", "out.csv"), CSVOptions{})
	assert.Error(t, err)
}

func TestExport_FailureLeavesNoPartialFile(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(dir)
	ds := sampleDataset(t)

	target := filepath.Join(dir, "out.csv")
	require.NoError(t, writer.ExportCSV(ds, target, CSVOptions{}))
	original, err := os.ReadFile(target)
	require.NoError(t, err)

	// A failed export must leave the previous file intact and no temp files.
	err = writer.ExportCSV(ds, filepath.Join(dir, "missing-dir-\x00", "out.csv"), CSVOptions{})
	assert.Error(t, err)

	after, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, original, after)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		name string
		in   dataset.Value
		want string
	}{
		{"nil", nil, ""},
		{"float full precision", 0.30000000000000004, "0.30000000000000004"},
		{"integer-valued float", 42.0, "42"},
		{"bool", true, "true"},
		{"string", "hello", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatCell(tt.in))
		})
	}
}
