package pipeline

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datamedic/internal/clean"
	"datamedic/internal/dataset"
	"datamedic/internal/exporter"
	"datamedic/internal/report"
)

func buildDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds := dataset.New([]string{"id", "name"})
	rows := [][]dataset.Value{
		{1.0, "a"},
		{2.0, "b"},
		{3.0, "c"},
		{4.0, "d"},
		{5.0, "e"},
		{6.0, "f"},
		{7.0, nil},
		{8.0, "h"},
		{1.0, "a"},
		{2.0, "b"},
	}
	for _, row := range rows {
		require.NoError(t, ds.AppendRow(row))
	}
	return ds
}

func newPipeline(t *testing.T, dir string, cfg clean.Config, opts ...Option) *Pipeline {
	t.Helper()
	cleaner, err := clean.NewCleaner(cfg)
	require.NoError(t, err)
	return New(cleaner, exporter.NewWriter(dir), report.NewReporter(dir), opts...)
}

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	p := newPipeline(t, dir,
		clean.Config{Missing: clean.MissingDrop, Duplicates: clean.DuplicatesDrop, Outliers: clean.OutliersKeep},
		WithExports("cleaned.csv", "cleaned.json"),
		WithReport("report.json"),
	)

	ds := buildDataset(t)
	result, err := p.Run(context.Background(), ds)
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, 2, result.Before.Duplicates)
	assert.Equal(t, 1, result.Before.TotalMissing())
	assert.Equal(t, 7, result.Cleaned.NumRows())
	assert.Equal(t, 10, ds.NumRows(), "input dataset must not change")
	assert.Equal(t, 0, result.After.TotalIssues())
	assert.Equal(t, 100.0, result.Summary.Score)
	assert.NotEmpty(t, result.FixLog)

	assert.Equal(t, []string{"cleaned.csv", "cleaned.json"}, result.Exported)
	assert.FileExists(t, filepath.Join(dir, "cleaned.csv"))
	assert.FileExists(t, filepath.Join(dir, "cleaned.json"))
	assert.FileExists(t, filepath.Join(dir, "report.json"))
}

func TestRun_ExportFailureStopsPipeline(t *testing.T) {
	dir := t.TempDir()
	p := newPipeline(t, dir,
		clean.DefaultConfig(),
		WithExports("cleaned.unsupported", "cleaned.csv"),
		WithReport("report.txt"),
	)

	_, err := p.Run(context.Background(), buildDataset(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "export stage")

	// The failure aborts before later targets and the report.
	assert.NoFileExists(t, filepath.Join(dir, "cleaned.csv"))
	assert.NoFileExists(t, filepath.Join(dir, "report.txt"))
}

func TestRun_ReportFailureSurfaced(t *testing.T) {
	p := newPipeline(t, t.TempDir(),
		clean.DefaultConfig(),
		WithReport(filepath.Join("/dev/null/nope", "report.txt")),
	)

	_, err := p.Run(context.Background(), buildDataset(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report stage")
}

func TestRun_NoTargetsStillSummarizes(t *testing.T) {
	p := newPipeline(t, t.TempDir(), clean.DefaultConfig())

	result, err := p.Run(context.Background(), buildDataset(t))
	require.NoError(t, err)
	assert.NotNil(t, result.Summary)
	assert.Empty(t, result.Exported)
}

func TestRun_CancelledContext(t *testing.T) {
	p := newPipeline(t, t.TempDir(), clean.DefaultConfig(), WithExports("cleaned.csv"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Run(ctx, buildDataset(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_EmptyDataset(t *testing.T) {
	dir := t.TempDir()
	p := newPipeline(t, dir, clean.DefaultConfig(), WithExports("cleaned.csv"))

	result, err := p.Run(context.Background(), dataset.New([]string{"a"}))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Cleaned.NumRows())
	assert.Equal(t, 100.0, result.Summary.Score)
	assert.FileExists(t, filepath.Join(dir, "cleaned.csv"))
}
