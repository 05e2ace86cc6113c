package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"datamedic/internal/clean"
	"datamedic/internal/dataset"
	"datamedic/internal/exporter"
	"datamedic/internal/infrastructure"
	"datamedic/internal/inspect"
	"datamedic/internal/report"
)

// Pipeline chains the cleaning, export, and reporting stages over a dataset.
// Stages run in order and the first failure stops the run; there is no
// partial-failure recovery beyond propagating the error.
type Pipeline struct {
	cleaner  *clean.Cleaner
	writer   *exporter.Writer
	reporter *report.Reporter

	exportTargets []string
	reportTarget  string
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithExports sets the file targets the cleaned dataset is written to.
// Formats are chosen per target by extension.
func WithExports(targets ...string) Option {
	return func(p *Pipeline) {
		p.exportTargets = append([]string(nil), targets...)
	}
}

// WithReport sets the file target the health summary is persisted to.
// Empty means the summary is computed but not written.
func WithReport(target string) Option {
	return func(p *Pipeline) {
		p.reportTarget = target
	}
}

// New creates a pipeline from its stage components.
func New(cleaner *clean.Cleaner, writer *exporter.Writer, reporter *report.Reporter, opts ...Option) *Pipeline {
	p := &Pipeline{
		cleaner:  cleaner,
		writer:   writer,
		reporter: reporter,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result collects everything a pipeline run produced.
type Result struct {
	RunID string

	// Before and After are the inspection reports around cleaning.
	Before *inspect.Report
	After  *inspect.Report

	// Cleaned is the treated dataset. The input dataset is untouched.
	Cleaned *dataset.Dataset

	// FixLog lists the treatments the cleaner applied.
	FixLog []string

	// Summary is the health summary of the cleaned dataset.
	Summary *report.Summary

	// Exported lists the target paths written, in order.
	Exported []string
}

// Run executes diagnose, treat, export, and report in sequence.
func (p *Pipeline) Run(ctx context.Context, ds *dataset.Dataset) (*Result, error) {
	runID := uuid.New().String()
	logger := infrastructure.LoggerFromContext(ctx).With("run_id", runID)

	result := &Result{RunID: runID}

	logger.InfoContext(ctx, "pipeline run started",
		"rows", ds.NumRows(),
		"columns", ds.NumColumns(),
		"export_targets", len(p.exportTargets))

	result.Before = inspect.Inspect(ds)
	for _, s := range result.Before.Suggestions() {
		logger.InfoContext(ctx, "diagnosis", "suggestion", s)
	}

	cleaned, err := p.cleaner.Treat(ds)
	if err != nil {
		return nil, fmt.Errorf("clean stage: %w", err)
	}
	result.Cleaned = cleaned
	result.FixLog = p.cleaner.FixLog()
	for _, entry := range result.FixLog {
		logger.InfoContext(ctx, "fix applied", "entry", entry)
	}

	for _, target := range p.exportTargets {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("export stage: %w", err)
		}
		if err := p.writer.Export(cleaned, target); err != nil {
			return nil, fmt.Errorf("export stage (%s): %w", target, err)
		}
		result.Exported = append(result.Exported, target)
	}

	result.After = inspect.Inspect(cleaned)
	result.Summary = p.reporter.Summarize(result.After)
	if p.reportTarget != "" {
		if err := p.reporter.Persist(result.Summary, p.reportTarget); err != nil {
			return nil, fmt.Errorf("report stage: %w", err)
		}
	}

	logger.InfoContext(ctx, "pipeline run completed",
		"score", result.Summary.Score,
		"grade", result.Summary.Grade,
		"rows_after", cleaned.NumRows())

	return result, nil
}
