package report

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"datamedic/internal/files"
	"datamedic/internal/inspect"
)

// Summary is the structured health report for a dataset.
type Summary struct {
	Score       float64         `json:"score"`
	Grade       string          `json:"grade"`
	Breakdown   Breakdown       `json:"breakdown"`
	Rows        int             `json:"rows"`
	Columns     int             `json:"columns"`
	Diagnosis   *inspect.Report `json:"diagnosis"`
	Suggestions []string        `json:"suggestions,omitempty"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// Reporter turns inspection reports into summaries and persists them.
// Relative target paths resolve under the reporter's output directory.
type Reporter struct {
	outputDir string
}

// NewReporter creates a reporter writing under outputDir.
// An empty outputDir resolves against the working directory.
func NewReporter(outputDir string) *Reporter {
	return &Reporter{outputDir: outputDir}
}

// Summarize computes the health score and builds the full summary for an
// inspection report.
func (r *Reporter) Summarize(diag *inspect.Report) *Summary {
	score, breakdown := Score(diag)
	summary := &Summary{
		Score:       score,
		Grade:       GradeFor(score),
		Breakdown:   breakdown,
		Rows:        diag.Rows,
		Columns:     diag.Columns,
		Diagnosis:   diag,
		Suggestions: diag.Suggestions(),
		GeneratedAt: time.Now().UTC(),
	}

	slog.Info("health summary generated",
		slog.Float64("score", summary.Score),
		slog.String("grade", summary.Grade),
		slog.Int("total_issues", diag.TotalIssues()))

	return summary
}

// Persist writes the summary to path. A .json extension writes the
// structured form; .txt (or no extension) writes the text rendering.
// The write is atomic: a temp file is renamed into place.
func (r *Reporter) Persist(summary *Summary, path string) error {
	fullPath := path
	if !filepath.IsAbs(path) && r.outputDir != "" {
		fullPath = filepath.Join(r.outputDir, path)
	}

	var data []byte
	switch strings.ToLower(filepath.Ext(fullPath)) {
	case ".json":
		var err error
		data, err = json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode summary: %w", err)
		}
		data = append(data, '\n')
	default:
		data = []byte(summary.Text())
	}

	if err := files.WriteFile(fullPath, data); err != nil {
		return fmt.Errorf("failed to persist report: %w", err)
	}

	slog.Info("report persisted", slog.String("path", fullPath))
	return nil
}

// Text renders the summary as a human-readable report.
func (s *Summary) Text() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Dataset Health Report\n")
	fmt.Fprintf(&b, "=====================\n")
	fmt.Fprintf(&b, "Generated: %s\n", s.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Shape: %d rows x %d columns\n\n", s.Rows, s.Columns)
	fmt.Fprintf(&b, "Health score: %.1f/100 (%s)\n\n", s.Score, s.Grade)

	fmt.Fprintf(&b, "Missing values (%d total):\n", s.Diagnosis.TotalMissing())
	for _, col := range sortedKeys(s.Diagnosis.Missing) {
		if n := s.Diagnosis.Missing[col]; n > 0 {
			fmt.Fprintf(&b, "  %s: %d\n", col, n)
		}
	}

	fmt.Fprintf(&b, "Duplicate rows: %d\n", s.Diagnosis.Duplicates)

	fmt.Fprintf(&b, "Outliers (%d total):\n", s.Diagnosis.TotalOutliers())
	for _, col := range sortedKeys(s.Diagnosis.Outliers) {
		if n := s.Diagnosis.Outliers[col]; n > 0 {
			fmt.Fprintf(&b, "  %s: %d\n", col, n)
		}
	}

	if len(s.Suggestions) > 0 {
		fmt.Fprintf(&b, "\nSuggestions:\n")
		for _, sg := range s.Suggestions {
			fmt.Fprintf(&b, "  - %s\n", sg)
		}
	}

	return b.String()
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
