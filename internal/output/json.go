package output

import (
	"encoding/json"
	"fmt"
)

// JSONWriter renders a check report as JSON.
type JSONWriter struct{}

// JSONReport is the JSON output structure for a check run.
type JSONReport struct {
	RepoPath     string       `json:"repo"`
	Convention   string       `json:"convention"`
	Range        string       `json:"range,omitempty"`
	TotalCommits int          `json:"totalCommits"`
	InvalidCount int          `json:"invalidCount"`
	Items        []JSONResult `json:"items"`
}

// JSONResult is the JSON output structure for a single commit verdict.
type JSONResult struct {
	Rev   string `json:"rev"`
	Title string `json:"title"`
	Valid bool   `json:"valid"`
}

// Write outputs the check report as indented JSON.
func (w *JSONWriter) Write(report *CheckReport, options Options) error {
	items := make([]JSONResult, len(report.Results))
	for i, res := range report.Results {
		items[i] = JSONResult{
			Rev:   res.Commit.Rev(),
			Title: res.Commit.Title(),
			Valid: res.Valid,
		}
	}

	jsonReport := JSONReport{
		RepoPath:     report.RepoPath,
		Convention:   report.Convention,
		Range:        report.Range,
		TotalCommits: len(report.Results),
		InvalidCount: report.InvalidCount(),
		Items:        items,
	}

	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(jsonReport); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
