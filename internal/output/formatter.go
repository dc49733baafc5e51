package output

import (
	"io"
	"os"

	"github.com/czkit/czkit/internal/git"
)

// Compile-time interface conformance checks.
var (
	_ ReportWriter = (*ConsoleWriter)(nil)
	_ ReportWriter = (*JSONWriter)(nil)
	_ ReportWriter = (*MarkdownWriter)(nil)
)

// Format represents the report output format.
type Format string

const (
	FormatConsole  Format = "console"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Options controls report output behavior.
type Options struct {
	Format     Format
	OutputPath string
}

// CheckResult pairs a commit with its validation verdict.
type CheckResult struct {
	Commit git.Commit
	Valid  bool
}

// CheckReport is one convention-check run over a set of commits.
type CheckReport struct {
	RepoPath   string
	Convention string
	Range      string
	Results    []CheckResult
}

// InvalidCount returns the number of commits that failed validation.
func (r *CheckReport) InvalidCount() int {
	count := 0
	for _, res := range r.Results {
		if !res.Valid {
			count++
		}
	}
	return count
}

// ReportWriter renders a check report in one output format.
type ReportWriter interface {
	Write(report *CheckReport, options Options) error
}

// NewReportWriter returns the writer for the given format.
func NewReportWriter(format Format) ReportWriter {
	switch format {
	case FormatJSON:
		return &JSONWriter{}
	case FormatMarkdown:
		return &MarkdownWriter{}
	default:
		return &ConsoleWriter{}
	}
}

// ParseFormat maps a user-supplied format name to a Format, defaulting to
// console.
func ParseFormat(s string) Format {
	switch s {
	case "json":
		return FormatJSON
	case "markdown", "md":
		return FormatMarkdown
	default:
		return FormatConsole
	}
}

func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}
