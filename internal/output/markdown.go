package output

import "fmt"

// MarkdownWriter renders a check report as a Markdown document.
type MarkdownWriter struct{}

// Write outputs the check report as a Markdown table.
func (w *MarkdownWriter) Write(report *CheckReport, options Options) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintln(out, "# Convention Check")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Repository:** %s\n\n", report.RepoPath)
	fmt.Fprintf(out, "**Convention:** %s\n\n", report.Convention)
	if report.Range != "" {
		fmt.Fprintf(out, "**Range:** %s\n\n", report.Range)
	}
	fmt.Fprintf(out, "**Commits checked:** %d, **invalid:** %d\n\n", len(report.Results), report.InvalidCount())

	fmt.Fprintln(out, "| Rev | Status | Title |")
	fmt.Fprintln(out, "|-----|--------|-------|")
	for _, res := range report.Results {
		status := "ok"
		if !res.Valid {
			status = "invalid"
		}
		rev := res.Commit.Rev()
		if len(rev) > 7 {
			rev = rev[:7]
		}
		fmt.Fprintf(out, "| `%s` | %s | %s |\n", rev, status, res.Commit.Title())
	}
	return nil
}
