package output

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
)

// ConsoleWriter renders a check report for humans.
type ConsoleWriter struct{}

// Write prints the report with one line per commit and a colored summary.
func (w *ConsoleWriter) Write(report *CheckReport, options Options) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintf(out, "Convention check (%s)\n", report.Convention)
	fmt.Fprintf(out, "Repository: %s\n", report.RepoPath)
	if report.Range != "" {
		fmt.Fprintf(out, "Range: %s\n", report.Range)
	}
	fmt.Fprintln(out)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "REV\tSTATUS\tTITLE")
	for _, res := range report.Results {
		status := color.GreenString("ok")
		if !res.Valid {
			status = color.RedString("invalid")
		}
		rev := res.Commit.Rev()
		if len(rev) > 7 {
			rev = rev[:7]
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", rev, status, res.Commit.Title())
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(out)

	if invalid := report.InvalidCount(); invalid > 0 {
		fmt.Fprintln(out, color.RedString("%d of %d commit(s) do not follow the convention", invalid, len(report.Results)))
	} else {
		fmt.Fprintln(out, color.GreenString("All %d commit(s) follow the convention", len(report.Results)))
	}
	return nil
}
