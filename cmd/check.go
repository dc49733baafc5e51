package cmd

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/czkit/czkit/internal/cz"
	"github.com/czkit/czkit/internal/output"
)

// CheckCmd returns the check command.
func CheckCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.StringFlag{
			Name:  "rev-range",
			Usage: "Commit range to validate, e.g. v1.0.0..HEAD",
		},
		&cli.StringFlag{
			Name:    "message",
			Aliases: []string{"m"},
			Usage:   "Validate a single message instead of history",
		},
		&cli.StringFlag{
			Name:  "commit-msg-file",
			Usage: "Validate the message in the given file (commit-msg hook)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, json, markdown)",
			Value:   "console",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
	)

	return &cli.Command{
		Name:   "check",
		Usage:  "Validate commit messages against the configured convention",
		Flags:  flags,
		Action: checkAction,
	}
}

func checkAction(c *cli.Context) error {
	plugin, settings, err := loadPlugin(c)
	if err != nil {
		return err
	}

	pattern, err := plugin.SchemaPattern()
	if errors.Is(err, cz.ErrUnsupported) {
		return cli.Exit(fmt.Sprintf("convention %q does not declare a schema pattern", settings.Name), exitUnsupported)
	}
	if err != nil {
		return err
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid schema pattern: %w", err)
	}

	// Single-message modes validate without touching history.
	if msg := c.String("message"); msg != "" {
		return checkSingle(re, msg, settings.Name)
	}
	if path := c.String("commit-msg-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read commit message file: %w", err)
		}
		return checkSingle(re, string(data), settings.Name)
	}

	reader := newReader(c, settings)
	start, end := splitRevRange(c.String("rev-range"))
	commits := reader.Commits(c.Context, start, end)

	report := &output.CheckReport{
		RepoPath:   c.String("repo"),
		Convention: settings.Name,
		Range:      c.String("rev-range"),
	}
	for _, commit := range commits {
		report.Results = append(report.Results, output.CheckResult{
			Commit: commit,
			Valid:  re.MatchString(commit.Message()),
		})
	}

	format := output.ParseFormat(c.String("format"))
	writer := output.NewReportWriter(format)
	if err := writer.Write(report, output.Options{Format: format, OutputPath: c.String("output")}); err != nil {
		return err
	}

	if invalid := report.InvalidCount(); invalid > 0 {
		return cli.Exit(fmt.Sprintf("%d commit(s) do not follow the %s convention", invalid, settings.Name), 1)
	}
	return nil
}

func checkSingle(re *regexp.Regexp, message, convention string) error {
	if !re.MatchString(message) {
		return cli.Exit(fmt.Sprintf("message does not follow the %s convention:\n%s", convention, strings.TrimSpace(message)), 1)
	}
	color.Green("Message follows the %s convention", convention)
	return nil
}

// splitRevRange splits a user-supplied range into start and end revisions.
// An empty range means the whole history up to HEAD.
func splitRevRange(s string) (start, end string) {
	if s == "" {
		return "", "HEAD"
	}
	if idx := strings.Index(s, ".."); idx != -1 {
		start = s[:idx]
		end = strings.TrimPrefix(s[idx+2:], ".")
		if end == "" {
			end = "HEAD"
		}
		return start, end
	}
	return "", s
}
