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
)

// CommitCmd returns the commit command.
func CommitCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.StringFlag{
			Name:    "message",
			Aliases: []string{"m"},
			Usage:   "Commit message",
		},
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"F"},
			Usage:   "Read the commit message from a file",
		},
		&cli.StringFlag{
			Name:  "extra-args",
			Usage: "Extra arguments passed through to git commit (e.g. \"--signoff\")",
		},
		&cli.BoolFlag{
			Name:  "no-verify",
			Usage: "Skip convention validation of the message",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Print the message without committing",
		},
	)

	return &cli.Command{
		Name:   "commit",
		Usage:  "Create a commit whose message follows the configured convention",
		Flags:  flags,
		Action: commitAction,
	}
}

func commitAction(c *cli.Context) error {
	plugin, settings, err := loadPlugin(c)
	if err != nil {
		return err
	}

	message, err := commitMessage(c)
	if err != nil {
		return err
	}
	if message == "" {
		return cli.Exit("no commit message: use --message or --file", 1)
	}

	if !c.Bool("no-verify") {
		if err := validateMessage(plugin, settings.Name, message); err != nil {
			return err
		}
	}

	if c.Bool("dry-run") {
		fmt.Println(message)
		return nil
	}

	reader := newReader(c, settings)
	clean, err := reader.IsStagingClean(c.Context)
	if err != nil {
		return err
	}
	if clean {
		return cli.Exit("nothing to commit: staging area is empty", 1)
	}

	res, err := reader.Commit(c.Context, message, strings.Fields(c.String("extra-args"))...)
	if err != nil {
		return err
	}
	if res.Failed() {
		return cli.Exit(strings.TrimSpace(res.Err), exitCode(res))
	}

	fmt.Print(res.Out)
	color.Green("Commit created.")
	return nil
}

func commitMessage(c *cli.Context) (string, error) {
	if msg := c.String("message"); msg != "" {
		return msg, nil
	}
	if path := c.String("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read message file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	return "", nil
}

// validateMessage checks the message against the convention's schema
// pattern when the convention declares one.
func validateMessage(plugin cz.Plugin, convention, message string) error {
	pattern, err := plugin.SchemaPattern()
	if errors.Is(err, cz.ErrUnsupported) {
		return nil
	}
	if err != nil {
		return err
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid schema pattern: %w", err)
	}
	if !re.MatchString(message) {
		return cli.Exit(fmt.Sprintf("message does not follow the %s convention:\n%s", convention, message), 1)
	}
	return nil
}
