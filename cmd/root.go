package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/czkit/czkit/config"
	"github.com/czkit/czkit/internal/cz"
	_ "github.com/czkit/czkit/internal/cz/conventional" // registers the built-in convention
	"github.com/czkit/czkit/internal/git"
	"github.com/czkit/czkit/internal/shell"
)

// Exit codes beyond the usual 0/1: a convention that does not provide a
// requested capability is reported distinctly from a real failure.
const exitUnsupported = 3

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "czkit",
		Usage:   "Commit-convention tooling for Git repositories",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "Convention to use (overrides configuration)",
			},
		},
		Commands: []*cli.Command{
			CheckCmd(),
			CommitCmd(),
			TagCmd(),
			ExampleCmd(),
			InfoCmd(),
			SchemaCmd(),
			ListCmd(),
		},
	}
}

// Common flags shared across repository-touching commands.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
			Value:   ".",
		},
	}
}

// loadSettings loads configuration and applies CLI overrides.
func loadSettings(c *cli.Context) (*config.Settings, error) {
	settings, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if name := c.String("name"); name != "" {
		settings.Name = name
	}
	return settings, nil
}

// loadPlugin builds the configured convention against the shared settings.
func loadPlugin(c *cli.Context) (cz.Plugin, *config.Settings, error) {
	settings, err := loadSettings(c)
	if err != nil {
		return nil, nil, err
	}
	plugin, err := cz.New(settings.Name, settings)
	if err != nil {
		return nil, nil, err
	}
	return plugin, settings, nil
}

// newReader builds a history reader rooted at the --repo flag.
func newReader(c *cli.Context, settings *config.Settings) *git.Reader {
	return git.NewReader(shell.ExecRunner{Dir: c.String("repo")}, git.Options{
		IgnoredTagFormats: settings.IgnoredTagFormats,
	})
}

// exitCode returns a usable exit code for a failed process result.
func exitCode(res shell.Result) int {
	if res.ExitCode != 0 {
		return res.ExitCode
	}
	return 1
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
