package cmd

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/czkit/czkit/internal/cz"
)

// ExampleCmd returns the example command.
func ExampleCmd() *cli.Command {
	return &cli.Command{
		Name:   "example",
		Usage:  "Show an example message for the configured convention",
		Action: capabilityAction("an example", cz.Plugin.Example),
	}
}

// SchemaCmd returns the schema command.
func SchemaCmd() *cli.Command {
	return &cli.Command{
		Name:   "schema",
		Usage:  "Show the message schema of the configured convention",
		Action: capabilityAction("a schema", cz.Plugin.Schema),
	}
}

// InfoCmd returns the info command.
func InfoCmd() *cli.Command {
	return &cli.Command{
		Name:   "info",
		Usage:  "Show documentation for the configured convention",
		Action: capabilityAction("documentation", cz.Plugin.Info),
	}
}

// ListCmd returns the ls command.
func ListCmd() *cli.Command {
	return &cli.Command{
		Name:  "ls",
		Usage: "List the available conventions",
		Action: func(c *cli.Context) error {
			for _, name := range cz.Names() {
				fmt.Println(name)
			}
			return nil
		},
	}
}

// capabilityAction prints an optional plugin capability, reporting an
// unsupported one distinctly from a real failure.
func capabilityAction(what string, fetch func(cz.Plugin) (string, error)) cli.ActionFunc {
	return func(c *cli.Context) error {
		plugin, settings, err := loadPlugin(c)
		if err != nil {
			return err
		}
		text, err := fetch(plugin)
		if errors.Is(err, cz.ErrUnsupported) {
			return cli.Exit(fmt.Sprintf("convention %q does not provide %s", settings.Name, what), exitUnsupported)
		}
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	}
}
