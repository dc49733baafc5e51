package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

// TagCmd returns the tag command group.
func TagCmd() *cli.Command {
	return &cli.Command{
		Name:  "tag",
		Usage: "Inspect and create release tags",
		Subcommands: []*cli.Command{
			{
				Name:      "create",
				Usage:     "Create a tag, refusing duplicates",
				ArgsUsage: "NAME",
				Flags:     commonFlags(),
				Action:    tagCreateAction,
			},
			{
				Name:  "list",
				Usage: "List tags with revision and date, newest first",
				Flags: append(commonFlags(),
					&cli.StringFlag{
						Name:  "date-format",
						Usage: "Date format for the committer date (git strftime)",
						Value: "%Y-%m-%d",
					},
				),
				Action: tagListAction,
			},
			{
				Name:   "latest",
				Usage:  "Print the most recent tag name",
				Flags:  commonFlags(),
				Action: tagLatestAction,
			},
			{
				Name:      "exists",
				Usage:     "Exit zero when the named tag exists",
				ArgsUsage: "NAME",
				Flags:     commonFlags(),
				Action:    tagExistsAction,
			},
		},
	}
}

func tagArg(c *cli.Context) (string, error) {
	name := strings.TrimSpace(c.Args().First())
	if name == "" {
		return "", cli.Exit("a tag name is required", 1)
	}
	return name, nil
}

func tagCreateAction(c *cli.Context) error {
	name, err := tagArg(c)
	if err != nil {
		return err
	}
	settings, err := loadSettings(c)
	if err != nil {
		return err
	}
	reader := newReader(c, settings)

	if reader.TagExists(c.Context, name) {
		return cli.Exit(fmt.Sprintf("tag %q already exists", name), 1)
	}
	if res := reader.CreateTag(c.Context, name); res.Failed() {
		return cli.Exit(strings.TrimSpace(res.Err), exitCode(res))
	}
	color.Green("Created tag %s", name)
	return nil
}

func tagListAction(c *cli.Context) error {
	settings, err := loadSettings(c)
	if err != nil {
		return err
	}
	reader := newReader(c, settings)

	tags := reader.Tags(c.Context, c.String("date-format"))
	if len(tags) == 0 {
		fmt.Println("No tags found.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tREV\tDATE")
	for _, tag := range tags {
		rev := tag.Rev()
		if len(rev) > 7 {
			rev = rev[:7]
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", tag.Name(), rev, tag.Date())
	}
	return tw.Flush()
}

func tagLatestAction(c *cli.Context) error {
	settings, err := loadSettings(c)
	if err != nil {
		return err
	}
	reader := newReader(c, settings)

	name, ok := reader.LatestTagName(c.Context)
	if !ok {
		return cli.Exit("no tags found", 1)
	}
	fmt.Println(name)
	return nil
}

func tagExistsAction(c *cli.Context) error {
	name, err := tagArg(c)
	if err != nil {
		return err
	}
	settings, err := loadSettings(c)
	if err != nil {
		return err
	}
	reader := newReader(c, settings)

	if !reader.TagExists(c.Context, name) {
		return cli.Exit(fmt.Sprintf("tag %q does not exist", name), 1)
	}
	fmt.Printf("tag %q exists\n", name)
	return nil
}
