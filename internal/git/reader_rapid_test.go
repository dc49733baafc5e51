package git

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/czkit/czkit/internal/shell"
)

type fakeCommit struct {
	rev   string
	title string
	body  string
}

// genFakeCommits produces well-formed commits whose text never collides
// with the outer delimiter.
func genFakeCommits() *rapid.Generator[[]fakeCommit] {
	line := rapid.StringMatching(`[a-zA-Z0-9 .,:#()/_-]{1,60}`)
	return rapid.Custom(func(t *rapid.T) []fakeCommit {
		count := rapid.IntRange(1, 20).Draw(t, "count")
		commits := make([]fakeCommit, count)
		for i := range commits {
			bodyLines := rapid.SliceOfN(line, 0, 5).Draw(t, fmt.Sprintf("body%d", i))
			commits[i] = fakeCommit{
				rev:   rapid.StringMatching(`[0-9a-f]{40}`).Draw(t, fmt.Sprintf("rev%d", i)),
				title: strings.TrimSpace(line.Draw(t, fmt.Sprintf("title%d", i))),
				body:  strings.TrimSpace(strings.Join(bodyLines, "\n")),
			}
		}
		return commits
	})
}

// renderLog reproduces the shape of git log --pretty=<format><delimiter>
// output for the default format.
func renderLog(commits []fakeCommit, delimiter string) string {
	var b strings.Builder
	for _, c := range commits {
		b.WriteString(c.rev)
		b.WriteByte('\n')
		b.WriteString(c.title)
		b.WriteByte('\n')
		b.WriteString(c.body)
		b.WriteByte('\n')
		b.WriteString(delimiter)
		b.WriteByte('\n')
	}
	return b.String()
}

// Any well-formed delimited log output parses back into one record per
// commit with field-exact rev, title and body.
func TestRapidCommits_FramingRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		commits := genFakeCommits().Draw(t, "commits")

		out := renderLog(commits, DefaultOuterDelimiter)
		run := &shell.ScriptedRunner{Results: []shell.Result{{Out: out}}}
		r := NewReader(run, Options{})

		parsed := r.Commits(context.Background(), "", "")

		// Commits whose title trims to empty collapse to a single line and
		// are skipped by the lenient parser.
		expected := make([]fakeCommit, 0, len(commits))
		for _, c := range commits {
			if c.title == "" && c.body == "" {
				continue
			}
			expected = append(expected, c)
		}

		if len(parsed) != len(expected) {
			t.Fatalf("parsed %d commits, expected %d", len(parsed), len(expected))
		}
		for i, want := range expected {
			got := parsed[i]
			if got.Rev() != want.rev {
				t.Fatalf("commit %d rev = %q, expected %q", i, got.Rev(), want.rev)
			}
			if got.Title() != want.title {
				t.Fatalf("commit %d title = %q, expected %q", i, got.Title(), want.title)
			}
			if got.Body() != want.body {
				t.Fatalf("commit %d body = %q, expected %q", i, got.Body(), want.body)
			}
		}
	})
}
