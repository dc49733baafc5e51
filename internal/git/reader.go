package git

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/czkit/czkit/internal/shell"
)

const (
	// DefaultLogFormat prints the revision hash, the subject and the body,
	// each starting on its own line.
	DefaultLogFormat = "%H%n%s%n%b"

	// DefaultOuterDelimiter frames consecutive commits in combined log
	// output. Commit bodies may contain arbitrary newlines, so a plain
	// newline split would misparse them; the marker only has to be a
	// string that never occurs in real commit text.
	DefaultOuterDelimiter = "----------commit-delimiter----------"

	// DefaultInnerDelimiter separates fields formatted on a single line,
	// such as the name/revision/date triple of a tag listing.
	DefaultInnerDelimiter = "---inner_delimiter---"

	// DefaultDateFormat is the strftime pattern used for tag dates when
	// the caller does not supply one.
	DefaultDateFormat = "%Y-%m-%d"
)

// Options configures how the Reader frames and filters history output.
type Options struct {
	// LogFormat is the per-commit pretty format handed to git log.
	LogFormat string
	// OuterDelimiter is appended to LogFormat to frame consecutive commits.
	OuterDelimiter string
	// InnerDelimiter separates fields within a single formatted line.
	InnerDelimiter string
	// IgnoredTagFormats holds glob patterns for tag names to drop from
	// listings (build markers, nightly tags and the like).
	IgnoredTagFormats []string
}

// Reader reads history from a git repository through the git CLI. Every
// operation builds an argument vector, hands it to the runner and parses
// the captured output; command failure surfaces as empty or absent data,
// never as a panic.
type Reader struct {
	run  shell.Runner
	opts Options
}

// NewReader builds a reader over the given runner, filling unset options
// with the defaults.
func NewReader(run shell.Runner, opts Options) *Reader {
	if opts.LogFormat == "" {
		opts.LogFormat = DefaultLogFormat
	}
	if opts.OuterDelimiter == "" {
		opts.OuterDelimiter = DefaultOuterDelimiter
	}
	if opts.InnerDelimiter == "" {
		opts.InnerDelimiter = DefaultInnerDelimiter
	}
	return &Reader{run: run, opts: opts}
}

// Commits returns the commits reachable from end, excluding those
// reachable from start when start is non-empty. end defaults to HEAD.
// Parsing is lenient: chunks that trim to nothing or are missing the
// rev/title lines are skipped, and empty output yields an empty slice.
func (r *Reader) Commits(ctx context.Context, start, end string) []Commit {
	if end == "" {
		end = "HEAD"
	}
	rangeArg := end
	if start != "" {
		rangeArg = start + ".." + end
	}

	res := r.run.Run(ctx, "git", "log", "--pretty="+r.opts.LogFormat+r.opts.OuterDelimiter, rangeArg)
	if res.Out == "" {
		return nil
	}

	var commits []Commit
	for _, chunk := range strings.Split(res.Out, r.opts.OuterDelimiter) {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		lines := strings.Split(chunk, "\n")
		if len(lines) < 2 {
			continue
		}
		body := strings.Join(lines[2:], "\n")
		commits = append(commits, NewCommit(lines[0], lines[1], body))
	}
	return commits
}

// Tags returns all tags, newest first, with committer dates rendered per
// dateFormat (a git strftime pattern; DefaultDateFormat when empty). On
// command failure or empty output it returns an empty slice. The tool's
// ordering (committer date descending) is preserved, never re-sorted.
func (r *Reader) Tags(ctx context.Context, dateFormat string) []Tag {
	if dateFormat == "" {
		dateFormat = DefaultDateFormat
	}
	inner := r.opts.InnerDelimiter
	format := "%(refname:lstrip=2)" + inner + "%(objectname)" + inner + "%(committerdate:format:" + dateFormat + ")"

	res := r.run.Run(ctx, "git", "tag", "--format="+format, "--sort=-committerdate")
	if res.Err != "" || res.Out == "" {
		return nil
	}

	// The output terminates with a newline, so the final element of the
	// split is an empty artifact.
	lines := strings.Split(res.Out, "\n")
	lines = lines[:len(lines)-1]

	tags := make([]Tag, 0, len(lines))
	for _, line := range lines {
		fields := strings.Split(line, inner)
		if len(fields) != 3 {
			continue
		}
		if r.tagIgnored(fields[0]) {
			continue
		}
		tags = append(tags, NewTag(fields[0], fields[1], fields[2]))
	}
	return tags
}

// TagExists reports whether name appears as a listed entry in the tag
// listing.
func (r *Reader) TagExists(ctx context.Context, name string) bool {
	res := r.run.Run(ctx, "git", "tag", "--list", name)
	for _, line := range strings.Split(res.Out, "\n") {
		if strings.TrimSpace(line) == name {
			return true
		}
	}
	return false
}

// LatestTagName returns the most recent tag name. ok is false when the
// underlying command reports an error, e.g. when no tags exist.
func (r *Reader) LatestTagName(ctx context.Context) (name string, ok bool) {
	res := r.run.Run(ctx, "git", "describe", "--abbrev=0", "--tags")
	if res.Err != "" {
		return "", false
	}
	return strings.TrimSpace(res.Out), true
}

// TagNames returns all tag names, trimmed and non-empty, minus the ones
// matching an ignored glob. Empty on command failure.
func (r *Reader) TagNames(ctx context.Context) []string {
	res := r.run.Run(ctx, "git", "tag", "--list")
	if res.Err != "" {
		return nil
	}

	var names []string
	for _, line := range strings.Split(res.Out, "\n") {
		name := strings.TrimSpace(line)
		if name == "" || r.tagIgnored(name) {
			continue
		}
		names = append(names, name)
	}
	return names
}

// ProjectRoot returns the absolute top-level directory of the repository.
// ok is false when the command fails, e.g. outside any repository.
func (r *Reader) ProjectRoot(ctx context.Context) (root string, ok bool) {
	res := r.run.Run(ctx, "git", "rev-parse", "--show-toplevel")
	if res.Err != "" {
		return "", false
	}
	return strings.TrimSpace(res.Out), true
}

// IsStagingClean reports whether both the unstaged and the staged diff
// name listings are empty. A failing diff command is surfaced as an error
// rather than folded into "clean".
func (r *Reader) IsStagingClean(ctx context.Context) (bool, error) {
	unstaged := r.run.Run(ctx, "git", "diff", "--no-ext-diff", "--name-only")
	if unstaged.Failed() {
		return false, fmt.Errorf("git diff: %s", strings.TrimSpace(unstaged.Err))
	}
	staged := r.run.Run(ctx, "git", "diff", "--no-ext-diff", "--cached", "--name-only")
	if staged.Failed() {
		return false, fmt.Errorf("git diff --cached: %s", strings.TrimSpace(staged.Err))
	}
	return unstaged.Out == "" && staged.Out == "", nil
}

// CreateTag creates a tag with the given name and returns the raw process
// result for the caller to inspect.
func (r *Reader) CreateTag(ctx context.Context, name string) shell.Result {
	return r.run.Run(ctx, "git", "tag", name)
}

// Commit records the staged changes with the given message. The message
// is handed to git through a temporary file so multi-line and quoted
// content survives intact; the file is removed on every exit path,
// including a failed commit invocation. The returned error covers
// temp-file I/O only; git's own failure stays in the Result.
func (r *Reader) Commit(ctx context.Context, message string, extraArgs ...string) (shell.Result, error) {
	f, err := os.CreateTemp("", "czkit-commit-*")
	if err != nil {
		return shell.Result{}, fmt.Errorf("create commit message file: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := f.WriteString(message); err != nil {
		f.Close()
		return shell.Result{}, fmt.Errorf("write commit message file: %w", err)
	}
	if err := f.Close(); err != nil {
		return shell.Result{}, fmt.Errorf("close commit message file: %w", err)
	}

	args := append([]string{"commit"}, extraArgs...)
	args = append(args, "-F", f.Name())
	return r.run.Run(ctx, "git", args...), nil
}

// tagIgnored checks a tag name against the ignored glob patterns.
func (r *Reader) tagIgnored(name string) bool {
	name = strings.TrimSpace(name)
	for _, pattern := range r.opts.IgnoredTagFormats {
		if matched, _ := doublestar.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
