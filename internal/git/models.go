package git

import "strings"

// Object is the shared identity contract for history records. A record's
// revision hash is its sole identity: two objects naming the same revision
// refer to the same point in history, even when one is a Commit and the
// other a Tag.
type Object interface {
	Rev() string
}

// SameObject reports whether two history records name the same revision.
func SameObject(a, b Object) bool {
	return a.Rev() == b.Rev()
}

// Commit is an immutable record of one commit parsed from log output.
type Commit struct {
	rev   string
	title string
	body  string
}

// NewCommit builds a commit record from raw fields. All fields are trimmed.
func NewCommit(rev, title, body string) Commit {
	return Commit{
		rev:   strings.TrimSpace(rev),
		title: strings.TrimSpace(title),
		body:  strings.TrimSpace(body),
	}
}

// Rev returns the revision hash identifying the commit.
func (c Commit) Rev() string { return c.rev }

// Title returns the first line of the commit message.
func (c Commit) Title() string { return c.title }

// Body returns everything after the title.
func (c Commit) Body() string { return c.body }

// Message reassembles the full commit message: title, blank line, body.
func (c Commit) Message() string {
	return c.title + "\n\n" + c.body
}

func (c Commit) String() string {
	return c.title + " (" + shortRev(c.rev) + ")"
}

// Tag is an immutable record of one tag parsed from tag-listing output.
// Date carries the committer date already rendered with the caller's
// date format.
type Tag struct {
	rev  string
	name string
	date string
}

// NewTag builds a tag record from raw fields. All fields are trimmed.
func NewTag(name, rev, date string) Tag {
	return Tag{
		rev:  strings.TrimSpace(rev),
		name: strings.TrimSpace(name),
		date: strings.TrimSpace(date),
	}
}

// Rev returns the revision hash the tag points at.
func (t Tag) Rev() string { return t.rev }

// Name returns the tag name.
func (t Tag) Name() string { return t.name }

// Date returns the formatted committer date.
func (t Tag) Date() string { return t.date }

func (t Tag) String() string {
	return t.name + " (" + shortRev(t.rev) + ")"
}

func shortRev(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// Compile-time checks that both record types satisfy the identity contract.
var (
	_ Object = Commit{}
	_ Object = Tag{}
)
