package git

import "testing"

func TestNewCommit_TrimsFields(t *testing.T) {
	c := NewCommit("  abc123\n", "  fix: typo  ", "\nlonger description\n\n")

	if c.Rev() != "abc123" {
		t.Errorf("Rev() = %q", c.Rev())
	}
	if c.Title() != "fix: typo" {
		t.Errorf("Title() = %q", c.Title())
	}
	if c.Body() != "longer description" {
		t.Errorf("Body() = %q", c.Body())
	}
}

func TestCommit_Message(t *testing.T) {
	c := NewCommit("abc123", "feat: add parser", "first body line\nsecond body line")

	expected := "feat: add parser\n\nfirst body line\nsecond body line"
	if c.Message() != expected {
		t.Errorf("Message() = %q, expected %q", c.Message(), expected)
	}
}

func TestCommit_String_UsesShortRev(t *testing.T) {
	c := NewCommit("1234567890abcdef", "fix: typo", "")

	if got := c.String(); got != "fix: typo (1234567)" {
		t.Errorf("String() = %q", got)
	}
}

func TestNewTag_TrimsFields(t *testing.T) {
	tag := NewTag(" v1.0.0 ", " abc123 ", " 2023-01-01 ")

	if tag.Name() != "v1.0.0" || tag.Rev() != "abc123" || tag.Date() != "2023-01-01" {
		t.Errorf("tag = %q %q %q", tag.Name(), tag.Rev(), tag.Date())
	}
	if got := tag.String(); got != "v1.0.0 (abc123)" {
		t.Errorf("String() = %q", got)
	}
}

// A commit and a tag naming the same revision are the same history object.
// Identity lives on the shared Object contract, not on the concrete type.
func TestSameObject_AcrossConcreteTypes(t *testing.T) {
	commit := NewCommit("abc123", "fix: typo", "")
	tag := NewTag("v1.0.0", "abc123", "2023-01-01")
	other := NewCommit("def456", "feat: other", "")

	if !SameObject(commit, tag) {
		t.Error("commit and tag with equal revision should compare equal")
	}
	if !SameObject(tag, commit) {
		t.Error("SameObject should be symmetric")
	}
	if SameObject(commit, other) {
		t.Error("commits with different revisions should not compare equal")
	}
}
