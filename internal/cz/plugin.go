// Package cz defines the contract between the tool and commit-message
// conventions. A convention supplies the prompts and formatting used to
// compose a message, plus declarative classification metadata consumed by
// release tooling.
package cz

import (
	"errors"
	"strings"

	"github.com/czkit/czkit/config"
)

// ErrUnsupported marks an optional capability a convention does not
// implement. Callers distinguish it from real failures with errors.Is.
var ErrUnsupported = errors.New("not supported by this convention")

// Bump severities understood by release tooling; BumpMap values use this
// vocabulary.
const (
	SeverityMajor = "MAJOR"
	SeverityMinor = "MINOR"
	SeverityPatch = "PATCH"
)

// Question is one prompt in the answer-collection flow. The interactive
// front end owns presentation; this package only carries the data.
type Question struct {
	Type    string // "input", "list" or "confirm"
	Name    string
	Message string
	Choices []Choice
	Default string
}

// Choice is one selectable option of a list question.
type Choice struct {
	Value string
	Name  string
}

// Answers maps question names to the values collected for them.
type Answers map[string]string

// Plugin is the contract every commit-message convention satisfies.
//
// Questions and Message are mandatory. Everything else carries a default
// from Base: Example, Schema, SchemaPattern and Info report ErrUnsupported
// until overridden, ProcessCommit keeps the first line, and the four
// classification slots are empty.
//
// The classification slots are declarative only. Release tooling applies
// BumpPattern or ChangelogPattern to a commit title and looks the captured
// token up in the paired map to decide a version-bump severity or a
// changelog section; a title the pattern does not match is simply not
// classified. Conventions author their patterns under that contract.
type Plugin interface {
	// Questions produces the prompts needed to build a commit message.
	Questions() []Question
	// Message formats the final commit message from collected answers.
	Message(answers Answers) (string, error)

	Example() (string, error)
	Schema() (string, error)
	SchemaPattern() (string, error)
	Info() (string, error)

	// ProcessCommit prepares a commit's text for display.
	ProcessCommit(text string) string

	BumpPattern() string
	BumpMap() map[string]string
	ChangelogPattern() string
	ChangelogMap() map[string]string

	// Style returns the prompt style table: built-in defaults merged with
	// the overrides present in the settings.
	Style() map[string]string
}

// Base supplies the default behavior for everything a convention is not
// required to implement. Concrete conventions embed it and override what
// they support.
type Base struct {
	Settings *config.Settings
}

// NewBase binds a convention to the shared settings, installing the
// default style table when the settings carry none. The installation
// happens at most once per settings object; settings that already have a
// style entry are left alone.
func NewBase(settings *config.Settings) Base {
	settings.EnsureDefaultStyle()
	return Base{Settings: settings}
}

func (Base) Example() (string, error)       { return "", ErrUnsupported }
func (Base) Schema() (string, error)        { return "", ErrUnsupported }
func (Base) SchemaPattern() (string, error) { return "", ErrUnsupported }
func (Base) Info() (string, error)          { return "", ErrUnsupported }

// ProcessCommit returns the first line of the input.
func (Base) ProcessCommit(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx != -1 {
		return text[:idx]
	}
	return text
}

func (Base) BumpPattern() string             { return "" }
func (Base) BumpMap() map[string]string      { return nil }
func (Base) ChangelogPattern() string        { return "" }
func (Base) ChangelogMap() map[string]string { return nil }

// Style merges the built-in role table with the style entries in the
// settings; settings entries win per role, roles they omit keep the
// default value.
func (b Base) Style() map[string]string {
	merged := config.DefaultStyle()
	if b.Settings != nil {
		for role, style := range b.Settings.Style {
			merged[role] = style
		}
	}
	return merged
}
