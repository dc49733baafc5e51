// Package conventional implements the conventional-commits message
// standard (type, optional scope, subject, body, footer).
package conventional

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/czkit/czkit/config"
	"github.com/czkit/czkit/internal/cz"
)

// Name is the registry key for this convention.
const Name = "conventional"

func init() {
	cz.Register(Name, func(s *config.Settings) cz.Plugin { return New(s) })
}

const schemaPattern = `(build|ci|docs|feat|fix|perf|refactor|style|test|chore|revert|bump)(\(\S+\))?!?:(\s.*)`

var commitParser = regexp.MustCompile(schemaPattern)

// Plugin implements cz.Plugin for conventional commits.
type Plugin struct {
	cz.Base
}

// New binds the convention to the shared settings.
func New(settings *config.Settings) *Plugin {
	return &Plugin{Base: cz.NewBase(settings)}
}

func (p *Plugin) Questions() []cz.Question {
	return []cz.Question{
		{
			Type:    "list",
			Name:    "prefix",
			Message: "Select the type of change you are committing",
			Choices: []cz.Choice{
				{Value: "fix", Name: "fix: a bug fix"},
				{Value: "feat", Name: "feat: a new feature"},
				{Value: "docs", Name: "docs: documentation only changes"},
				{Value: "style", Name: "style: formatting only, no meaning change"},
				{Value: "refactor", Name: "refactor: neither fixes a bug nor adds a feature"},
				{Value: "perf", Name: "perf: a change that improves performance"},
				{Value: "test", Name: "test: adding or correcting tests"},
				{Value: "build", Name: "build: changes to the build system or dependencies"},
				{Value: "ci", Name: "ci: changes to CI configuration"},
				{Value: "chore", Name: "chore: changes that touch neither source nor tests"},
				{Value: "revert", Name: "revert: reverts a previous commit"},
			},
		},
		{Type: "input", Name: "scope", Message: "Scope: component or file name (press enter to skip)"},
		{Type: "input", Name: "subject", Message: "Subject: imperative, lowercase, no final dot"},
		{Type: "input", Name: "body", Message: "Body: longer description (press enter to skip)"},
		{Type: "confirm", Name: "is_breaking_change", Message: "Is this a BREAKING CHANGE?", Default: "n"},
		{Type: "input", Name: "footer", Message: "Footer: issues, PRs, breaking-change details (press enter to skip)"},
	}
}

func (p *Plugin) Message(answers cz.Answers) (string, error) {
	prefix := strings.TrimSpace(answers["prefix"])
	subject := strings.TrimSpace(answers["subject"])
	if prefix == "" || subject == "" {
		return "", fmt.Errorf("a conventional commit needs at least a prefix and a subject")
	}

	var b strings.Builder
	b.WriteString(prefix)
	if scope := strings.TrimSpace(answers["scope"]); scope != "" {
		b.WriteString("(")
		b.WriteString(scope)
		b.WriteString(")")
	}
	b.WriteString(": ")
	b.WriteString(subject)

	body := strings.TrimSpace(answers["body"])
	if answers["is_breaking_change"] == "y" {
		body = strings.TrimSpace("BREAKING CHANGE: " + body)
	}
	if body != "" {
		b.WriteString("\n\n")
		b.WriteString(body)
	}
	if footer := strings.TrimSpace(answers["footer"]); footer != "" {
		b.WriteString("\n\n")
		b.WriteString(footer)
	}
	return b.String(), nil
}

func (p *Plugin) Example() (string, error) {
	return "fix: correct minor typos in code\n" +
		"\n" +
		"see the issue for details on the typos fixed\n" +
		"\n" +
		"closes issue #12", nil
}

func (p *Plugin) Schema() (string, error) {
	return "<type>(<scope>): <subject>\n" +
		"<BLANK LINE>\n" +
		"<body>\n" +
		"<BLANK LINE>\n" +
		"(BREAKING CHANGE: )<footer>", nil
}

func (p *Plugin) SchemaPattern() (string, error) {
	return schemaPattern, nil
}

func (p *Plugin) Info() (string, error) {
	return "The commit contains the following structural elements, to communicate\n" +
		"intent to the consumers of your library:\n" +
		"\n" +
		"fix: a commit of the type fix patches a bug in your codebase\n" +
		"(this correlates with PATCH in semantic versioning).\n" +
		"\n" +
		"feat: a commit of the type feat introduces a new feature to the codebase\n" +
		"(this correlates with MINOR in semantic versioning).\n" +
		"\n" +
		"BREAKING CHANGE: a commit that has the text BREAKING CHANGE: at the\n" +
		"beginning of its optional body or footer section introduces a breaking\n" +
		"API change (correlating with MAJOR in semantic versioning).\n" +
		"\n" +
		"Others: commit types other than fix: and feat: are allowed, for example\n" +
		"chore:, docs:, style:, refactor:, perf:, test:, and others.", nil
}

// ProcessCommit extracts the subject from a conventional title; text that
// does not follow the convention yields an empty string, which excludes
// it from display.
func (p *Plugin) ProcessCommit(text string) string {
	title := text
	if idx := strings.IndexByte(title, '\n'); idx != -1 {
		title = title[:idx]
	}
	m := commitParser.FindStringSubmatch(title)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[3])
}

func (p *Plugin) BumpPattern() string {
	return `^(BREAKING[\-\ ]CHANGE|feat|fix|refactor|perf)`
}

func (p *Plugin) BumpMap() map[string]string {
	return map[string]string{
		"BREAKING CHANGE": cz.SeverityMajor,
		"BREAKING-CHANGE": cz.SeverityMajor,
		"feat":            cz.SeverityMinor,
		"fix":             cz.SeverityPatch,
		"refactor":        cz.SeverityPatch,
		"perf":            cz.SeverityPatch,
	}
}

func (p *Plugin) ChangelogPattern() string {
	return `^(BREAKING[\-\ ]CHANGE|feat|fix)`
}

func (p *Plugin) ChangelogMap() map[string]string {
	return map[string]string{
		"BREAKING CHANGE": "BREAKING CHANGE",
		"BREAKING-CHANGE": "BREAKING CHANGE",
		"feat":            "Feat",
		"fix":             "Fix",
	}
}

// Compile-time interface conformance check.
var _ cz.Plugin = (*Plugin)(nil)
