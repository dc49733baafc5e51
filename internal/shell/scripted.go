package shell

import "context"

// ScriptedRunner is a test double for Runner. It replays canned results in
// call order and records every issued argv so tests can assert on command
// construction without a real binary.
type ScriptedRunner struct {
	Results []Result
	Calls   [][]string
}

// Run records the argv and pops the next scripted result. Once the script
// is exhausted it returns zero Results.
func (s *ScriptedRunner) Run(_ context.Context, name string, args ...string) Result {
	argv := append([]string{name}, args...)
	s.Calls = append(s.Calls, argv)

	if len(s.Results) == 0 {
		return Result{}
	}
	res := s.Results[0]
	s.Results = s.Results[1:]
	return res
}

// LastCall returns the most recently issued argv, or nil before any call.
func (s *ScriptedRunner) LastCall() []string {
	if len(s.Calls) == 0 {
		return nil
	}
	return s.Calls[len(s.Calls)-1]
}

// Compile-time interface conformance check.
var _ Runner = (*ScriptedRunner)(nil)
