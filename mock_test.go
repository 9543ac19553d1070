package execshell

import (
	"bytes"
	"io"
)

// mockTerminal implements terminalInterface for testing.
//
// Input comes from a fixed string and output is collected in a buffer, so
// tests can drive the shell key by key without a real terminal.
type mockTerminal struct {
	input       []rune       // Pre-configured input sequence for testing
	inputPos    int          // Current position in the input sequence
	rawMode     bool         // Track raw mode state for test verification
	restoreCall int          // Number of Restore calls
	closed      bool         // Close was called
	output      bytes.Buffer // Everything the shell wrote
}

func newMockTerminal(input string) *mockTerminal {
	return &mockTerminal{input: []rune(input)}
}

func (m *mockTerminal) SetRaw() error {
	m.rawMode = true
	return nil
}

func (m *mockTerminal) Restore() error {
	m.rawMode = false
	m.restoreCall++
	return nil
}

func (m *mockTerminal) ReadRune() (rune, int, error) {
	if m.inputPos >= len(m.input) {
		return 0, 0, io.EOF
	}
	r := m.input[m.inputPos]
	m.inputPos++
	return r, 1, nil
}

func (m *mockTerminal) Output() io.Writer {
	return &m.output
}

func (m *mockTerminal) Close() error {
	m.closed = true
	return nil
}
