package execshell

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyReaderReadKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  KeyEvent
	}{
		{name: "printable", input: "a", want: KeyEvent{Action: ActionNone, Rune: 'a'}},
		{name: "unicode", input: "é", want: KeyEvent{Action: ActionNone, Rune: 'é'}},
		{name: "carriage return", input: "\r", want: KeyEvent{Action: ActionSubmit, Rune: '\r'}},
		{name: "tab", input: "\t", want: KeyEvent{Action: ActionComplete, Rune: '\t'}},
		{name: "backspace", input: "\x7f", want: KeyEvent{Action: ActionBackspace, Rune: '\x7f'}},
		{name: "ctrl+c", input: "\x03", want: KeyEvent{Action: ActionCancel, Rune: '\x03'}},
		{name: "up", input: "\x1b[A", want: KeyEvent{Action: ActionHistoryUp, Rune: '\x1b', Seq: "[A"}},
		{name: "down", input: "\x1b[B", want: KeyEvent{Action: ActionHistoryDown, Rune: '\x1b', Seq: "[B"}},
		{name: "right", input: "\x1b[C", want: KeyEvent{Action: ActionMoveRight, Rune: '\x1b', Seq: "[C"}},
		{name: "left", input: "\x1b[D", want: KeyEvent{Action: ActionMoveLeft, Rune: '\x1b', Seq: "[D"}},
		{name: "delete", input: "\x1b[3~", want: KeyEvent{Action: ActionDeleteChar, Rune: '\x1b', Seq: "[3~"}},
		{name: "ss3 home", input: "\x1bOH", want: KeyEvent{Action: ActionMoveHome, Rune: '\x1b', Seq: "OH"}},
		{name: "unbound ctrl+right", input: "\x1b[1;5C", want: KeyEvent{Action: ActionNone, Rune: '\x1b', Seq: "[1;5C"}},
		{name: "unbound function key", input: "\x1b[15~", want: KeyEvent{Action: ActionNone, Rune: '\x1b', Seq: "[15~"}},
		{name: "alt+x", input: "\x1bx", want: KeyEvent{Action: ActionNone, Rune: '\x1b', Seq: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			kr := newKeyReader(newMockTerminal(tt.input), nil)
			got, err := kr.ReadKey()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			_, err = kr.ReadKey()
			assert.True(t, errors.Is(err, io.EOF), "the whole input should be consumed")
		})
	}
}

func TestKeyReaderTruncatedSequence(t *testing.T) {
	t.Parallel()

	kr := newKeyReader(newMockTerminal("\x1b["), nil)
	_, err := kr.ReadKey()
	assert.ErrorIs(t, err, io.EOF)
}

func TestKeyEventPrintable(t *testing.T) {
	t.Parallel()

	assert.True(t, KeyEvent{Rune: 'a'}.Printable())
	assert.True(t, KeyEvent{Rune: '日'}.Printable())
	assert.False(t, KeyEvent{Rune: '\x02'}.Printable())
	assert.False(t, KeyEvent{Rune: '\x1b', Seq: "[15~"}.Printable())
	assert.False(t, KeyEvent{Action: ActionSubmit, Rune: '\r'}.Printable())
}

func TestKeyEventString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "^B", KeyEvent{Rune: '\x02'}.String())
	assert.Equal(t, "^?", KeyEvent{Rune: 127}.String())
	assert.Equal(t, "ESC[15~", KeyEvent{Rune: '\x1b', Seq: "[15~"}.String())
	assert.Equal(t, "a", KeyEvent{Rune: 'a'}.String())
}

func TestKeyMapBind(t *testing.T) {
	t.Parallel()

	km := NewDefaultKeyMap()
	km.Bind('\x10', ActionHistoryUp) // Ctrl+P
	km.BindSequence("[5~", ActionHistoryUp)

	assert.Equal(t, ActionHistoryUp, km.GetAction('\x10'))
	assert.Equal(t, ActionHistoryUp, km.GetSequenceAction("[5~"))
	assert.Equal(t, ActionNone, km.GetAction('z'))

	var nilMap *KeyMap
	assert.Equal(t, ActionNone, nilMap.GetAction('\r'))
	assert.Equal(t, ActionNone, nilMap.GetSequenceAction("[A"))
}
