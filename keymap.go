package execshell

import (
	"strings"
)

// KeyAction is what the shell does in response to a key.
type KeyAction int

// Key action constants define the actions that can be performed when keys are pressed
const (
	ActionNone KeyAction = iota // printable characters are inserted, anything else is unhandled
	ActionSubmit
	ActionCancel
	ActionMoveLeft
	ActionMoveRight
	ActionHistoryUp
	ActionHistoryDown
	ActionMoveHome
	ActionMoveEnd
	ActionBackspace
	ActionDeleteChar
	ActionDeleteLine
	ActionDeleteToEnd
	ActionDeleteWordBack
	ActionComplete
)

// KeyMap holds the key binding configuration
type KeyMap struct {
	bindings  map[rune]KeyAction
	sequences map[string]KeyAction
}

// NewDefaultKeyMap creates the default key bindings.
//
// Default key bindings:
//   - Enter/Return: Submit the line
//   - Ctrl+C: Leave the shell
//   - Left/Right: Move the cursor
//   - Up/Down: Browse history
//   - Backspace: Delete character backwards
//   - Delete: Delete character forwards
//   - Tab: Complete from history
//   - Ctrl+A / Home, Ctrl+E / End: Move to beginning / end of line
//   - Ctrl+U: Delete entire line
//   - Ctrl+K: Delete from cursor to end of line
//   - Ctrl+W: Delete word backwards
func NewDefaultKeyMap() *KeyMap {
	km := &KeyMap{
		bindings:  make(map[rune]KeyAction),
		sequences: make(map[string]KeyAction),
	}

	km.bindings['\r'] = ActionSubmit
	km.bindings['\n'] = ActionSubmit
	km.bindings['\x03'] = ActionCancel         // Ctrl+C
	km.bindings['\x01'] = ActionMoveHome       // Ctrl+A
	km.bindings['\x05'] = ActionMoveEnd        // Ctrl+E
	km.bindings['\x0B'] = ActionDeleteToEnd    // Ctrl+K
	km.bindings['\x15'] = ActionDeleteLine     // Ctrl+U
	km.bindings['\x17'] = ActionDeleteWordBack // Ctrl+W
	km.bindings['\t'] = ActionComplete
	km.bindings['\x7f'] = ActionBackspace
	km.bindings['\b'] = ActionBackspace

	// Escape sequences, without the leading ESC
	km.sequences["[A"] = ActionHistoryUp
	km.sequences["[B"] = ActionHistoryDown
	km.sequences["[C"] = ActionMoveRight
	km.sequences["[D"] = ActionMoveLeft
	km.sequences["[H"] = ActionMoveHome
	km.sequences["[F"] = ActionMoveEnd
	km.sequences["OH"] = ActionMoveHome
	km.sequences["OF"] = ActionMoveEnd
	km.sequences["[3~"] = ActionDeleteChar

	return km
}

// Bind adds or updates a key binding for a single character.
func (km *KeyMap) Bind(key rune, action KeyAction) {
	km.bindings[key] = action
}

// BindSequence adds or updates an escape sequence binding.
// The sequence should not include the initial ESC character.
//
// Example:
//
//	keyMap := execshell.NewDefaultKeyMap()
//	// Page Up browses history too (ESC + [5~)
//	keyMap.BindSequence("[5~", execshell.ActionHistoryUp)
func (km *KeyMap) BindSequence(seq string, action KeyAction) {
	km.sequences[seq] = action
}

// GetAction returns the action for a key, or ActionNone if not bound
func (km *KeyMap) GetAction(key rune) KeyAction {
	if km == nil || km.bindings == nil {
		return ActionNone
	}
	if action, exists := km.bindings[key]; exists {
		return action
	}
	return ActionNone
}

// GetSequenceAction returns the action for an escape sequence, or ActionNone if not bound
func (km *KeyMap) GetSequenceAction(seq string) KeyAction {
	if km == nil || km.sequences == nil {
		return ActionNone
	}
	if action, exists := km.sequences[seq]; exists {
		return action
	}
	return ActionNone
}

// KeyEvent is one decoded key press.
type KeyEvent struct {
	Action KeyAction
	Rune   rune   // the key read, ESC for escape sequences
	Seq    string // escape sequence without ESC, if any
}

// Printable reports whether the event inserts its rune into the buffer.
func (k KeyEvent) Printable() bool {
	return k.Action == ActionNone && k.Seq == "" && isPrintable(k.Rune)
}

// String describes the key for the "unhandled key" note.
func (k KeyEvent) String() string {
	if k.Seq != "" {
		return "ESC" + k.Seq
	}
	if k.Rune < 32 {
		return "^" + string(k.Rune+'@')
	}
	if k.Rune == 127 {
		return "^?"
	}
	return string(k.Rune)
}

func isPrintable(r rune) bool {
	return r >= 32 && r < 127 || r > 127
}

// runeReader is the part of terminalInterface the key reader needs.
type runeReader interface {
	ReadRune() (rune, int, error)
}

// keyReader turns the terminal's rune stream into key events.
type keyReader struct {
	in     runeReader
	keyMap *KeyMap
}

func newKeyReader(in runeReader, keyMap *KeyMap) *keyReader {
	if keyMap == nil {
		keyMap = NewDefaultKeyMap()
	}
	return &keyReader{in: in, keyMap: keyMap}
}

// ReadKey blocks until one key is available.
func (k *keyReader) ReadKey() (KeyEvent, error) {
	r, _, err := k.in.ReadRune()
	if err != nil {
		return KeyEvent{}, err
	}
	if r != '\x1b' {
		return KeyEvent{Action: k.keyMap.GetAction(r), Rune: r}, nil
	}

	seq, err := k.readEscapeSequence()
	if err != nil {
		return KeyEvent{}, err
	}
	return KeyEvent{Action: k.keyMap.GetSequenceAction(seq), Rune: r, Seq: seq}, nil
}

// readEscapeSequence reads the rest of a CSI or SS3 sequence after ESC.
func (k *keyReader) readEscapeSequence() (string, error) {
	seq := make([]rune, 0, 10) // Pre-allocate with capacity
	for range 10 {             // Limit to prevent infinite loop
		r, _, err := k.in.ReadRune()
		if err != nil {
			return "", err
		}
		seq = append(seq, r)

		s := string(seq)
		if len(seq) == 1 {
			if r != '[' && r != 'O' {
				return s, nil // Alt+key
			}
			continue
		}
		if seq[0] == 'O' {
			return s, nil
		}
		if strings.HasSuffix(s, "~") {
			return s, nil
		}
		// A CSI sequence ends at its first final byte.
		if r >= '@' && r <= '~' && r != '[' {
			return s, nil
		}
	}
	return string(seq), nil
}
