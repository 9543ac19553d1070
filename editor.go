package execshell

import (
	"github.com/mattn/go-runewidth"
)

// DefaultQuitLine is the line that ends the shell instead of being executed.
const DefaultQuitLine = "q"

// View is everything the render sink needs to draw one frame.
type View struct {
	Prompt       string
	Buffer       string
	CursorColumn int // display column of the cursor, counted from the start of Prompt
	// Completions holds the candidates of the last completion request.
	Completions []string
	// Completing is true when a completion request is pending display,
	// even if it found nothing.
	Completing bool
}

// SubmitResult is the outcome of LineEditor.Submit.
type SubmitResult struct {
	Line string // the submitted line, empty when nothing should run
	Quit bool   // the quit line was submitted
}

// LineEditor holds the line being composed, the cursor, and the history
// the user can browse and complete from.
//
// Lines reached through history are copies: editing them never changes the
// stored entry, and moving to another entry discards those edits.
//
// A LineEditor is not safe for concurrent use.
type LineEditor struct {
	prompt   string
	quitLine string

	buffer []rune
	cursor int

	history      *History
	historyIndex int // == history.Len() while editing a fresh line
	index        *PrefixIndex

	completions []string
	completing  bool
}

// NewLineEditor creates an editor with an empty buffer and history.
// An empty quitLine disables the quit line.
func NewLineEditor(prompt, quitLine string) *LineEditor {
	return &LineEditor{
		prompt:   prompt,
		quitLine: quitLine,
		buffer:   []rune{},
		history:  NewHistory(),
		index:    NewPrefixIndex(),
	}
}

// Text returns the current buffer.
func (e *LineEditor) Text() string {
	return string(e.buffer)
}

// Cursor returns the cursor position in runes.
func (e *LineEditor) Cursor() int {
	return e.cursor
}

// History returns a copy of the submitted lines, oldest first.
func (e *LineEditor) History() []string {
	return e.history.Entries()
}

// Completions returns the candidates of the last completion request.
func (e *LineEditor) Completions() []string {
	return append([]string(nil), e.completions...)
}

// SetPrompt changes the prompt text.
func (e *LineEditor) SetPrompt(prompt string) {
	e.prompt = prompt
}

// MoveLeft moves the cursor one rune left.
func (e *LineEditor) MoveLeft() {
	if e.cursor > 0 {
		e.cursor--
	}
}

// MoveRight moves the cursor one rune right.
func (e *LineEditor) MoveRight() {
	if e.cursor < len(e.buffer) {
		e.cursor++
	}
}

// MoveHome moves the cursor to the start of the line.
func (e *LineEditor) MoveHome() {
	e.cursor = 0
}

// MoveEnd moves the cursor to the end of the line.
func (e *LineEditor) MoveEnd() {
	e.cursor = len(e.buffer)
}

// InsertRune inserts r at the cursor and moves the cursor past it.
func (e *LineEditor) InsertRune(r rune) {
	e.buffer = append(e.buffer[:e.cursor], append([]rune{r}, e.buffer[e.cursor:]...)...)
	e.cursor++
	e.clearCompletions()
}

// DeleteBackward removes the rune before the cursor (Backspace).
func (e *LineEditor) DeleteBackward() {
	if e.cursor == 0 {
		return
	}
	e.cursor--
	e.buffer = append(e.buffer[:e.cursor], e.buffer[e.cursor+1:]...)
	e.clearCompletions()
}

// DeleteForward removes the rune under the cursor (Delete).
func (e *LineEditor) DeleteForward() {
	if e.cursor >= len(e.buffer) {
		return
	}
	e.buffer = append(e.buffer[:e.cursor], e.buffer[e.cursor+1:]...)
	e.clearCompletions()
}

// DeleteLine clears the whole buffer (Ctrl+U).
func (e *LineEditor) DeleteLine() {
	e.buffer = []rune{}
	e.cursor = 0
	e.clearCompletions()
}

// DeleteToEnd removes everything from the cursor to the end of the line (Ctrl+K).
func (e *LineEditor) DeleteToEnd() {
	e.buffer = e.buffer[:e.cursor]
	e.clearCompletions()
}

// DeleteWordBackward removes the word before the cursor (Ctrl+W).
func (e *LineEditor) DeleteWordBackward() {
	if e.cursor == 0 {
		return
	}
	start := e.previousWordStart()
	e.buffer = append(e.buffer[:start], e.buffer[e.cursor:]...)
	e.cursor = start
	e.clearCompletions()
}

// HistoryPrev loads the previous history entry into the buffer.
// It does nothing at the oldest entry.
func (e *LineEditor) HistoryPrev() {
	if e.historyIndex == 0 {
		return
	}
	e.historyIndex--
	e.loadHistoryEntry()
}

// HistoryNext loads the next history entry into the buffer. It does
// nothing at the newest entry or when no entry is being browsed.
func (e *LineEditor) HistoryNext() {
	if e.historyIndex >= e.history.Len()-1 {
		return
	}
	e.historyIndex++
	e.loadHistoryEntry()
}

// RequestCompletion fills the completion list. An empty buffer lists the
// whole history; otherwise the list holds every history line that starts
// with the buffer, or nothing.
func (e *LineEditor) RequestCompletion() {
	e.completing = true
	if len(e.buffer) == 0 {
		e.completions = e.history.Entries()
		return
	}
	matches, ok := e.index.Complete(string(e.buffer))
	if !ok {
		e.completions = []string{}
		return
	}
	e.completions = matches
}

// Submit finishes the current line. The quit line is reported without
// being recorded. Any other line is added to history and the completion
// index, and the editor is reset to a fresh empty line.
func (e *LineEditor) Submit() SubmitResult {
	line := string(e.buffer)
	if e.quitLine != "" && line == e.quitLine {
		return SubmitResult{Quit: true}
	}

	if e.history.Add(line) {
		e.index.Insert([]rune(line))
	}
	e.historyIndex = e.history.Len()
	e.buffer = []rune{}
	e.cursor = 0
	e.clearCompletions()

	return SubmitResult{Line: line}
}

// Render returns the current frame. It has no side effects.
func (e *LineEditor) Render() View {
	return View{
		Prompt:       e.prompt,
		Buffer:       string(e.buffer),
		CursorColumn: runewidth.StringWidth(e.prompt) + runewidth.StringWidth(string(e.buffer[:e.cursor])),
		Completions:  append([]string(nil), e.completions...),
		Completing:   e.completing,
	}
}

func (e *LineEditor) loadHistoryEntry() {
	e.buffer = []rune(e.history.At(e.historyIndex))
	e.cursor = len(e.buffer)
	e.clearCompletions()
}

func (e *LineEditor) clearCompletions() {
	e.completions = nil
	e.completing = false
}

// previousWordStart finds where the word before the cursor begins.
// Trailing separators are skipped first, then the word itself.
func (e *LineEditor) previousWordStart() int {
	pos := e.cursor
	for pos > 0 && !isWordChar(e.buffer[pos-1]) {
		pos-- // Skip non-word characters
	}
	for pos > 0 && isWordChar(e.buffer[pos-1]) {
		pos-- // Skip word characters
	}
	return pos
}

// isWordChar reports whether r belongs to a word for Ctrl+W.
// Letters, digits and underscore are word characters.
func isWordChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}
