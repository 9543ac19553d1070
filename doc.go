// Package execshell wraps a program in an interactive line editor.
//
// Each submitted line is passed to the program as its only argument and the
// program's standard output is printed below the prompt. The line editor
// supports cursor movement, history browsing and Tab completion of lines
// that were submitted before.
//
// Quick Start:
//
//	package main
//
//	import (
//		"log"
//		"github.com/nao1215/execshell"
//	)
//
//	func main() {
//		sh, err := execshell.New("echo")
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer sh.Close()
//
//		if err := sh.Run(); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// Key Bindings:
//
//   - Enter: Run the line; the quit line ("q" by default) leaves instead
//   - Ctrl+C: Leave and return ErrInterrupted
//   - Left/Right: Move the cursor
//   - Up/Down: Browse history
//   - Tab: List history lines starting with the current line (all of
//     history when the line is empty)
//   - Backspace / Delete: Delete backwards / forwards
//   - Ctrl+A / Home, Ctrl+E / End: Move to beginning / end of line
//   - Ctrl+U: Delete entire line
//   - Ctrl+K: Delete from cursor to end of line
//   - Ctrl+W: Delete word backwards
//
// Any other key is reported as unhandled and ignored.
//
// History:
//
// History lives in memory only. A line equal to the one submitted just
// before it is not recorded twice. Lines reached with Up/Down are copies;
// editing them does not change history, and moving to another entry
// drops the edits.
//
// Completion:
//
// Completion candidates come from a PrefixIndex, a character trie that holds
// exactly the lines in history. PrefixIndex is usable on its own:
//
//	idx := execshell.NewPrefixIndex()
//	idx.Insert([]rune("git status"))
//	idx.Insert([]rune("git commit"))
//	matches, ok := idx.Complete("git s") // ["git status"], true
//
// Thread Safety:
//
// Shell, LineEditor and PrefixIndex are not safe for concurrent use.
// A Shell runs on a single goroutine and blocks while the program runs.
//
// Resource Management:
//
// Always call Close when done with a shell. The terminal is restored on
// every return from Run, and Close restores it again if needed.
package execshell
