package execshell

import (
	"fmt"
	"io"
	"strings"
)

// maxCompletions limits how many candidates are drawn below the prompt.
const maxCompletions = 10

// renderer draws editor frames and command output on a raw-mode terminal.
//
// In raw mode the terminal does no output processing, so every line break
// written here is "\r\n". A frame is the prompt line plus the completion
// lines below it; the cursor is always left on the prompt line at the
// column the View asks for.
type renderer struct {
	output      io.Writer    // Target output writer (typically stdout or colorable wrapper)
	colorScheme *ColorScheme // Color configuration for themed rendering
}

// newRenderer creates a new renderer with the given output and color scheme.
func newRenderer(output io.Writer, colorScheme *ColorScheme) *renderer {
	if colorScheme == nil {
		colorScheme = ThemeDefault
	}
	return &renderer{
		output:      output,
		colorScheme: colorScheme,
	}
}

// render draws v, replacing the previous frame.
func (r *renderer) render(v View) error {
	var b strings.Builder

	// Back to column 0, then clear this line and everything below it,
	// which drops completion lines of the previous frame.
	b.WriteString("\r\x1b[J")

	b.WriteString(r.colorScheme.Paint(r.colorScheme.Prefix))
	b.WriteString(v.Prompt)
	b.WriteString(r.colorScheme.Reset())
	b.WriteString(r.colorScheme.Paint(r.colorScheme.Input))
	b.WriteString(v.Buffer)
	b.WriteString(r.colorScheme.Reset())

	lines := r.completionLines(v)
	for _, line := range lines {
		b.WriteString("\r\n")
		b.WriteString(line)
	}
	if len(lines) > 0 {
		fmt.Fprintf(&b, "\x1b[%dA", len(lines))
	}

	b.WriteString("\r")
	if v.CursorColumn > 0 {
		fmt.Fprintf(&b, "\x1b[%dC", v.CursorColumn)
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

// completionLines formats the candidates of v, one per line.
func (r *renderer) completionLines(v View) []string {
	if !v.Completing {
		return nil
	}
	if len(v.Completions) == 0 {
		return []string{r.colorScheme.Paint(r.colorScheme.Notice) + "no completions" + r.colorScheme.Reset()}
	}

	shown := v.Completions
	if len(shown) > maxCompletions {
		shown = shown[:maxCompletions]
	}
	lines := make([]string, 0, len(shown)+1)
	for _, c := range shown {
		lines = append(lines, r.colorScheme.Paint(r.colorScheme.Completion)+"  "+c+r.colorScheme.Reset())
	}
	if rest := len(v.Completions) - len(shown); rest > 0 {
		lines = append(lines, r.colorScheme.Paint(r.colorScheme.Notice)+fmt.Sprintf("  ... %d more", rest)+r.colorScheme.Reset())
	}
	return lines
}

// newline ends the prompt line so the command output starts below it.
func (r *renderer) newline() error {
	_, err := io.WriteString(r.output, "\r\n\x1b[J")
	return err
}

// writeOutput prints text produced by the executed program.
func (r *renderer) writeOutput(text string) error {
	if text == "" {
		return nil
	}
	text = toRawLineEndings(text)
	if !strings.HasSuffix(text, "\r\n") {
		text += "\r\n"
	}
	_, err := io.WriteString(r.output, text)
	return err
}

// writeError prints msg as a single highlighted line.
func (r *renderer) writeError(msg string) error {
	_, err := fmt.Fprintf(r.output, "%s%s%s\r\n", r.colorScheme.Paint(r.colorScheme.Error), toRawLineEndings(msg), r.colorScheme.Reset())
	return err
}

// writeNotice prints msg as a dim line, used for unhandled keys.
func (r *renderer) writeNotice(msg string) error {
	_, err := fmt.Fprintf(r.output, "\r\x1b[J%s%s%s\r\n", r.colorScheme.Paint(r.colorScheme.Notice), msg, r.colorScheme.Reset())
	return err
}

// toRawLineEndings rewrites bare "\n" as "\r\n".
func toRawLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "\r\n")
}
