package execshell

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
)

// Common errors
var (
	// ErrInterrupted is returned when the user presses Ctrl+C
	ErrInterrupted = errors.New("interrupted")
	// ErrMissingProgram is returned by New when no program name is given
	ErrMissingProgram = errors.New("program name is required")
)

// Config holds the configuration for a shell.
type Config struct {
	Program     string       // Program run for every submitted line
	Prompt      string       // Prompt text (default "(<program>)> ")
	QuitLine    string       // Line that ends the shell (default "q", empty disables)
	ColorScheme *ColorScheme // Color scheme (nil for default)
	KeyMap      *KeyMap      // Key bindings (nil for default)
	Executor    Executor     // How the program is run (nil runs a child process)
	Output      io.Writer    // Where to draw (nil for the terminal's output)
}

// Option represents a configuration option for a shell
type Option func(*Config)

// WithPrompt sets the prompt text
func WithPrompt(prompt string) Option {
	return func(c *Config) {
		c.Prompt = prompt
	}
}

// WithQuitLine sets the line that ends the shell. An empty line disables it,
// leaving Ctrl+C and end of input as the only ways out.
func WithQuitLine(line string) Option {
	return func(c *Config) {
		c.QuitLine = line
	}
}

// WithColorScheme sets the color scheme
func WithColorScheme(colorScheme *ColorScheme) Option {
	return func(c *Config) {
		c.ColorScheme = colorScheme
	}
}

// WithKeyMap sets the key bindings
func WithKeyMap(keyMap *KeyMap) Option {
	return func(c *Config) {
		c.KeyMap = keyMap
	}
}

// WithExecutor replaces how submitted lines are run
func WithExecutor(executor Executor) Option {
	return func(c *Config) {
		c.Executor = executor
	}
}

// WithOutput sets where frames and command output are written
func WithOutput(w io.Writer) Option {
	return func(c *Config) {
		c.Output = w
	}
}

// Shell is the interactive loop: it reads keys, edits the line, and hands
// every submitted line to the configured program.
type Shell struct {
	config   Config
	editor   *LineEditor
	keys     *keyReader
	renderer *renderer
	terminal terminalInterface
}

// New creates a shell that runs program for each submitted line.
//
// Example:
//
//	sh, err := execshell.New("echo")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer sh.Close()
//
//	if err := sh.Run(); err != nil {
//		log.Fatal(err)
//	}
func New(program string, options ...Option) (*Shell, error) {
	config := Config{
		Program:  program,
		QuitLine: DefaultQuitLine,
	}
	for _, option := range options {
		option(&config)
	}
	if config.Program == "" {
		return nil, ErrMissingProgram
	}

	terminal, err := newRealTerminal()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal: %w", err)
	}
	return newFromConfig(config, terminal), nil
}

func newFromConfig(config Config, terminal terminalInterface) *Shell {
	if config.Prompt == "" {
		config.Prompt = fmt.Sprintf("(%s)> ", config.Program)
	}
	if config.ColorScheme == nil {
		config.ColorScheme = ThemeDefault
	}
	if config.KeyMap == nil {
		config.KeyMap = NewDefaultKeyMap()
	}
	if config.Executor == nil {
		config.Executor = CommandExecutor{}
	}
	if config.Output == nil {
		config.Output = terminal.Output()
	}

	return &Shell{
		config:   config,
		editor:   NewLineEditor(config.Prompt, config.QuitLine),
		keys:     newKeyReader(terminal, config.KeyMap),
		renderer: newRenderer(config.Output, config.ColorScheme),
		terminal: terminal,
	}
}

// History returns the lines submitted so far, oldest first.
func (s *Shell) History() []string {
	return s.editor.History()
}

// Run starts the loop. It is RunWithContext with a background context.
func (s *Shell) Run() error {
	return s.RunWithContext(context.Background())
}

// RunWithContext reads and runs lines until the quit line is submitted,
// which returns nil. It also stops with ErrInterrupted on Ctrl+C, io.EOF
// at the end of input, or the context's error once ctx is done. The
// context is checked between keys and is passed to the executor.
//
// The terminal is in raw mode only while RunWithContext runs and is
// restored on every return path.
func (s *Shell) RunWithContext(ctx context.Context) error {
	if err := s.terminal.SetRaw(); err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() {
		if err := s.terminal.Restore(); err != nil {
			warnf("failed to exit raw mode: %v", err)
		}
	}()

	if err := s.renderer.render(s.editor.Render()); err != nil {
		return fmt.Errorf("failed to render prompt: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		key, err := s.keys.ReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return io.EOF
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		quit, err := s.dispatch(ctx, key)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}

		if err := s.renderer.render(s.editor.Render()); err != nil {
			return fmt.Errorf("failed to render: %w", err)
		}
	}
}

// dispatch performs the action bound to key and reports whether the
// loop should end.
func (s *Shell) dispatch(ctx context.Context, key KeyEvent) (bool, error) {
	switch key.Action {
	case ActionSubmit:
		return s.submit(ctx)

	case ActionCancel:
		if _, err := io.WriteString(s.config.Output, "^C\r\n"); err != nil {
			return false, err
		}
		return false, ErrInterrupted

	case ActionMoveLeft:
		s.editor.MoveLeft()
	case ActionMoveRight:
		s.editor.MoveRight()
	case ActionMoveHome:
		s.editor.MoveHome()
	case ActionMoveEnd:
		s.editor.MoveEnd()
	case ActionHistoryUp:
		s.editor.HistoryPrev()
	case ActionHistoryDown:
		s.editor.HistoryNext()
	case ActionBackspace:
		s.editor.DeleteBackward()
	case ActionDeleteChar:
		s.editor.DeleteForward()
	case ActionDeleteLine:
		s.editor.DeleteLine()
	case ActionDeleteToEnd:
		s.editor.DeleteToEnd()
	case ActionDeleteWordBack:
		s.editor.DeleteWordBackward()
	case ActionComplete:
		s.editor.RequestCompletion()

	default:
		if key.Printable() {
			s.editor.InsertRune(key.Rune)
			return false, nil
		}
		if err := s.renderer.writeNotice("unhandled key: " + key.String()); err != nil {
			return false, fmt.Errorf("failed to render: %w", err)
		}
	}
	return false, nil
}

// submit ends the current line and runs it.
func (s *Shell) submit(ctx context.Context) (bool, error) {
	result := s.editor.Submit()
	if err := s.renderer.newline(); err != nil {
		return false, fmt.Errorf("failed to render: %w", err)
	}
	if result.Quit {
		return true, nil
	}
	if result.Line == "" {
		return false, nil
	}

	output, err := s.config.Executor.Execute(ctx, s.config.Program, result.Line)
	if err != nil {
		if werr := s.renderer.writeError("error: " + err.Error()); werr != nil {
			return false, fmt.Errorf("failed to render: %w", werr)
		}
		return false, nil
	}
	if err := s.renderer.writeOutput(output); err != nil {
		return false, fmt.Errorf("failed to write output: %w", err)
	}
	return false, nil
}

// Close restores the terminal and releases it.
//
// Close should be called even if Run returns an error, and it is safe to
// call more than once.
func (s *Shell) Close() error {
	var result *multierror.Error
	if err := s.terminal.Restore(); err != nil {
		result = multierror.Append(result, fmt.Errorf("failed to restore terminal: %w", err))
	}
	if err := s.terminal.Close(); err != nil {
		result = multierror.Append(result, fmt.Errorf("failed to close terminal: %w", err))
	}
	return result.ErrorOrNil()
}
