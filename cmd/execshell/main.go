// Command execshell wraps a program in an interactive line editor.
//
// Every line entered at the prompt is passed to the program as its single
// argument and the program's output is printed below. Enter "q" to leave.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/nao1215/execshell"
)

func usage() {
	fmt.Fprint(os.Stderr, `Usage: execshell <program>

Runs <program> with each entered line as its only argument.

Keys:
  Left/Right       move the cursor
  Up/Down          browse history
  Tab              complete from history
  Enter            run the line ("q" quits)
  Ctrl+C           leave immediately
`)
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("execshell", flag.ContinueOnError)
	fs.Usage = usage
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		usage()
		return 2
	}

	sh, err := execshell.New(fs.Arg(0), execshell.WithColorScheme(colorScheme()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "execshell: %v\n", err)
		return 1
	}
	defer sh.Close()

	err = sh.Run()
	switch {
	case err == nil, errors.Is(err, io.EOF), errors.Is(err, execshell.ErrInterrupted):
		return 0
	default:
		fmt.Fprintf(os.Stderr, "execshell: %v\n", err)
		return 1
	}
}

// colorScheme drops colors when NO_COLOR is set or stdout is not a terminal.
func colorScheme() *execshell.ColorScheme {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return execshell.ThemeMonochrome
	}
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return execshell.ThemeMonochrome
	}
	return execshell.ThemeDefault
}
