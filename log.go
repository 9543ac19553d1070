package execshell

import (
	"io"
	"log"
	"os"
)

// logger reports problems that must not interrupt the prompt, such as a
// terminal that fails to restore. It writes to stderr.
var logger = log.New(os.Stderr, "", 0)

// SetLogOutput redirects warnings, mainly for tests.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

func warnf(format string, v ...any) {
	logger.Printf("Warning: "+format, v...)
}
