package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

// New returns a stdlib-backed logger with component prefix, used for
// side-channel reporting of failures that are swallowed on purpose
// (e.g. record persistence).
func New(component string) *log.Logger {
	return NewWithWriter(component, os.Stderr)
}

// NewWithWriter allows tests to capture side-channel output.
func NewWithWriter(component string, w io.Writer) *log.Logger {
	prefix := fmt.Sprintf("[%s] ", component)
	return log.New(w, prefix, log.LstdFlags)
}
