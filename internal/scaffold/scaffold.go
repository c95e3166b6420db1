// Package scaffold implements the functionality of the program, the CLI in package cmd is simply the
// entrypoint to exported functions and methods in this package.
package scaffold

import (
	"errors"
	"io"
	"os"

	"go.followtheprocess.codes/log"
	"go.followtheprocess.codes/scaffold/internal/codegen"
)

// errNotInteractive is returned when a value would have to be prompted for but stdin
// is not a terminal.
var errNotInteractive = errors.New("stdin is not a terminal")

// Scaffold represents the scaffold program.
type Scaffold struct {
	stdin     io.Reader          // Prompts read from here
	stdout    io.Writer          // Normal program output is written here
	stderr    io.Writer          // Logs and errors are written here
	logger    *log.Logger        // The logger for the application
	generator *codegen.Generator // Code generation engine
	version   string             // The app version
}

// New returns a new [Scaffold].
func New(debug bool, version string, stdin io.Reader, stdout, stderr io.Writer) Scaffold {
	level := log.LevelInfo
	if debug {
		level = log.LevelDebug
	}

	logger := log.New(stderr, log.Prefix("scaffold"), log.WithLevel(level))

	return Scaffold{
		stdin:     stdin,
		stdout:    stdout,
		stderr:    stderr,
		logger:    logger,
		generator: codegen.New(),
		version:   version,
	}
}

// interactive reports whether stdin is attached to a terminal, so prompts can be shown.
func (s Scaffold) interactive() bool {
	f, ok := s.stdin.(*os.File)
	if !ok {
		return false
	}

	info, err := f.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}
