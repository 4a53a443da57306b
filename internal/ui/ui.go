// Package ui provides terminal output for the CLI: plain formatted
// writing for commands, lipgloss styles, and the interactive playground.
package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// fdWriter is the subset of *os.File needed for terminal detection.
type fdWriter interface {
	Fd() uintptr
}

// IsTTY reports whether w is attached to a terminal. Buffers, pipes,
// and nil writers are not.
func IsTTY(w io.Writer) bool {
	if f, ok := w.(fdWriter); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// DetectNoColor reports whether the NO_COLOR convention applies: the
// variable being present disables color, whatever its value.
func DetectNoColor() bool {
	_, present := os.LookupEnv("NO_COLOR")
	return present
}

// ciEnvVars are set by the CI systems this tool is expected to run under.
var ciEnvVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "TRAVIS"}

// DetectCI reports whether the process appears to be running under CI.
// Empty values do not count: some shells export CI= without meaning it.
func DetectCI() bool {
	for _, v := range ciEnvVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}
