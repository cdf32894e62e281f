// Package logging builds the hclog logger shared by huecheck commands.
package logging

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// Name is the root logger name.
const Name = "huecheck"

// New returns a logger writing to out. Verbose enables debug output, quiet
// silences everything; otherwise only warnings and errors are shown.
func New(out io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Warn
	switch {
	case quiet:
		level = hclog.Off
	case verbose:
		level = hclog.Debug
	}
	if out == nil || level == hclog.Off {
		out = io.Discard
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   Name,
		Output: out,
		Level:  level,
	})
}
