// Package ui renders human-readable CLI output. ghprovision has no
// machine-readable output mode; everything here targets a person at a
// terminal.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Output handles formatted output to the user.
type Output struct {
	writer       io.Writer
	colorEnabled bool
	quiet        bool
}

// NewOutput creates a new Output writing to w with colors enabled.
func NewOutput(w io.Writer) *Output {
	return &Output{
		writer:       w,
		colorEnabled: true,
	}
}

// SetColorEnabled enables or disables colored output.
func (o *Output) SetColorEnabled(enabled bool) {
	o.colorEnabled = enabled
}

// SetQuiet suppresses informational messages. Errors are always printed.
func (o *Output) SetQuiet(quiet bool) {
	o.quiet = quiet
}

// Success prints a success message.
func (o *Output) Success(message string) {
	if o.quiet {
		return
	}
	if o.colorEnabled {
		fmt.Fprintf(o.writer, "%s %s\n", color.GreenString("✓"), message)
	} else {
		fmt.Fprintf(o.writer, "✓ %s\n", message)
	}
}

// Failure prints a failure message. Never suppressed by quiet mode.
func (o *Output) Failure(message string) {
	if o.colorEnabled {
		fmt.Fprintf(o.writer, "%s %s\n", color.RedString("✗"), message)
	} else {
		fmt.Fprintf(o.writer, "✗ %s\n", message)
	}
}

// Warning prints a warning message.
func (o *Output) Warning(message string) {
	if o.quiet {
		return
	}
	if o.colorEnabled {
		fmt.Fprintf(o.writer, "%s %s\n", color.YellowString("⚠"), message)
	} else {
		fmt.Fprintf(o.writer, "⚠ %s\n", message)
	}
}

// Info prints a plain message.
func (o *Output) Info(message string) {
	if o.quiet {
		return
	}
	fmt.Fprintf(o.writer, "%s\n", message)
}

// Header prints a bold section title.
func (o *Output) Header(title string) {
	if o.quiet {
		return
	}
	if o.colorEnabled {
		fmt.Fprintf(o.writer, "\n%s\n", color.New(color.Bold).Sprint(title))
	} else {
		fmt.Fprintf(o.writer, "\n%s\n", title)
	}
}

// Separator prints a horizontal rule.
func (o *Output) Separator() {
	if o.quiet {
		return
	}
	fmt.Fprintln(o.writer, "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
}

// Blank prints an empty line.
func (o *Output) Blank() {
	if o.quiet {
		return
	}
	fmt.Fprintln(o.writer)
}

// Infof prints a formatted plain message.
func (o *Output) Infof(format string, args ...interface{}) {
	o.Info(fmt.Sprintf(format, args...))
}

// Successf prints a formatted success message.
func (o *Output) Successf(format string, args ...interface{}) {
	o.Success(fmt.Sprintf(format, args...))
}

// Failuref prints a formatted failure message.
func (o *Output) Failuref(format string, args ...interface{}) {
	o.Failure(fmt.Sprintf(format, args...))
}

// Warningf prints a formatted warning message.
func (o *Output) Warningf(format string, args ...interface{}) {
	o.Warning(fmt.Sprintf(format, args...))
}
