// Package ui provides colored console output, prompts and the debug log
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jinyuli/uvm/src/internal/constants"
)

var (
	successColor  = color.New(color.FgGreen, color.Bold)
	errorColor    = color.New(color.FgRed, color.Bold)
	warningColor  = color.New(color.FgYellow, color.Bold)
	infoColor     = color.New(color.FgCyan)
	progressColor = color.New(color.FgBlue)
	debugColor    = color.New(color.FgHiBlack)

	successSymbol = "✓"
	errorSymbol   = "✗"
	warningSymbol = "⚠"
	infoSymbol    = "→"
	debugSymbol   = "·"
)

// out receives every user-facing message. Errors go to errOut.
var (
	out    io.Writer = color.Output
	errOut io.Writer = color.Error
	in     io.Reader = os.Stdin
)

// SetOutput redirects user-facing output, returning a function that restores
// the previous writers. Used by command tests.
func SetOutput(stdout, stderr io.Writer) func() {
	prevOut, prevErr := out, errOut
	out, errOut = stdout, stderr
	return func() {
		out, errOut = prevOut, prevErr
	}
}

// SetInput replaces the reader used by Confirm
func SetInput(r io.Reader) func() {
	prev := in
	in = r
	return func() {
		in = prev
	}
}

// Success prints a success message in green with a checkmark
func Success(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	_, _ = successColor.Fprintf(out, "%s %s\n", successSymbol, message)
	logMessage("success", message)
}

// Error prints an error message in red with an X
func Error(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	_, _ = errorColor.Fprintf(errOut, "%s %s\n", errorSymbol, message)
	logMessage("error", message)
}

// Warning prints a warning message in yellow
func Warning(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	_, _ = warningColor.Fprintf(out, "%s %s\n", warningSymbol, message)
	logMessage("warning", message)
}

// Info prints an info message in cyan with an arrow
func Info(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	_, _ = infoColor.Fprintf(out, "%s %s\n", infoSymbol, message)
}

// Progress prints an indented step of a longer operation
func Progress(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	_, _ = progressColor.Fprintf(out, "  %s %s\n", infoSymbol, message)
	logMessage("progress", message)
}

// Println prints a plain line
func Println(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(out, format+"\n", args...)
}

// Printf prints plain text without a newline
func Printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(out, format, args...)
}

// Header prints a bold header message
func Header(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	_, _ = color.New(color.Bold).Fprintln(out, message)
}

// Highlight returns text in the emphasis color
func Highlight(text string) string {
	return color.New(color.FgCyan, color.Bold).Sprint(text)
}

// HighlightVersion returns a version string in the version color
func HighlightVersion(version string) string {
	return color.New(color.FgMagenta, color.Bold).Sprint(version)
}

// Confirm asks a yes/no question. An empty answer takes defaultYes.
func Confirm(question string, defaultYes bool) bool {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	_, _ = fmt.Fprintf(out, "%s %s: ", question, hint)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return defaultYes
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return defaultYes
	case constants.ResponseY, constants.ResponseYes:
		return true
	default:
		return false
	}
}
