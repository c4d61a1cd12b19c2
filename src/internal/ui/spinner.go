package ui

import (
	"time"

	"github.com/briandowns/spinner"
)

// newSpinner draws on stderr; it stays silent when stderr is not a terminal
func newSpinner(message string) *spinner.Spinner {
	return spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithSuffix(" "+message),
		spinner.WithWriter(errOut),
	)
}

// WithSpinner runs fn behind a spinner and reports the outcome on one line
func WithSpinner(message string, fn func() error) error {
	s := newSpinner(message)
	s.Start()
	err := fn()
	s.Stop()

	if err != nil {
		Error("%s failed", message)
		return err
	}
	Success("%s", message)
	return nil
}
