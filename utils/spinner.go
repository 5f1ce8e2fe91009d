package utils

import (
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"
)

var (
	spinnerMu     sync.Mutex
	activeSpinner *spinner.Spinner
)

// StartSpinner shows a spinner on w until StopSpinner is called. Starting twice is a no-op.
func StartSpinner(w io.Writer) {
	spinnerMu.Lock()
	defer spinnerMu.Unlock()

	if activeSpinner != nil {
		return
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " Fetching logtime from the intra..."
	s.Start()
	activeSpinner = s
}

// StopSpinner clears the spinner if one is running
func StopSpinner() {
	spinnerMu.Lock()
	defer spinnerMu.Unlock()

	if activeSpinner == nil {
		return
	}

	activeSpinner.Stop()
	activeSpinner = nil
}
