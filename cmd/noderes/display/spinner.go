package display

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

var (
	useSpinner bool
	s          = spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
)

// ShowSpinner shows a progress spinner with a message.
func ShowSpinner(message string) {
	if useSpinner {
		s.Suffix = " " + message
		s.Restart()
	}
}

// PauseSpinner pauses the spinner and returns a function for unpausing.
func PauseSpinner() func() {
	if !useSpinner || !s.Active() {
		return func() {}
	}
	s.Stop()
	return s.Restart
}

// StopSpinner stops a progress spinner.
func StopSpinner() {
	s.Stop()
}
