// Package display implements functions for displaying output to users.
package display

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/apex/log"
)

var (
	file  *os.File
	level log.Level
)

func init() {
	// Set up the debug log file.
	f, err := ioutil.TempFile("", "noderes-log-")
	if err != nil {
		log.WithError(err).Warnf("could not open log file")
	}
	file = f

	// The logging package always runs at debug so the handler sees every
	// entry; `level` gates what reaches stderr.
	level = log.InfoLevel
	log.SetLevel(log.DebugLevel)
	log.SetHandler(log.HandlerFunc(Handler))
}

// SetInteractive turns the spinner on or off.
func SetInteractive(interactive bool) {
	useSpinner = interactive
}

// SetDebug turns debug logging to stderr on or off. The log file always
// receives debug-level entries.
func SetDebug(debug bool) {
	if debug {
		level = log.DebugLevel
	} else {
		level = log.InfoLevel
	}
}

// File returns the debug log file name.
func File() string {
	if file == nil {
		return ""
	}
	return file.Name()
}

// JSON is a convenience function for printing JSON to stdout.
func JSON(data interface{}) (int, error) {
	msg, err := json.Marshal(data)
	if err != nil {
		return 0, err
	}
	return fmt.Println(string(msg))
}

// Handler multiplexes log entries, writing human-readable messages to stderr
// and machine-readable entries to the log file.
func Handler(entry *log.Entry) error {
	if entry.Level >= level {
		unpause := PauseSpinner()
		fmt.Fprintf(os.Stderr, "%s %s\n", entry.Level, entry.Message)
		unpause()
	}

	if file == nil {
		return nil
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	data = append(data, byte('\n'))
	_, err = file.Write(data)
	return err
}
