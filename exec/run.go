// Package exec wraps subprocess invocation and captures its output.
package exec

import (
	"bytes"
	"os"
	"os/exec"

	"github.com/apex/log"
)

// Cmd represents a single invocation of an executable.
type Cmd struct {
	Name string   // Executable name.
	Argv []string // Executable arguments.

	Dir string // The command's working directory.

	// If neither Env nor WithEnv are set, the environment is inherited from os.Environ().
	Env     map[string]string // If set, the command's environment is _set_ to Env.
	WithEnv map[string]string // If set, the command's environment is _added_ to WithEnv.
}

// Runner runs a Cmd and captures its output. It exists so that callers which
// orchestrate subprocesses can be exercised in tests without spawning
// anything.
type Runner func(cmd Cmd) (stdout, stderr string, err error)

// Run executes a Cmd. On failure the returned error is an *Error carrying the
// captured stdout and stderr.
func Run(cmd Cmd) (stdout, stderr string, err error) {
	log.Debugf("running command: %#v", append([]string{cmd.Name}, cmd.Argv...))

	xc, stderrBuffer := BuildExec(cmd)

	stdoutBuffer, err := xc.Output()
	stdout = string(stdoutBuffer)
	stderr = stderrBuffer.String()

	log.Debugf("STDOUT: %#v", stdout)
	log.Debugf("STDERR: %#v", stderr)

	if err != nil {
		return stdout, stderr, &Error{
			Name:   cmd.Name,
			Argv:   cmd.Argv,
			Stdout: stdout,
			Stderr: stderr,
			Cause:  err,
		}
	}
	return stdout, stderr, nil
}

// BuildExec constructs the underlying *exec.Cmd along with the buffer its
// stderr is captured into.
func BuildExec(cmd Cmd) (*exec.Cmd, *bytes.Buffer) {
	var stderrBuffer bytes.Buffer
	xc := exec.Command(cmd.Name, cmd.Argv...)
	xc.Stderr = &stderrBuffer

	if cmd.Dir != "" {
		xc.Dir = cmd.Dir
	}

	if cmd.Env != nil {
		xc.Env = toEnv(cmd.Env)
	} else if cmd.WithEnv != nil {
		// Added entries go last: os/exec gives the last duplicate precedence.
		xc.Env = append(xc.Env, os.Environ()...)
		xc.Env = append(xc.Env, toEnv(cmd.WithEnv)...)
	} else {
		xc.Env = os.Environ()
	}

	return xc, &stderrBuffer
}

func toEnv(env map[string]string) []string {
	var out []string
	for key, val := range env {
		out = append(out, key+"="+val)
	}
	return out
}
