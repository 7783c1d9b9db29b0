// Package config implements application-level configuration.
//
// It loads configuration sources (CLI flags, an optional project
// configuration file, environment variables) and provides functions which
// compute relevant configuration values from these sources. The yarn command
// name is resolved once here, at the boundary, rather than recomputed by
// every operation.
package config

import (
	"os"
	"regexp"
	"sync"

	"github.com/apex/log"
	"github.com/urfave/cli"

	"github.com/noderes/noderes/buildtools/yarn"
	"github.com/noderes/noderes/exec"
)

var (
	ctx     *cli.Context
	file    File
	options Options

	yarnCmdOnce sync.Once
	yarnCmd     string
)

// SetContext initializes configuration from the CLI context and an optional
// configuration file.
func SetContext(c *cli.Context) error {
	ctx = c

	f, fname, err := ReadFile(c.String("config"))
	if err != nil {
		return err
	}
	if fname != "" {
		log.WithField("filename", fname).Debug("loaded configuration file")
	}
	file = f

	options, err = file.YarnOptions()
	return err
}

// Dir is the project directory operations run in.
func Dir() string {
	if dir := ctx.String("dir"); dir != "" {
		return dir
	}
	return "."
}

// Debug reports whether debug logging was requested.
func Debug() bool {
	return ctx.Bool("debug")
}

// Interactive reports whether ANSI output (spinners, colors) is allowed.
func Interactive() bool {
	return !ctx.Bool("no-ansi")
}

// YarnCmd resolves the yarn executable name. Resolution order: the
// NODERES_YARN_CMD environment variable, the configuration file, then probing
// the usual candidates. The result is computed once per invocation.
func YarnCmd() string {
	yarnCmdOnce.Do(func() {
		yarnCmd = resolveYarnCmd(os.Getenv("NODERES_YARN_CMD"), options.Cmd, probeYarnCmd)
	})
	return yarnCmd
}

// resolveYarnCmd applies the resolution order. probe runs only when neither
// the environment nor the configuration file names a command.
func resolveYarnCmd(envCmd string, fileCmd string, probe func() (string, error)) string {
	if envCmd != "" {
		return envCmd
	}
	if fileCmd != "" {
		return fileCmd
	}
	cmd, err := probe()
	if err != nil {
		log.Warnf("could not find yarn: %s", err.Error())
		return "yarn"
	}
	return cmd
}

func probeYarnCmd() (string, error) {
	cmd, _, err := exec.Which("--version", "yarn", "yarn.cmd", "yarnpkg")
	return cmd, err
}

// FrozenLockfile reports whether installs must enforce the lockfile.
func FrozenLockfile() bool {
	if ctx.Bool("no-frozen-lockfile") {
		return false
	}
	return !options.NoFrozenLockfile
}

// Depth is the maximum tree depth requested from yarn list; negative means
// unlimited.
func Depth() int {
	if ctx.IsSet("depth") {
		return ctx.Int("depth")
	}
	return options.Depth
}

// IgnorableErrors compiles the configured allow-list of stderr patterns that
// do not defeat partial-failure recovery. Invalid patterns are skipped with a
// warning.
func IgnorableErrors() []*regexp.Regexp {
	var patterns []*regexp.Regexp
	for _, raw := range options.IgnorableErrors {
		pattern, err := regexp.Compile(raw)
		if err != nil {
			log.WithField("pattern", raw).Warnf("ignoring invalid stderr pattern: %s", err.Error())
			continue
		}
		patterns = append(patterns, pattern)
	}
	return patterns
}

// YarnTool assembles the configured yarn tool.
func YarnTool() yarn.YarnTool {
	return yarn.YarnTool{
		Cmd:            YarnCmd(),
		FrozenLockfile: FrozenLockfile(),
		Production:     true,
		IgnorableErr:   IgnorableErrors(),
	}
}
