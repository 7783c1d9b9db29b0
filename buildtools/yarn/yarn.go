// Package yarn converts yarn dependency trees into normalized dependency
// maps and wraps the yarn operations used when repackaging a project.
package yarn

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/apex/log"
	"golang.org/x/sync/errgroup"

	"github.com/noderes/noderes/errors"
	"github.com/noderes/noderes/exec"
)

// YarnTool invokes a yarn executable. The command name is resolved once, at
// construction, rather than per operation.
type YarnTool struct {
	Cmd            string
	FrozenLockfile bool
	Production     bool

	// IgnorableErr is the allow-list of stderr line patterns that do not
	// defeat partial-failure recovery during List. Empty by default.
	IgnorableErr []*regexp.Regexp

	// Runner overrides subprocess execution; nil means exec.Run.
	Runner exec.Runner
}

// ListResult is the JSON shape handed to the packaging step: the converted
// dependency map, or the raw captured stdout on the partial-failure path.
type ListResult struct {
	Dependencies DepMap `json:"dependencies,omitempty"`
	Stdout       string `json:"stdout,omitempty"`
}

type listOutput struct {
	Type string `json:"type"`
	Data struct {
		Type  string     `json:"type"`
		Trees []TreeNode `json:"trees"`
	} `json:"data"`
}

// List runs `yarn list --json` and converts the tree into a dependency map.
//
// Yarn sometimes exits non-zero while still emitting a complete tree (e.g.
// unrelated post-install warnings). When that happens with non-empty stdout
// and only ignorable stderr lines, List returns the captured stdout as a
// best-effort result instead of the error.
func (y YarnTool) List(dir string, depth int) (ListResult, error) {
	argv := []string{"list", "--json"}
	if y.Production {
		argv = append(argv, "--production")
	}
	if depth >= 0 {
		argv = append(argv, "--depth", strconv.Itoa(depth))
	}

	stdout, stderr, err := y.run(exec.Cmd{Name: y.Cmd, Argv: argv, Dir: dir})
	if err != nil {
		if stdout != "" && y.ignorable(stderr) {
			log.WithField("dir", dir).Warnf("yarn list exited non-zero, using captured output")
			return ListResult{Stdout: stdout}, nil
		}
		return ListResult{}, err
	}

	var output listOutput
	if err := json.Unmarshal([]byte(stdout), &output); err != nil {
		return ListResult{}, errors.Wrap(err, "could not parse yarn list output")
	}

	roots := RootDependencies(output.Data.Trees)
	deps, err := ConvertTree(output.Data.Trees, roots)
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{Dependencies: deps}, nil
}

// Install runs a non-interactive install, enforcing the lockfile unless
// FrozenLockfile is disabled.
func (y YarnTool) Install(dir string) error {
	argv := []string{"install", "--non-interactive"}
	if y.FrozenLockfile {
		argv = append(argv, "--frozen-lockfile")
	}
	_, _, err := y.run(exec.Cmd{Name: y.Cmd, Argv: argv, Dir: dir})
	return err
}

// Prune removes extraneous packages. Yarn has no separate prune command; a
// plain install against the current manifest drops anything not listed.
func (y YarnTool) Prune(dir string) error {
	_, _, err := y.run(exec.Cmd{Name: y.Cmd, Argv: []string{"install"}, Dir: dir})
	return err
}

// RunScripts runs the named package scripts concurrently and waits for all of
// them. The first failure wins.
func (y YarnTool) RunScripts(dir string, scripts []string) error {
	var g errgroup.Group
	for _, script := range scripts {
		script := script
		g.Go(func() error {
			log.WithField("script", script).Debug("running package script")
			_, _, err := y.run(exec.Cmd{Name: y.Cmd, Argv: []string{"run", script}, Dir: dir})
			return err
		})
	}
	return g.Wait()
}

func (y YarnTool) run(cmd exec.Cmd) (string, string, error) {
	if y.Runner != nil {
		return y.Runner(cmd)
	}
	return exec.Run(cmd)
}

// ignorable reports whether every non-empty stderr line matches one of the
// allow-listed patterns.
func (y YarnTool) ignorable(stderr string) bool {
	for _, line := range strings.Split(stderr, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		matched := false
		for _, pattern := range y.IgnorableErr {
			if pattern.MatchString(line) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
