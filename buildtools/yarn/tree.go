package yarn

import (
	"strings"

	semver "github.com/Masterminds/semver/v3"
	"github.com/apex/log"

	"github.com/noderes/noderes/errors"
)

// ErrUnknownShadow is returned when a shadow node references a package that
// is not installed at the root of the tree.
var ErrUnknownShadow = errors.New("shadow reference to package missing from root of tree")

// TreeNode is one entry of `yarn list --json` output. A node whose Shadow
// flag is set is a back-reference to a package defined elsewhere in the tree
// and carries no children of its own.
type TreeNode struct {
	Name     string      `json:"name"`
	Children []TreeNode  `json:"children,omitempty"`
	Shadow   bool        `json:"shadow,omitempty"`
	Hint     interface{} `json:"hint,omitempty"`
	Color    string      `json:"color,omitempty"`
	Depth    int         `json:"depth,omitempty"`
}

// Dependency is a resolved package within a DepMap.
type Dependency struct {
	Version      string `json:"version"`
	Dependencies DepMap `json:"dependencies,omitempty"`
	// IsRootDep marks a package that is resolved by the root-level install
	// rather than a nested copy.
	IsRootDep bool `json:"isRootDep,omitempty"`
}

// DepMap maps package names to their resolved dependency entries. Names are
// unique per level; once written, an entry is never overwritten, mirroring
// the fact that only one version of a package can be installed in a given
// node_modules scope.
type DepMap map[string]*Dependency

// RootDeps maps a package name to the version installed at the top level of
// the tree. It is built once per conversion and consulted when deciding how
// to resolve shadow references.
type RootDeps map[string]string

// SplitNameVersion splits a composite `<name>@<version>` identifier at its
// last `@`, so that scoped names like `@scope/pkg@1.0.0` resolve correctly.
// Input without an `@` yields the whole string as the name and an empty
// version.
func SplitNameVersion(composite string) (name string, version string) {
	i := strings.LastIndex(composite, "@")
	if i < 0 {
		return composite, ""
	}
	return composite[:i], composite[i+1:]
}

// RootDependencies indexes the top-level trees into a flat name-to-version
// map. The first occurrence of a name wins.
func RootDependencies(trees []TreeNode) RootDeps {
	roots := make(RootDeps, len(trees))
	for _, tree := range trees {
		name, version := SplitNameVersion(tree.Name)
		if _, ok := roots[name]; !ok {
			roots[name] = version
		}
	}
	return roots
}

// ConvertTree walks a sequence of tree nodes and produces the DepMap for that
// level. roots must be the index built by RootDependencies over the full
// top-level tree before any recursion starts, since a shadow node anywhere in
// the tree may resolve against a root entry.
//
// Resolution is first-write-wins per level: when duplicate names appear, the
// earlier occurrence takes precedence, matching install-time hoisting. A
// shadow node whose version range is satisfied by the root install is
// recorded with IsRootDep set; one whose range is not satisfied is skipped
// entirely, on the assumption that the real definition is a sibling at the
// same level. A shadow node naming a package absent from the root index fails
// the conversion.
func ConvertTree(trees []TreeNode, roots RootDeps) (DepMap, error) {
	deps := make(DepMap, len(trees))
	for _, tree := range trees {
		name, version := SplitNameVersion(tree.Name)
		if _, ok := deps[name]; ok {
			continue
		}

		if tree.Shadow {
			rootVersion, ok := roots[name]
			if !ok {
				return nil, errors.Wrapf(ErrUnknownShadow, "package %s", name)
			}
			if !satisfies(rootVersion, version) {
				// The full definition is a sibling at this level and is
				// recorded when that node is visited.
				continue
			}
			deps[name] = &Dependency{Version: version, IsRootDep: true}
			continue
		}

		dep := &Dependency{Version: version}
		if len(tree.Children) > 0 {
			children, err := ConvertTree(tree.Children, roots)
			if err != nil {
				return nil, err
			}
			dep.Dependencies = children
		}
		deps[name] = dep
	}
	return deps, nil
}

// satisfies reports whether version falls within the npm-style range. Ranges
// and versions that do not parse as semver (file: paths, git URLs) never
// satisfy.
func satisfies(version string, rangeSpec string) bool {
	c, err := semver.NewConstraint(rangeSpec)
	if err != nil {
		log.WithField("range", rangeSpec).Debug("unparsable version range")
		return false
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		log.WithField("version", version).Debug("unparsable version")
		return false
	}
	return c.Check(v)
}
