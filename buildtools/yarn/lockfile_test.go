package yarn_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noderes/noderes/buildtools/yarn"
)

func TestRebaseLockfile(t *testing.T) {
	in := `"pkgA@file:../local-dep":
  version "1.0.0"
`
	out := yarn.RebaseLockfile([]byte(in), "packages/root")
	assert.Equal(t, `"pkgA@file:packages/root/../local-dep":
  version "1.0.0"
`, string(out))
}

func TestRebaseLockfileDotSlash(t *testing.T) {
	in := `"pkgB@./sibling":`
	out := yarn.RebaseLockfile([]byte(in), "packages/root")
	assert.Equal(t, `"pkgB@packages/root/./sibling":`, string(out))
}

func TestRebaseLockfileNormalizesBackslashes(t *testing.T) {
	in := `"pkgC@file:..\win-dep":`
	out := yarn.RebaseLockfile([]byte(in), `packages\root`)
	assert.Equal(t, `"pkgC@file:packages/root/../win-dep":`, string(out))
}

func TestRebaseLockfileLeavesRegistryRefsAlone(t *testing.T) {
	in := `"ms@2.0.0":
  version "2.0.0"
  resolved "https://registry.yarnpkg.com/ms/-/ms-2.0.0.tgz"
`
	out := yarn.RebaseLockfile([]byte(in), "packages/root")
	assert.Equal(t, in, string(out))
}

// A reference appearing in several entries is discovered once and therefore
// rewritten exactly once per occurrence, never double-prefixed.
func TestRebaseLockfileRepeatedRefs(t *testing.T) {
	in := `"pkgA@file:../local-dep":
  version "1.0.0"

"pkgB@1.0.0":
  dependencies:
    pkgA "file:../local-dep"
"pkgC@file:../local-dep":
`
	out := string(yarn.RebaseLockfile([]byte(in), "packages/root"))
	assert.Equal(t, 2, strings.Count(out, "@file:packages/root/../local-dep"))
	assert.NotContains(t, out, "packages/root/packages/root")
}

// No replacement may produce text that a later replacement's target matches,
// otherwise the sequential fold would rewrite freshly substituted text.
func TestLockfileReplacementsAreDisjoint(t *testing.T) {
	in := `"pkgA@file:../local-dep":
  version "1.0.0"

"pkgB@file:./nested/dep":
  version "2.0.0"

"pkgC@../bare-relative":
  version "3.0.0"
`
	replacements := yarn.LockfileReplacements([]byte(in), "packages/root")
	assert.Len(t, replacements, 3)

	for i, earlier := range replacements {
		for _, later := range replacements[i+1:] {
			assert.NotContains(t, earlier.NewRef, later.OldRef)
		}
	}
}

func TestLockfileReplacementsDiscoveryOrder(t *testing.T) {
	in := `"b@file:../second": "a@file:../first"`
	replacements := yarn.LockfileReplacements([]byte(in), "root")

	assert.Equal(t, []yarn.Replacement{
		{OldRef: "@file:../second", NewRef: "@file:root/../second"},
		{OldRef: "@file:../first", NewRef: "@file:root/../first"},
	}, replacements)
}
