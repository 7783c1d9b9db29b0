package yarn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noderes/noderes/buildtools/yarn"
)

func TestSplitNameVersion(t *testing.T) {
	name, version := yarn.SplitNameVersion("ms@2.0.0")
	assert.Equal(t, "ms", name)
	assert.Equal(t, "2.0.0", version)

	name, version = yarn.SplitNameVersion("@scope/pkg@1.2.3")
	assert.Equal(t, "@scope/pkg", name)
	assert.Equal(t, "1.2.3", version)

	name, version = yarn.SplitNameVersion("no-separator")
	assert.Equal(t, "no-separator", name)
	assert.Equal(t, "", version)
}

/*
├── a@1.0.0
└─┬ b@1.0.0
  └─┬ c@2.0.0
    └── d@3.0.0
*/
func TestConvertTreePreservesStructure(t *testing.T) {
	trees := []yarn.TreeNode{
		{Name: "a@1.0.0"},
		{Name: "b@1.0.0", Children: []yarn.TreeNode{
			{Name: "c@2.0.0", Children: []yarn.TreeNode{
				{Name: "d@3.0.0"},
			}},
		}},
	}

	deps, err := yarn.ConvertTree(trees, yarn.RootDependencies(trees))
	assert.NoError(t, err)

	assert.Len(t, deps, 2)
	assert.Equal(t, "1.0.0", deps["a"].Version)
	assert.Nil(t, deps["a"].Dependencies)

	b := deps["b"]
	assert.Equal(t, "1.0.0", b.Version)
	assert.Len(t, b.Dependencies, 1)

	c := b.Dependencies["c"]
	assert.Equal(t, "2.0.0", c.Version)
	assert.Equal(t, "3.0.0", c.Dependencies["d"].Version)
	assert.False(t, c.Dependencies["d"].IsRootDep)
}

func TestConvertTreeIsIdempotent(t *testing.T) {
	trees := []yarn.TreeNode{
		{Name: "a@1.0.0"},
		{Name: "b@1.0.0", Children: []yarn.TreeNode{
			{Name: "a@1.0.0", Shadow: true},
			{Name: "c@2.0.0"},
		}},
	}
	roots := yarn.RootDependencies(trees)

	first, err := yarn.ConvertTree(trees, roots)
	assert.NoError(t, err)
	second, err := yarn.ConvertTree(trees, roots)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestShadowResolvesToRootInstall(t *testing.T) {
	trees := []yarn.TreeNode{
		{Name: "a@1.0.0"},
		{Name: "b@1.0.0", Children: []yarn.TreeNode{
			{Name: "a@1.0.0", Shadow: true},
		}},
	}

	deps, err := yarn.ConvertTree(trees, yarn.RootDependencies(trees))
	assert.NoError(t, err)

	a := deps["b"].Dependencies["a"]
	assert.NotNil(t, a)
	assert.True(t, a.IsRootDep)
	assert.Equal(t, "1.0.0", a.Version)
	assert.Nil(t, a.Dependencies)
}

func TestShadowSatisfiedByRange(t *testing.T) {
	trees := []yarn.TreeNode{
		{Name: "a@1.4.2"},
		{Name: "b@1.0.0", Children: []yarn.TreeNode{
			{Name: "a@^1.0.0", Shadow: true},
		}},
	}

	deps, err := yarn.ConvertTree(trees, yarn.RootDependencies(trees))
	assert.NoError(t, err)

	a := deps["b"].Dependencies["a"]
	assert.NotNil(t, a)
	assert.True(t, a.IsRootDep)
	assert.Equal(t, "^1.0.0", a.Version)
}

// When the root install does not satisfy the shadow's range, the level gets
// no entry at all: the real definition is a sibling node.
func TestShadowRangeMismatchSkipsEntry(t *testing.T) {
	trees := []yarn.TreeNode{
		{Name: "a@2.0.0"},
		{Name: "b@1.0.0", Children: []yarn.TreeNode{
			{Name: "a@1.0.0", Shadow: true},
		}},
	}

	deps, err := yarn.ConvertTree(trees, yarn.RootDependencies(trees))
	assert.NoError(t, err)
	assert.NotContains(t, deps["b"].Dependencies, "a")
}

func TestShadowUnknownNameFailsFast(t *testing.T) {
	trees := []yarn.TreeNode{
		{Name: "b@1.0.0", Children: []yarn.TreeNode{
			{Name: "a@1.0.0", Shadow: true},
		}},
	}

	_, err := yarn.ConvertTree(trees, yarn.RootDependencies(trees))
	assert.ErrorIs(t, err, yarn.ErrUnknownShadow)
	assert.Contains(t, err.Error(), "package a")
}

// Non-semver specifiers (file: paths, git URLs) never satisfy, so the shadow
// entry is skipped rather than resolved to the root.
func TestShadowUnparsableRangeSkipsEntry(t *testing.T) {
	trees := []yarn.TreeNode{
		{Name: "a@1.0.0"},
		{Name: "b@1.0.0", Children: []yarn.TreeNode{
			{Name: "a@file:../a", Shadow: true},
		}},
	}

	deps, err := yarn.ConvertTree(trees, yarn.RootDependencies(trees))
	assert.NoError(t, err)
	assert.NotContains(t, deps["b"].Dependencies, "a")
}

func TestFirstWriteWinsAtOneLevel(t *testing.T) {
	trees := []yarn.TreeNode{
		{Name: "a@1.0.0"},
		{Name: "a@2.0.0"},
	}

	deps, err := yarn.ConvertTree(trees, yarn.RootDependencies(trees))
	assert.NoError(t, err)
	assert.Len(t, deps, 1)
	assert.Equal(t, "1.0.0", deps["a"].Version)
}

func TestRootDependenciesFirstSeenWins(t *testing.T) {
	roots := yarn.RootDependencies([]yarn.TreeNode{
		{Name: "a@1.0.0"},
		{Name: "a@2.0.0"},
		{Name: "@scope/pkg@0.3.1"},
	})

	assert.Equal(t, yarn.RootDeps{
		"a":          "1.0.0",
		"@scope/pkg": "0.3.1",
	}, roots)
}
