package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noderes/noderes/config"
)

func TestParseYAMLFile(t *testing.T) {
	f, err := config.ParseFile(filepath.Join("testdata", "noderes.yml"))
	assert.NoError(t, err)
	assert.Equal(t, 1, f.Version)

	options, err := f.YarnOptions()
	assert.NoError(t, err)
	assert.Equal(t, "yarnpkg", options.Cmd)
	assert.True(t, options.NoFrozenLockfile)
	assert.Equal(t, 2, options.Depth)
	assert.Equal(t, []string{"^warning "}, options.IgnorableErrors)
}

func TestParseTOMLFile(t *testing.T) {
	f, err := config.ParseFile(filepath.Join("testdata", "noderes.toml"))
	assert.NoError(t, err)

	options, err := f.YarnOptions()
	assert.NoError(t, err)
	assert.Equal(t, "yarn.cmd", options.Cmd)
	assert.False(t, options.NoFrozenLockfile)
	assert.Equal(t, 0, options.Depth)
	assert.Len(t, options.IgnorableErrors, 2)
}

func TestYarnOptionsDefaults(t *testing.T) {
	options, err := config.File{}.YarnOptions()
	assert.NoError(t, err)
	assert.Equal(t, "", options.Cmd)
	assert.False(t, options.NoFrozenLockfile)
	assert.Equal(t, -1, options.Depth)
	assert.Empty(t, options.IgnorableErrors)
}

func TestReadFileMissingIsNotAnError(t *testing.T) {
	f, filename, err := config.ReadFile("")
	assert.NoError(t, err)
	assert.Equal(t, "", filename)
	assert.Equal(t, config.File{}, f)
}
