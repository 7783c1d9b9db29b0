package config

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func noProbe(t *testing.T) func() (string, error) {
	return func() (string, error) {
		t.Fatal("probe must not run when the command is already named")
		return "", nil
	}
}

func TestResolveYarnCmdPrefersEnvironment(t *testing.T) {
	cmd := resolveYarnCmd("/opt/yarn/bin/yarn", "yarnpkg", noProbe(t))
	assert.Equal(t, "/opt/yarn/bin/yarn", cmd)
}

func TestResolveYarnCmdFallsBackToConfigFile(t *testing.T) {
	cmd := resolveYarnCmd("", "yarnpkg", noProbe(t))
	assert.Equal(t, "yarnpkg", cmd)
}

func TestResolveYarnCmdProbesCandidates(t *testing.T) {
	cmd := resolveYarnCmd("", "", func() (string, error) {
		return "yarn.cmd", nil
	})
	assert.Equal(t, "yarn.cmd", cmd)
}

func TestResolveYarnCmdDefaultsWhenProbeFails(t *testing.T) {
	cmd := resolveYarnCmd("", "", func() (string, error) {
		return "", errors.New("could not resolve command")
	})
	assert.Equal(t, "yarn", cmd)
}
