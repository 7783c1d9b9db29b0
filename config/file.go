package config

import (
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/noderes/noderes/files"
)

// DefaultFilenames are probed in order when no --config flag is given.
var DefaultFilenames = []string{".noderes.yml", ".noderes.yaml", ".noderes.toml"}

// File is the parsed project configuration file.
type File struct {
	Version int                    `yaml:"version" toml:"version"`
	Options map[string]interface{} `yaml:"options" toml:"options"`
}

// Options are the yarn tool settings accepted in the configuration file's
// options map.
type Options struct {
	Cmd              string   `mapstructure:"cmd"`
	NoFrozenLockfile bool     `mapstructure:"no-frozen-lockfile"`
	Depth            int      `mapstructure:"depth"`
	IgnorableErrors  []string `mapstructure:"ignorable-errors"`
}

// YarnOptions decodes the file's options map. Absent keys keep their
// defaults (unlimited depth, frozen lockfile, no ignorable patterns).
func (f File) YarnOptions() (Options, error) {
	options := Options{Depth: -1}
	err := mapstructure.Decode(f.Options, &options)
	if err != nil {
		return Options{}, errors.Wrap(err, "could not decode configuration options")
	}
	return options, nil
}

// ReadFile loads the configuration file at path, or probes the default
// filenames when path is empty. A missing file is not an error; the zero File
// is returned.
func ReadFile(path string) (File, string, error) {
	if path != "" {
		f, err := ParseFile(path)
		return f, path, err
	}

	for _, filename := range DefaultFilenames {
		exists, err := files.Exists(filename)
		if err != nil {
			return File{}, "", err
		}
		if exists {
			f, err := ParseFile(filename)
			return f, filename, err
		}
	}

	return File{}, "", nil
}

// ParseFile parses a configuration file, choosing the format by extension.
func ParseFile(path string) (File, error) {
	var f File
	var err error
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = files.ReadTOML(&f, path)
	} else {
		err = files.ReadYAML(&f, path)
	}
	if err != nil {
		return File{}, errors.Wrapf(err, "could not parse configuration file %s", path)
	}
	return f, nil
}
