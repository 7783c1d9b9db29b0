// Package files implements utility routines for finding and reading files.
package files

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/apex/log"
)

func fileMode(elem ...string) (os.FileMode, error) {
	file, err := os.Stat(filepath.Join(elem...))
	if err != nil {
		return 0, err
	}

	return file.Mode(), nil
}

// Exists reports whether a regular file exists at the joined path.
func Exists(pathElems ...string) (bool, error) {
	mode, err := fileMode(pathElems...)
	if notExistErr(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return mode.IsRegular(), nil
}

// ExistsFolder reports whether a directory exists at the joined path.
func ExistsFolder(pathElems ...string) (bool, error) {
	mode, err := fileMode(pathElems...)
	if notExistErr(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return mode.IsDir(), nil
}

// Read reads the contents of the file at the joined path.
func Read(pathElems ...string) ([]byte, error) {
	name := filepath.Join(pathElems...)

	log.Debugf("reading file `%s`", name)
	contents, err := ioutil.ReadFile(name)
	if err != nil {
		log.Debugf("could not read file `%s`: %s", name, err.Error())
	}

	return contents, err
}

// Write writes contents to the file at the joined path, preserving the mode
// of an existing file.
func Write(contents []byte, pathElems ...string) error {
	name := filepath.Join(pathElems...)

	mode, err := fileMode(name)
	if err != nil {
		mode = 0644
	}

	log.Debugf("writing file `%s`", name)
	return ioutil.WriteFile(name, contents, mode)
}

// os.IsNotExist doesn't handle non-existent parent directories e.g.
// stat /some/path/without/a/parent.json: not a directory
func notExistErr(err error) bool {
	if os.IsNotExist(err) {
		return true
	}
	if _, ok := err.(*os.PathError); ok {
		return true
	}
	return false
}

// Rm removes the file or directory at the joined path.
func Rm(pathElems ...string) error {
	return os.RemoveAll(filepath.Join(pathElems...))
}
