package yarn

import (
	"regexp"
	"strings"
)

// Version references of the form `pkg@file:../dep` or `pkg@./dep`, bounded by
// a quote, comma, or whitespace.
var relativeRefRegexp = regexp.MustCompile(`@(file:)?(\.\.?[/\\][^"',\s]*)`)

// Replacement is one pending lockfile text substitution.
type Replacement struct {
	OldRef string
	NewRef string
}

// LockfileReplacements scans lockfile content for version references that
// point at relative filesystem paths and returns the substitutions that
// rebase them under rootPath, in discovery order. Each distinct reference
// appears once, so applying the list rewrites every occurrence exactly once.
func LockfileReplacements(content []byte, rootPath string) []Replacement {
	var replacements []Replacement
	seen := make(map[string]bool)
	for _, match := range relativeRefRegexp.FindAllSubmatch(content, -1) {
		oldRef := string(match[0])
		if seen[oldRef] {
			continue
		}
		seen[oldRef] = true

		prefix := string(match[1])
		relPath := string(match[2])
		newPath := strings.Replace(rootPath+"/"+relPath, `\`, "/", -1)
		replacements = append(replacements, Replacement{
			OldRef: oldRef,
			NewRef: "@" + prefix + newPath,
		})
	}
	return replacements
}

// RebaseLockfile rewrites relative file-path version references in lockfile
// content so they stay valid after the package is relocated under rootPath.
// It is a pure text transformation; callers read and write the file.
func RebaseLockfile(content []byte, rootPath string) []byte {
	text := string(content)
	for _, r := range LockfileReplacements(content, rootPath) {
		text = strings.Replace(text, r.OldRef, r.NewRef, -1)
	}
	return []byte(text)
}
