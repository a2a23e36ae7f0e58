// SPDX-License-Identifier: MIT
package themes

import (
	"regexp"
	"sort"

	"github.com/spf13/afero"
)

// DefaultOverrideFiles are the stylesheets scanned when no list is configured.
var DefaultOverrideFiles = []string{
	"src/style.css",
	"src/styles.css",
	"src/index.css",
	"styles/globals.css",
	"app/globals.css",
}

// A body runs from the first "{" after "static" to the next "}". Nested
// braces are not understood; this is a heuristic, not a CSS parser.
var (
	themeStaticRe = regexp.MustCompile(`@theme\s+static\s*\{([^}]+)\}`)
	colorVarRe    = regexp.MustCompile(`--color-([a-zA-Z]+)-\d+\s*:`)
)

// OverrideSet holds palette color names whose shades the user declared in an
// `@theme static` block.
type OverrideSet map[string]struct{}

// Has reports whether color was overridden. A nil set has no members.
func (s OverrideSet) Has(color string) bool {
	_, ok := s[color]
	return ok
}

// Add records color.
func (s OverrideSet) Add(color string) {
	s[color] = struct{}{}
}

// Merge adds every member of other.
func (s OverrideSet) Merge(other OverrideSet) {
	for c := range other {
		s[c] = struct{}{}
	}
}

// Len returns the number of colors.
func (s OverrideSet) Len() int {
	return len(s)
}

// Names returns the colors sorted.
func (s OverrideSet) Names() []string {
	names := make([]string, 0, len(s))
	for c := range s {
		names = append(names, c)
	}
	sort.Strings(names)
	return names
}

// ParseThemeStaticOverrides extracts the color names declared as
// `--color-<name>-<shade>:` inside `@theme static { ... }` blocks.
func ParseThemeStaticOverrides(css string) OverrideSet {
	overridden := make(OverrideSet)
	for _, block := range themeStaticRe.FindAllStringSubmatch(css, -1) {
		for _, decl := range colorVarRe.FindAllStringSubmatch(block[1], -1) {
			overridden.Add(decl[1])
		}
	}
	return overridden
}

// UserOverriddenColors scans files on fsys for static theme overrides. An
// empty list falls back to DefaultOverrideFiles. Files that are missing or
// unreadable are skipped; a nil fsys yields an empty set.
func UserOverriddenColors(fsys afero.Fs, files []string) OverrideSet {
	overridden := make(OverrideSet)
	if fsys == nil {
		return overridden
	}

	if len(files) == 0 {
		files = DefaultOverrideFiles
	}

	for _, name := range files {
		exists, err := afero.Exists(fsys, name)
		if err != nil || !exists {
			continue
		}
		content, err := afero.ReadFile(fsys, name)
		if err != nil {
			continue
		}
		overridden.Merge(ParseThemeStaticOverrides(string(content)))
	}

	return overridden
}
