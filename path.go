package pathcases

import (
	"strings"
)

// Convention describes which byte separates path components.
type Convention struct {
	Separator byte
}

// Separator of the Posix convention.
const Separator = '/'

// Posix is the slash separated convention used by the package level functions.
var Posix = Convention{Separator: Separator}

func IsPathSeparator(c uint8) bool {
	return Posix.IsPathSeparator(c)
}

func (c Convention) IsPathSeparator(b uint8) bool {
	return b == c.Separator
}

func (c Convention) String() string {
	return string(c.Separator)
}

// Leading returns the length of the run of separators the path starts with.
func (c Convention) Leading(path string) int {
	i := 0

	for i < len(path) && c.IsPathSeparator(path[i]) {
		i++
	}

	return i
}

func (c Convention) trimTrailing(path string) string {
	for path != "" && c.IsPathSeparator(path[len(path)-1]) {
		path = path[:len(path)-1]
	}

	return path
}

// IsAbs reports whether the path starts with one or more separators.
func (c Convention) IsAbs(path string) bool {
	return path != "" && c.IsPathSeparator(path[0])
}

// Base returns the last element of path, ignoring trailing separators.
// If the path is empty or consists of separators only, Base returns a single separator.
func (c Convention) Base(path string) string {
	path = c.trimTrailing(path)

	if path == "" {
		return c.String()
	}

	return path[strings.LastIndexByte(path, c.Separator)+1:]
}

// Dir returns all but the last element of path, with trailing separators removed.
// The run of separators the path starts with is kept as is, so "//a" yields "//"
// and "///a//b" yields "///a". A path without a directory part yields ".".
func (c Convention) Dir(path string) string {
	n := c.Leading(path)

	if n == len(path) {
		if path == "" {
			return "."
		}

		return path
	}

	trimmed := c.trimTrailing(path)

	i := strings.LastIndexByte(trimmed, c.Separator)
	if i < n {
		if n == 0 {
			return "."
		}

		return path[:n]
	}

	// trimmed[n] is not a separator, so this never eats into the leading run.
	return c.trimTrailing(trimmed[:i])
}

// Parent returns the parent of path. It equals Dir.
func (c Convention) Parent(path string) string {
	return c.Dir(path)
}

// Ext returns the extension of the last element of path, starting at its last dot.
// A dot at the start of the element, or at its very end, does not start an
// extension: ".bashrc", "a." and "..." have none.
func (c Convention) Ext(path string) string {
	base := c.Base(path)

	i := strings.LastIndexByte(base, '.')
	if i <= 0 || i == len(base)-1 {
		return ""
	}

	return base[i:]
}

// Clean returns the lexically shortest path equivalent to path.
// Runs of separators collapse, "." elements are removed and ".." elements remove
// the preceding element. ".." directly below the root is dropped, leading ".."
// elements of a relative path are kept. The leading run of separators is kept
// verbatim, unless nothing follows it, in which case Clean returns a single separator.
func (c Convention) Clean(path string) string {
	n := c.Leading(path)

	var elements []string

	for _, element := range strings.Split(path[n:], c.String()) {
		switch element {
		case "", ".":
			continue
		case "..":
			if len(elements) > 0 && elements[len(elements)-1] != ".." {
				elements = elements[:len(elements)-1]

				continue
			}

			if n > 0 {
				continue
			}
		}

		elements = append(elements, element)
	}

	if len(elements) == 0 {
		if n > 0 {
			return c.String()
		}

		return "."
	}

	return path[:n] + strings.Join(elements, c.String())
}

// IsAbs reports whether the path is absolute.
func IsAbs(path string) bool {
	return Posix.IsAbs(path)
}

// Base returns the last element of path, see Convention.Base.
func Base(path string) string {
	return Posix.Base(path)
}

// Dir returns all but the last element of path, see Convention.Dir.
func Dir(path string) string {
	return Posix.Dir(path)
}

func Parent(path string) string {
	return Posix.Parent(path)
}

func Ext(path string) string {
	return Posix.Ext(path)
}

// Clean returns the normalized form of path, see Convention.Clean.
func Clean(path string) string {
	return Posix.Clean(path)
}
