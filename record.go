package pathcases

import (
	"github.com/samber/lo"
)

// Record holds the expected properties of a single path.
type Record struct {
	Path       string
	IsAbsolute bool
	Basename   string
	Dirname    string
	Extname    string
	Parent     string
	Cleanpath  string
}

// Evaluate computes the record for path.
func (c Convention) Evaluate(path string) Record {
	return Record{
		Path:       path,
		IsAbsolute: c.IsAbs(path),
		Basename:   c.Base(path),
		Dirname:    c.Dir(path),
		Extname:    c.Ext(path),
		Parent:     c.Parent(path),
		Cleanpath:  c.Clean(path),
	}
}

// EvaluateAll computes the records for all paths, in order.
func (c Convention) EvaluateAll(paths []string) []Record {
	return lo.Map(paths, func(path string, _ int) Record {
		return c.Evaluate(path)
	})
}

// Evaluate computes the record for path using the Posix convention.
func Evaluate(path string) Record {
	return Posix.Evaluate(path)
}
