package pathcases

import (
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/multierr"
)

// MaxCandidates is the largest number of candidates, before deduplication,
// a grammar may produce.
const MaxCandidates = 1_000_000

// MaxDepthLimit and MaxLeadingLimit bound the length of generated paths.
// Path length grows with depth, so the work of a deep but narrow grammar
// is not bounded by its candidate count alone.
const (
	MaxDepthLimit   = 64
	MaxLeadingLimit = 64
)

// Grammar lists the building blocks paths are enumerated from.
// A Grammar is read-only once constructed, use Clone to derive a modified copy.
type Grammar struct {
	// Segments are the directory components of nested combinations.
	Segments []string `mapstructure:"segments" yaml:"segments"`
	// Separators join segments. The first one is the unit separator,
	// which is repeated to build leading runs.
	Separators []string `mapstructure:"separators" yaml:"separators"`
	// Roots prefix every nested combination.
	Roots []string `mapstructure:"roots" yaml:"roots"`
	// FileBodies and Extensions form the innermost level of nested combinations.
	FileBodies []string `mapstructure:"file_bodies" yaml:"file_bodies"`
	Extensions []string `mapstructure:"extensions" yaml:"extensions"`
	// Stems are boundary cases emitted with 0 to MaxLeading leading separators.
	Stems []string `mapstructure:"stems" yaml:"stems"`
	// Name is the plain name extensions are attached to.
	Name string `mapstructure:"name" yaml:"name"`
	// MaxLeading is the longest leading run of separators for boundary cases.
	MaxLeading int `mapstructure:"max_leading" yaml:"max_leading"`
	// MaxDepth is the number of levels of nested combinations, at least 1.
	MaxDepth int `mapstructure:"max_depth" yaml:"max_depth"`
}

// DefaultGrammar returns the grammar used to generate the reference fixtures.
func DefaultGrammar() Grammar {
	return Grammar{
		Segments:   []string{"a", "bb", "ccc", ".", "..", "../..", " ", "  "},
		Separators: []string{"/", "//"},
		Roots:      []string{"", "/", "//"},
		FileBodies: []string{"a", "bb", "ccc", " ", "  "},
		Extensions: []string{
			"",
			".x", ".x ", ". x ", ". x",
			".yz", ".yz ", ". yz ", ". yz",
			".x.y", ".x.y ", ". x.y ", ". x.y",
			".", ". ", " . ", " .",
			"..x", "..x ", ".. x ", ".. x",
		},
		Stems: []string{
			"", ".", "..", "...",
			".z", ". ",
			"..y", ".. ",
			"...x", "... ",
			"a.", " .",
			"b..", " ..",
			"c...", " ...",
			"a.x", " .x",
			"b..y", " ..y",
			"c...z", " ...z",
		},
		Name:       "a",
		MaxLeading: 3,
		MaxDepth:   3,
	}
}

// Clone returns a deep copy of the grammar.
func (g Grammar) Clone() Grammar {
	c := g

	c.Segments = append([]string(nil), g.Segments...)
	c.Separators = append([]string(nil), g.Separators...)
	c.Roots = append([]string(nil), g.Roots...)
	c.FileBodies = append([]string(nil), g.FileBodies...)
	c.Extensions = append([]string(nil), g.Extensions...)
	c.Stems = append([]string(nil), g.Stems...)

	return c
}

// Validate checks the grammar and reports all problems at once.
// Every returned error matches ErrInvalidGrammar.
func (g Grammar) Validate() error {
	var err error

	for _, vocabulary := range []struct {
		name   string
		values []string
	}{
		{"segments", g.Segments},
		{"separators", g.Separators},
		{"roots", g.Roots},
		{"file bodies", g.FileBodies},
	} {
		if len(vocabulary.values) == 0 {
			err = multierr.Append(err, fmt.Errorf("%w: no %s", ErrInvalidGrammar, vocabulary.name))
		}
	}

	if lo.Contains(g.Separators, "") {
		err = multierr.Append(err, fmt.Errorf("%w: empty separator", ErrInvalidGrammar))
	}

	switch {
	case g.MaxDepth < 1:
		err = multierr.Append(err, fmt.Errorf("%w: max depth %d is less than 1", ErrInvalidGrammar, g.MaxDepth))
	case g.MaxDepth > MaxDepthLimit:
		err = multierr.Append(err, fmt.Errorf("%w: max depth %d exceeds %d", ErrInvalidGrammar, g.MaxDepth, MaxDepthLimit))
	}

	switch {
	case g.MaxLeading < 0:
		err = multierr.Append(err, fmt.Errorf("%w: negative max leading %d", ErrInvalidGrammar, g.MaxLeading))
	case g.MaxLeading > MaxLeadingLimit:
		err = multierr.Append(err, fmt.Errorf("%w: max leading %d exceeds %d", ErrInvalidGrammar, g.MaxLeading, MaxLeadingLimit))
	}

	if err != nil {
		return err
	}

	if n := g.Count(); n > MaxCandidates {
		return fmt.Errorf("%w: %d exceeds %d", ErrTooManyCandidates, n, MaxCandidates)
	}

	return nil
}

// Count returns the number of candidates the grammar produces before deduplication.
// Counts above MaxCandidates are reported as MaxCandidates+1.
func (g Grammar) Count() int {
	leading := 0

	if g.MaxLeading >= 0 {
		leading = saturate(g.MaxLeading) + 1
	}

	total := saturatedMul(len(g.Stems), leading)
	total = saturatedAdd(total, saturatedMul(2, saturatedMul(leading, len(g.Extensions))))

	level := saturatedMul(len(g.FileBodies), len(g.Extensions))

	for depth := 1; depth < g.MaxDepth; depth++ {
		level = saturatedMul(len(g.Segments), saturatedAdd(1, saturatedMul(len(g.Separators), saturatedAdd(1, level))))

		// Without segments every deeper level is empty.
		if level > MaxCandidates || len(g.Segments) == 0 {
			break
		}
	}

	return saturatedAdd(total, saturatedMul(len(g.Roots), level))
}

func saturate(n int) int {
	return min(n, MaxCandidates+1)
}

// saturatedMul multiplies two non-negative numbers, clamping at MaxCandidates+1.
func saturatedMul(a, b int) int {
	a, b = saturate(a), saturate(b)

	if a != 0 && b > (MaxCandidates+1)/a {
		return MaxCandidates + 1
	}

	return a * b
}

func saturatedAdd(a, b int) int {
	return saturate(saturate(a) + saturate(b))
}
