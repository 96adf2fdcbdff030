package pathcases

import (
	"context"
	"strings"

	"github.com/samber/lo"
)

// Enumerate returns all distinct candidate paths of the grammar, in the order
// they are first produced:
//
//  1. each stem, with 0 to MaxLeading leading separators
//  2. each extension on its own, below each leading run
//  3. each extension attached to Name, followed by each leading run
//  4. each nested combination, below each root
func Enumerate(ctx context.Context, g Grammar) ([]string, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	candidates := make([]string, 0, g.Count())

	candidates = append(candidates, g.boundaries()...)

	combinations := g.combinations()

	for _, root := range g.Roots {
		for _, combination := range combinations {
			candidates = append(candidates, root+combination)
		}
	}

	paths := lo.Uniq(candidates)

	Logger(ctx).WithField("grammar_depth", g.MaxDepth).Debugf("enumerated %d candidates, %d distinct", len(candidates), len(paths))

	return paths, nil
}

func (g Grammar) leadingRuns() []string {
	runs := make([]string, 0, g.MaxLeading+1)

	for n := 0; n <= g.MaxLeading; n++ {
		runs = append(runs, strings.Repeat(g.Separators[0], n))
	}

	return runs
}

func (g Grammar) boundaries() []string {
	var out []string

	runs := g.leadingRuns()

	for _, stem := range g.Stems {
		for _, run := range runs {
			out = append(out, run+stem)
		}
	}

	for _, run := range runs {
		for _, ext := range g.Extensions {
			out = append(out, run+ext)
		}
	}

	for _, run := range runs {
		for _, ext := range g.Extensions {
			out = append(out, g.Name+run+ext)
		}
	}

	return out
}

// combinations builds the nested segment combinations level by level,
// starting from the innermost file level.
func (g Grammar) combinations() []string {
	level := make([]string, 0, len(g.FileBodies)*len(g.Extensions))

	for _, body := range g.FileBodies {
		for _, ext := range g.Extensions {
			level = append(level, body+ext)
		}
	}

	for depth := 1; depth < g.MaxDepth; depth++ {
		next := make([]string, 0, len(g.Segments)*(1+len(g.Separators)*(1+len(level))))

		for _, segment := range g.Segments {
			next = append(next, segment)

			for _, sep := range g.Separators {
				next = append(next, segment+sep)

				for _, rest := range level {
					next = append(next, segment+sep+rest)
				}
			}
		}

		level = next
	}

	return level
}
