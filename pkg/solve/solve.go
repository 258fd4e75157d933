// Package solve runs the embedded SAT solver (go-air/gini) over a parsed
// formula and enumerates its models, so circuits can be animated without an
// external solver on the pipe.
package solve

import (
	"context"
	"errors"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/mpelleau/cnf2lightswitch/pkg/dimacs"
)

// gini's Solve result code for satisfiable.
const satisfiable = 1

// ErrStop can be returned by an Enumerate callback to end enumeration early
// without reporting an error.
var ErrStop = errors.New("stop enumeration")

// Enumerate finds satisfying assignments of f one at a time, calling fn for
// each. After every model a blocking clause is added, so successive models
// are distinct. Enumeration ends when the formula becomes unsatisfiable,
// when max models have been produced (max <= 0 means no limit), when fn
// returns an error, or when ctx is cancelled between models. It returns the
// number of models handed to fn.
func Enumerate(ctx context.Context, f *dimacs.Formula, max int, fn func(dimacs.Assignment) error) (int, error) {
	g := gini.NewVc(f.Vars, f.ClauseCount())
	for _, clause := range f.Clauses {
		for _, l := range clause {
			g.Add(giniLit(l))
		}
		g.Add(z.LitNull)
	}

	count := 0
	for max <= 0 || count < max {
		if err := ctx.Err(); err != nil {
			return count, err
		}
		if g.Solve() != satisfiable {
			return count, nil
		}

		model := make(dimacs.Assignment, 0, f.Vars)
		for v := 1; v <= f.Vars; v++ {
			if g.Value(z.Dimacs2Lit(v)) {
				model = append(model, dimacs.Lit(v))
			} else {
				model = append(model, dimacs.Lit(-v))
			}
		}
		count++
		if err := fn(model); err != nil {
			if errors.Is(err, ErrStop) {
				return count, nil
			}
			return count, err
		}

		// Block this model so the next Solve finds a different one. With no
		// variables the blocking clause is empty and the next Solve reports
		// unsatisfiable, which is exactly right.
		for _, l := range model {
			g.Add(giniLit(l.Neg()))
		}
		g.Add(z.LitNull)
	}
	return count, nil
}

// Models collects up to max models of f (max <= 0 means all of them).
func Models(ctx context.Context, f *dimacs.Formula, max int) ([]dimacs.Assignment, error) {
	var models []dimacs.Assignment
	_, err := Enumerate(ctx, f, max, func(a dimacs.Assignment) error {
		models = append(models, a)
		return nil
	})
	return models, err
}

// giniLit converts a DIMACS literal to gini's internal encoding.
func giniLit(l dimacs.Lit) z.Lit {
	return z.Dimacs2Lit(int(l))
}
