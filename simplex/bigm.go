package simplex

import (
	"github.com/pkg/errors"
	"q.log/tableau/model"
	"q.log/tableau/tableau"
)

// SolveBigM solves p with any mix of <=, >= and = rows using the Big-M
// method. An optimum that keeps an artificial variable positive in the
// basis is reported as Infeasible. An unbounded ray found while an
// artificial is still positive is only reported as Unbounded when the
// rows admit a feasible point.
func SolveBigM(p *model.Problem, opts ...SolveOption) (*Result, error) {
	cfg := newSolveConfig(opts)

	t, err := tableau.Mixed(p, cfg.bigM)
	if err != nil {
		return nil, errors.Wrap(err, "big-m")
	}
	status, iters, err := cfg.iterate(BigM, t)
	if err != nil {
		return nil, err
	}
	if len(t.ArtificialInBasis(cfg.artTol)) > 0 {
		switch status {
		case Optimal:
			status = Infeasible
		case Unbounded:
			feasible, n, err := cfg.feasible(t)
			iters += n
			if err != nil {
				return nil, err
			}
			if !feasible {
				status = Infeasible
			}
		}
	}
	return resultOf(BigM, status, iters, t), nil
}

// feasible minimizes the sum of the artificials over the rows of t and
// reports whether it reaches zero.
func (c *solveConfig) feasible(t *tableau.Tableau) (bool, int, error) {
	ph := t.PhaseOne()
	_, iters, err := c.iterate(BigM, ph)
	if err != nil {
		return false, iters, errors.Wrap(err, "big-m feasibility")
	}
	return ph.Objective() <= c.artTol, iters, nil
}
