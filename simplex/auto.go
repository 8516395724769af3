package simplex

import (
	"github.com/pkg/errors"
	"q.log/tableau/model"
)

// Select inspects p and picks a strategy, returning the problem that
// strategy should run on:
//   - any = row: Big-M on p;
//   - otherwise >= rows are negated into <= rows. If every rhs is then
//     non-negative and nothing was negated: Primal on p;
//   - if some rhs is negative and the objective row is already optimal:
//     Dual on the negated problem;
//   - anything else: Big-M on p.
func Select(p *model.Problem, opts ...SolveOption) (Method, *model.Problem, error) {
	cfg := newSolveConfig(opts)
	if err := p.Validate(); err != nil {
		return Auto, nil, errors.Wrap(err, "select strategy")
	}

	if p.Has(model.Equal) {
		return BigM, p, nil
	}

	q := p.Clone()
	converted := false
	for r, rel := range q.Relations {
		if rel == model.GreaterEq {
			if err := q.MultiplyConstraint(r, -1); err != nil {
				return Auto, nil, err
			}
			converted = true
		}
	}

	primalFeasible := true
	for r := range q.NumRows {
		if q.B.At(r, 0) < -cfg.tol {
			primalFeasible = false
			break
		}
	}

	dualFeasible := true
	for j := range q.NumCols {
		if !q.Mode.Optimal(-q.C.At(0, j), cfg.tol) {
			dualFeasible = false
			break
		}
	}

	switch {
	case primalFeasible && !converted:
		return Primal, p, nil
	case !primalFeasible && dualFeasible:
		return Dual, q, nil
	}
	return BigM, p, nil
}

// SolveAuto selects a strategy for p and runs it.
func SolveAuto(p *model.Problem, opts ...SolveOption) (*Result, error) {
	method, q, err := Select(p, opts...)
	if err != nil {
		return nil, err
	}
	return Solve(method, q, opts...)
}
