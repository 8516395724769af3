package simplex

import (
	"math"

	"github.com/pkg/errors"
	"q.log/tableau/model"
	"q.log/tableau/tableau"
)

// Solve runs p with the given method.
func Solve(method Method, p *model.Problem, opts ...SolveOption) (*Result, error) {
	switch method {
	case Auto:
		return SolveAuto(p, opts...)
	case Primal:
		return SolvePrimal(p, opts...)
	case Dual:
		return SolveDual(p, opts...)
	case BigM:
		return SolveBigM(p, opts...)
	}
	return nil, errors.Wrapf(ErrUnknownMethod, "%d", int(method))
}

// SolvePrimal solves p, whose rows must all be <= with a non-negative rhs,
// with the primal simplex method on the standard tableau.
func SolvePrimal(p *model.Problem, opts ...SolveOption) (*Result, error) {
	cfg := newSolveConfig(opts)
	if err := checkStandard(p); err != nil {
		return nil, errors.Wrap(err, "primal simplex")
	}
	for r := range p.NumRows {
		if b := p.B.At(r, 0); b < -cfg.tol {
			return nil, errors.Wrapf(ErrPrimalInfeasibleStart, "row %d has rhs %g", r+1, b)
		}
	}

	t, err := tableau.Standard(p)
	if err != nil {
		return nil, err
	}
	status, iters, err := cfg.iterate(Primal, t)
	if err != nil {
		return nil, err
	}
	return resultOf(Primal, status, iters, t), nil
}

// iterate runs primal simplex pivots on t until the objective row is
// optimal or no row bounds the entering column. It serves both the
// standard and the Big-M tableau.
func (c *solveConfig) iterate(method Method, t *tableau.Tableau) (Status, int, error) {
	for iter := 1; ; iter++ {
		enter := enteringColumn(t, c.tol)
		if enter < 0 {
			return Optimal, iter - 1, nil
		}
		if iter > c.maxIter {
			return Optimal, iter - 1, errors.Wrapf(ErrIterationLimit, "%s after %d pivots", method, c.maxIter)
		}

		ratios, leave := ratioTest(t, enter, c.tol)
		if leave < 0 {
			return Unbounded, iter - 1, nil
		}

		snap := snapshotOf(method, iter, t, enter, leave)
		snap.RowRatios = ratios
		c.emit(snap)

		if err := t.Pivot(leave, enter, c.tol); err != nil {
			return Optimal, iter - 1, err
		}
	}
}

// enteringColumn applies Dantzig's rule: the most negative (maximize) or
// most positive (minimize) objective-row entry that fails the optimality
// test, lowest index first. It returns -1 when the row is optimal.
func enteringColumn(t *tableau.Tableau, tol float64) int {
	enter := -1
	for j, v := range t.ObjectiveRow() {
		if t.Mode.Optimal(v, tol) {
			continue
		}
		if enter < 0 || t.Mode.Better(v, t.T.At(0, enter)) {
			enter = j
		}
	}
	return enter
}

// ratioTest returns rhs/coefficient for each constraint row whose entry in
// column enter exceeds tol (+Inf otherwise) and the tableau row holding the
// smallest ratio, lowest row first. The row is -1 when none is eligible.
func ratioTest(t *tableau.Tableau, enter int, tol float64) ([]float64, int) {
	m := t.NumConstraints()
	ratios := make([]float64, m)
	leave := -1
	best := math.Inf(1)
	for i := range m {
		a := t.T.At(i+1, enter)
		if a <= tol {
			ratios[i] = math.Inf(1)
			continue
		}
		ratios[i] = t.RHS(i+1) / a
		if ratios[i] < best {
			best = ratios[i]
			leave = i + 1
		}
	}
	return ratios, leave
}

// checkStandard rejects anything but <= rows.
func checkStandard(p *model.Problem) error {
	if err := p.Validate(); err != nil {
		return err
	}
	for i, rel := range p.Relations {
		if rel != model.LessEq {
			return errors.Wrapf(ErrRowRelation, "row %d is %s", i+1, rel)
		}
	}
	return nil
}
