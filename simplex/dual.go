package simplex

import (
	"math"

	"github.com/pkg/errors"
	"q.log/tableau/model"
	"q.log/tableau/tableau"
)

// SolveDual solves p, whose rows must all be <=, with the dual simplex
// method. The objective row of the standard tableau must already be
// optimal; right-hand sides may be negative.
func SolveDual(p *model.Problem, opts ...SolveOption) (*Result, error) {
	cfg := newSolveConfig(opts)
	if err := checkStandard(p); err != nil {
		return nil, errors.Wrap(err, "dual simplex")
	}

	t, err := tableau.Standard(p)
	if err != nil {
		return nil, err
	}
	if enter := enteringColumn(t, cfg.tol); enter >= 0 {
		return nil, errors.Wrapf(ErrNotDualFeasible, "%s entry of %s is %g", t.Labels[enter], p.Mode, t.T.At(0, enter))
	}

	status, iters, err := cfg.iterateDual(t)
	if err != nil {
		return nil, err
	}
	return resultOf(Dual, status, iters, t), nil
}

func (c *solveConfig) iterateDual(t *tableau.Tableau) (Status, int, error) {
	for iter := 1; ; iter++ {
		leave := leavingRow(t, c.tol)
		if leave < 0 {
			return Optimal, iter - 1, nil
		}
		if iter > c.maxIter {
			return Optimal, iter - 1, errors.Wrapf(ErrIterationLimit, "dual after %d pivots", c.maxIter)
		}

		ratios, enter := dualRatioTest(t, leave, c.tol)
		if enter < 0 {
			return Infeasible, iter - 1, nil
		}

		snap := snapshotOf(Dual, iter, t, enter, leave)
		snap.ColumnRatios = ratios
		c.emit(snap)

		if err := t.Pivot(leave, enter, c.tol); err != nil {
			return Optimal, iter - 1, err
		}
	}
}

// leavingRow returns the tableau row with the most negative rhs below
// -tol, lowest row first, or -1 when the basic solution is feasible.
func leavingRow(t *tableau.Tableau, tol float64) int {
	leave := -1
	best := -tol
	for i := 1; i <= t.NumConstraints(); i++ {
		if b := t.RHS(i); b < best {
			best = b
			leave = i
		}
	}
	return leave
}

// dualRatioTest computes |row0_j / a_rj| over the columns where the
// leaving row is negative (+Inf elsewhere) and returns the column with
// the smallest ratio, lowest index first, or -1 when there is none.
func dualRatioTest(t *tableau.Tableau, leave int, tol float64) ([]float64, int) {
	obj, row := t.ObjectiveRow(), t.Row(leave)
	ratios := make([]float64, len(row))
	enter := -1
	best := math.Inf(1)
	for j, a := range row {
		if a >= -tol {
			ratios[j] = math.Inf(1)
			continue
		}
		ratios[j] = math.Abs(obj[j] / a)
		if ratios[j] < best {
			best = ratios[j]
			enter = j
		}
	}
	return ratios, enter
}
