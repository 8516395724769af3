package simplex

import (
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"q.log/tableau/tableau"
)

var (
	ErrPrimalInfeasibleStart = errors.New("simplex: primal simplex needs a non-negative rhs")
	ErrNotDualFeasible       = errors.New("simplex: objective row is not dual feasible")
	ErrIterationLimit        = errors.New("simplex: iteration limit reached")
	ErrUnknownMethod         = errors.New("simplex: unknown method")
	ErrRowRelation           = errors.New("simplex: method only accepts <= rows")
)

// Status is the terminal outcome of a solve.
type Status int

const (
	Optimal Status = iota
	Unbounded
	Infeasible
)

func (s Status) String() string {
	switch s {
	case Optimal:
		return "Optimal"
	case Unbounded:
		return "Unbounded"
	case Infeasible:
		return "Infeasible"
	}
	return "Unknown"
}

// Method is a solution strategy.
type Method int

const (
	Auto Method = iota
	Primal
	Dual
	BigM
)

func (m Method) String() string {
	switch m {
	case Auto:
		return "auto"
	case Primal:
		return "primal"
	case Dual:
		return "dual"
	case BigM:
		return "big-m"
	}
	return "unknown"
}

func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "primal":
		return Primal, nil
	case "dual":
		return Dual, nil
	case "bigm", "big-m":
		return BigM, nil
	}
	return Auto, errors.Wrapf(ErrUnknownMethod, "%q", s)
}

// Result is what a solve call returns. Objective and Values are only
// meaningful when Status is Optimal.
type Result struct {
	Status Status

	// Method is the strategy that actually ran.
	Method Method

	Objective float64
	Values    []float64

	Iterations int

	// final tableau, for display
	Tableau *mat.Dense
	Labels  []tableau.Label
	Basis   []tableau.Label
}

func (r *Result) IsOptimal() bool {
	return r.Status == Optimal
}

// Value returns x_i (1-based), or 0 when there is no such variable.
func (r *Result) Value(i int) float64 {
	if i < 1 || i > len(r.Values) {
		return 0
	}
	return r.Values[i-1]
}

// Snapshot is a read-only capture of one iteration, taken before pivoting.
type Snapshot struct {
	Method    Method
	Iteration int

	Tableau *mat.Dense
	Labels  []tableau.Label
	Basis   []tableau.Label

	// RowRatios is the primal ratio test, one entry per constraint row,
	// +Inf where the row is not eligible.
	RowRatios []float64

	// ColumnRatios is the dual ratio test, one entry per variable column,
	// +Inf where the column is not eligible.
	ColumnRatios []float64

	Entering tableau.Label
	Leaving  tableau.Label
}

func snapshotOf(method Method, iter int, t *tableau.Tableau, enter, leaveRow int) Snapshot {
	return Snapshot{
		Method:    method,
		Iteration: iter,
		Tableau:   t.Copy(),
		Labels:    append([]tableau.Label(nil), t.Labels...),
		Basis:     t.BasisLabels(),
		Entering:  t.Labels[enter],
		Leaving:   t.Labels[t.Basis[leaveRow-1]],
	}
}

func resultOf(method Method, status Status, iters int, t *tableau.Tableau) *Result {
	r := &Result{
		Status:     status,
		Method:     method,
		Iterations: iters,
		Tableau:    t.Copy(),
		Labels:     append([]tableau.Label(nil), t.Labels...),
		Basis:      t.BasisLabels(),
	}
	if status == Optimal {
		r.Objective = t.Objective()
		r.Values = t.Values()
	}
	return r
}
