package tableau

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"q.log/tableau/model"
)

var (
	ErrDegeneratePivot = errors.New("tableau: pivot element is zero within tolerance")
	ErrPivotRange      = errors.New("tableau: pivot position out of range")
)

// Tableau is a dense simplex tableau. Row 0 is the objective row, rows
// 1..m are constraints. The last two columns are the Z marker and the RHS.
type Tableau struct {
	T *mat.Dense

	// Labels is aligned 1:1 with the columns of T.
	Labels []Label

	// Basis holds, for constraint row i+1, the column index of its basic variable.
	Basis []int

	Mode        model.Mode
	NumDecision int
}

func (t *Tableau) Dims() (int, int) {
	return t.T.Dims()
}

// NumConstraints is the number of constraint rows.
func (t *Tableau) NumConstraints() int {
	return len(t.Basis)
}

// NumVars is the number of variable columns, excluding Z and RHS.
func (t *Tableau) NumVars() int {
	_, c := t.T.Dims()
	return c - 2
}

// ObjectiveRow returns the variable part of row 0. The slice aliases the tableau.
func (t *Tableau) ObjectiveRow() []float64 {
	return t.T.RawRowView(0)[:t.NumVars()]
}

// Row returns the variable part of row r. The slice aliases the tableau.
func (t *Tableau) Row(r int) []float64 {
	return t.T.RawRowView(r)[:t.NumVars()]
}

func (t *Tableau) RHS(r int) float64 {
	_, c := t.T.Dims()
	return t.T.At(r, c-1)
}

// Objective is the current objective value, read from row 0's RHS.
func (t *Tableau) Objective() float64 {
	return t.RHS(0)
}

// Values returns the decision variables of the current basic solution.
func (t *Tableau) Values() []float64 {
	x := make([]float64, t.NumDecision)
	for i, col := range t.Basis {
		if l := t.Labels[col]; l.Kind == Decision {
			x[l.Index-1] = t.RHS(i + 1)
		}
	}
	return x
}

// BasisLabels names the basic variable of each constraint row.
func (t *Tableau) BasisLabels() []Label {
	out := make([]Label, len(t.Basis))
	for i, col := range t.Basis {
		out[i] = t.Labels[col]
	}
	return out
}

// Copy returns a detached copy of the numeric matrix.
func (t *Tableau) Copy() *mat.Dense {
	return mat.DenseCopyOf(t.T)
}

// Pivot makes column c basic in constraint row r: row r is divided by the
// pivot element and column c is eliminated from every other row.
func (t *Tableau) Pivot(r, c int, tol float64) error {
	rows, _ := t.T.Dims()
	if r < 1 || r >= rows || c < 0 || c >= t.NumVars() {
		return errors.Wrapf(ErrPivotRange, "(%d, %d)", r, c)
	}
	pe := t.T.At(r, c)
	if math.Abs(pe) <= tol || math.IsNaN(pe) {
		return errors.Wrapf(ErrDegeneratePivot, "element (%d, %d) = %g", r, c, pe)
	}

	pivotRow := t.T.RawRowView(r)
	floats.Scale(1/pe, pivotRow)
	pivotRow[c] = 1

	for i := range rows {
		if i == r {
			continue
		}
		row := t.T.RawRowView(i)
		f := row[c]
		if f == 0 {
			continue
		}
		floats.AddScaled(row, -f, pivotRow)
		row[c] = 0
	}

	t.Basis[r-1] = c
	return nil
}
