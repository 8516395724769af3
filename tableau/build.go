package tableau

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"q.log/tableau/model"
)

// ErrBigM is returned when the penalty magnitude is not positive.
var ErrBigM = errors.New("tableau: big-M penalty must be positive")

// Standard builds the tableau of p with every row read as <=, one slack
// per row forming the initial basis. Negative right-hand sides are kept.
func Standard(p *model.Problem) (*Tableau, error) {
	if err := p.Validate(); err != nil {
		return nil, errors.Wrap(err, "standard tableau")
	}
	n, m := p.NumCols, p.NumRows

	labels := make([]Label, 0, n+m+2)
	for j := range n {
		labels = append(labels, Label{Kind: Decision, Index: j + 1})
	}
	for i := range m {
		labels = append(labels, Label{Kind: Slack, Index: i + 1})
	}
	labels = append(labels, Label{Kind: ObjectiveMarker}, Label{Kind: RHS})

	cols := len(labels)
	T := mat.NewDense(m+1, cols, nil)
	basis := make([]int, m)

	for j := range n {
		T.Set(0, j, -p.C.At(0, j))
	}
	T.Set(0, cols-2, 1)

	for i := range m {
		for j := range n {
			T.Set(i+1, j, p.A.At(i, j))
		}
		T.Set(i+1, n+i, 1)
		T.Set(i+1, cols-1, p.B.At(i, 0))
		basis[i] = n + i
	}

	return &Tableau{
		T:           T,
		Labels:      labels,
		Basis:       basis,
		Mode:        p.Mode,
		NumDecision: n,
	}, nil
}

// Mixed builds the Big-M tableau of p. Rows with a negative rhs are
// negated first. A <= row gets a slack, a >= row a surplus slack and an
// artificial, an = row an artificial. Artificials start basic and are
// penalised by bigM in row 0, which is then reduced so that every basic
// column is a unit vector.
func Mixed(p *model.Problem, bigM float64) (*Tableau, error) {
	if err := p.Validate(); err != nil {
		return nil, errors.Wrap(err, "big-M tableau")
	}
	if !(bigM > 0) {
		return nil, errors.Wrapf(ErrBigM, "got %g", bigM)
	}

	q := p.Clone()
	for r := range q.NumRows {
		if q.B.At(r, 0) < 0 {
			if err := q.MultiplyConstraint(r, -1); err != nil {
				return nil, err
			}
		}
	}

	n, m := q.NumCols, q.NumRows
	var numSlack, numArt int
	for _, rel := range q.Relations {
		if rel != model.Equal {
			numSlack++
		}
		if rel != model.LessEq {
			numArt++
		}
	}

	labels := make([]Label, 0, n+numSlack+numArt+2)
	for j := range n {
		labels = append(labels, Label{Kind: Decision, Index: j + 1})
	}
	for k := range numSlack {
		labels = append(labels, Label{Kind: Slack, Index: k + 1})
	}
	for k := range numArt {
		labels = append(labels, Label{Kind: Artificial, Index: k + 1})
	}
	labels = append(labels, Label{Kind: ObjectiveMarker}, Label{Kind: RHS})

	cols := len(labels)
	T := mat.NewDense(m+1, cols, nil)
	basis := make([]int, m)

	for j := range n {
		T.Set(0, j, -q.C.At(0, j))
	}
	T.Set(0, cols-2, 1)

	slackCol, artCol := n, n+numSlack
	var artRows []int
	for i, rel := range q.Relations {
		row := i + 1
		for j := range n {
			T.Set(row, j, q.A.At(i, j))
		}
		T.Set(row, cols-1, q.B.At(i, 0))

		switch rel {
		case model.LessEq:
			T.Set(row, slackCol, 1)
			basis[i] = slackCol
			slackCol++
		case model.GreaterEq:
			T.Set(row, slackCol, -1)
			slackCol++
			fallthrough
		case model.Equal:
			T.Set(row, artCol, 1)
			T.Set(0, artCol, q.Mode.Sign()*bigM)
			basis[i] = artCol
			artCol++
			artRows = append(artRows, row)
		}
	}

	// maximize subtracts M*row, minimize adds it
	penalty := -q.Mode.Sign() * bigM
	obj := T.RawRowView(0)
	for _, row := range artRows {
		floats.AddScaled(obj, penalty, T.RawRowView(row))
	}

	return &Tableau{
		T:           T,
		Labels:      labels,
		Basis:       basis,
		Mode:        q.Mode,
		NumDecision: n,
	}, nil
}

// ArtificialInBasis returns the rows whose basic variable is artificial
// with a value above tol.
func (t *Tableau) ArtificialInBasis(tol float64) []int {
	var rows []int
	for i, col := range t.Basis {
		if t.Labels[col].Kind == Artificial && t.RHS(i+1) > tol {
			rows = append(rows, i+1)
		}
	}
	return rows
}

// PhaseOne returns a copy of t whose objective minimizes the sum of the
// artificial variables, reduced against the current basis.
func (t *Tableau) PhaseOne() *Tableau {
	T := t.Copy()
	_, cols := T.Dims()
	obj := T.RawRowView(0)
	for j := range obj {
		obj[j] = 0
	}
	obj[cols-2] = 1
	for j, l := range t.Labels {
		if l.Kind == Artificial {
			obj[j] = -1
		}
	}
	for i, col := range t.Basis {
		if t.Labels[col].Kind == Artificial {
			floats.AddScaled(obj, 1, T.RawRowView(i+1))
		}
	}

	return &Tableau{
		T:           T,
		Labels:      append([]Label(nil), t.Labels...),
		Basis:       append([]int(nil), t.Basis...),
		Mode:        model.Minimize,
		NumDecision: t.NumDecision,
	}
}
