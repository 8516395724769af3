package model

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrShape        = errors.New("model: shape mismatch")
	ErrEmptyProblem = errors.New("model: problem has no variables or no constraints")
	ErrRelation     = errors.New("model: unknown relation")
)

// Problem is a linear program over non-negative variables:
// optimize C*x subject to A*x (Relations) B.
type Problem struct {
	Mode Mode

	//C objective function coefficients
	C *mat.Dense

	//A constraints matrix
	A *mat.Dense

	//B constraints rhs
	B *mat.Dense

	//Relations one tag per constraint row
	Relations []Relation

	NumRows int
	NumCols int
}

// NewProblem returns an all-zero problem with every row tagged <=.
// Like mat.NewDense it panics on non-positive dimensions.
func NewProblem(numRows, numCols int) *Problem {
	return &Problem{
		C:         mat.NewDense(1, numCols, nil),
		A:         mat.NewDense(numRows, numCols, nil),
		B:         mat.NewDense(numRows, 1, nil),
		Relations: make([]Relation, numRows),
		NumRows:   numRows,
		NumCols:   numCols,
	}
}

// FromRows builds a problem from row-wise data. A nil rel tags every row <=.
func FromRows(mode Mode, c []float64, rows [][]float64, b []float64, rel []Relation) (*Problem, error) {
	if len(c) == 0 || len(rows) == 0 {
		return nil, ErrEmptyProblem
	}

	p := NewProblem(len(rows), len(c))
	p.Mode = mode
	if err := p.SetC(c); err != nil {
		return nil, err
	}

	aVec := make([]float64, 0, len(rows)*len(c))
	for i, r := range rows {
		if len(r) != len(c) {
			return nil, errors.Wrapf(ErrShape, "row %d has %d coefficients, want %d", i+1, len(r), len(c))
		}
		aVec = append(aVec, r...)
	}
	if err := p.SetA(aVec); err != nil {
		return nil, err
	}
	if err := p.SetB(b); err != nil {
		return nil, err
	}
	if rel != nil {
		if err := p.SetRelations(rel); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func (p *Problem) SetC(cVec []float64) error {
	if len(cVec) != p.NumCols {
		return errors.Wrapf(ErrShape, "mismatch number of variables: got %d, want %d", len(cVec), p.NumCols)
	}

	p.C = mat.NewDense(1, p.NumCols, append([]float64(nil), cVec...))

	return nil
}

func (p *Problem) SetA(aVec []float64) error {
	if len(aVec) != p.NumCols*p.NumRows {
		return errors.Wrapf(ErrShape, "mismatch number of variables and/or constraints: got %d entries, want %dx%d", len(aVec), p.NumRows, p.NumCols)
	}

	p.A = mat.NewDense(p.NumRows, p.NumCols, append([]float64(nil), aVec...))

	return nil
}

func (p *Problem) SetB(bVec []float64) error {
	if len(bVec) != p.NumRows {
		return errors.Wrapf(ErrShape, "mismatch number of constraints: got %d, want %d", len(bVec), p.NumRows)
	}

	p.B = mat.NewDense(p.NumRows, 1, append([]float64(nil), bVec...))

	return nil
}

func (p *Problem) SetRelations(rel []Relation) error {
	if len(rel) != p.NumRows {
		return errors.Wrapf(ErrShape, "mismatch number of relations: got %d, want %d", len(rel), p.NumRows)
	}
	for i, r := range rel {
		if r < LessEq || r > Equal {
			return errors.Wrapf(ErrRelation, "row %d: %d", i+1, int(r))
		}
	}

	p.Relations = append([]Relation(nil), rel...)

	return nil
}

// AddRow appends a constraint row.
func (p *Problem) AddRow(rVec []float64, rel Relation, rhs float64) error {
	if len(rVec) != p.NumCols {
		return errors.Wrap(ErrShape, "mismatch number of columns, i.e. wrong len of rVec")
	}

	p.A = mat.DenseCopyOf(p.A.Grow(1, 0))
	p.A.SetRow(p.NumRows, rVec)

	p.B = mat.DenseCopyOf(p.B.Grow(1, 0))
	p.B.Set(p.NumRows, 0, rhs)

	p.Relations = append(p.Relations, rel)

	p.NumRows++
	return nil
}

// MultiplyConstraint scales a row and its rhs by mul, flipping the
// relation when mul is negative.
func (p *Problem) MultiplyConstraint(row int, mul float64) error {
	if row < 0 || row >= p.NumRows {
		return errors.Errorf("row %d does not exist", row)
	}

	for col := range p.NumCols {
		p.A.Set(row, col, p.A.At(row, col)*mul)
	}
	p.B.Set(row, 0, p.B.At(row, 0)*mul)
	if mul < 0 {
		p.Relations[row] = p.Relations[row].Flip()
	}
	return nil
}

// Validate checks that every component agrees with NumRows and NumCols.
func (p *Problem) Validate() error {
	if p == nil || p.NumRows <= 0 || p.NumCols <= 0 || p.C == nil || p.A == nil || p.B == nil {
		return ErrEmptyProblem
	}
	if r, c := p.C.Dims(); r != 1 || c != p.NumCols {
		return errors.Wrapf(ErrShape, "objective is %dx%d, want 1x%d", r, c, p.NumCols)
	}
	if r, c := p.A.Dims(); r != p.NumRows || c != p.NumCols {
		return errors.Wrapf(ErrShape, "constraint matrix is %dx%d, want %dx%d", r, c, p.NumRows, p.NumCols)
	}
	if r, c := p.B.Dims(); r != p.NumRows || c != 1 {
		return errors.Wrapf(ErrShape, "rhs is %dx%d, want %dx1", r, c, p.NumRows)
	}
	if len(p.Relations) != p.NumRows {
		return errors.Wrapf(ErrShape, "%d relations for %d rows", len(p.Relations), p.NumRows)
	}
	return nil
}

// Clone returns a deep copy so solvers never touch the caller's data.
func (p *Problem) Clone() *Problem {
	return &Problem{
		Mode:      p.Mode,
		C:         mat.DenseCopyOf(p.C),
		A:         mat.DenseCopyOf(p.A),
		B:         mat.DenseCopyOf(p.B),
		Relations: append([]Relation(nil), p.Relations...),
		NumRows:   p.NumRows,
		NumCols:   p.NumCols,
	}
}

// Has reports whether any row carries the relation r.
func (p *Problem) Has(r Relation) bool {
	for _, rel := range p.Relations {
		if rel == r {
			return true
		}
	}
	return false
}

func (p *Problem) PrintC() {
	caux := mat.Formatted(p.C, mat.Prefix("    "), mat.Squeeze())
	fmt.Printf("%v c = %v\n", p.Mode, caux)
}

func (p *Problem) PrintA() {
	caux := mat.Formatted(p.A, mat.Prefix("    "), mat.Squeeze())
	fmt.Printf("A = %v\n", caux)
	fmt.Printf("    %v\n", p.Relations)
}

func (p *Problem) PrintB() {
	caux := mat.Formatted(p.B, mat.Prefix("    "), mat.Squeeze())
	fmt.Printf("b = %v\n", caux)
}
