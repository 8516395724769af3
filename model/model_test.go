package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestFromRows(t *testing.T) {
	p, err := FromRows(Maximize, []float64{3, 2}, [][]float64{{1, 1}, {1, 3}}, []float64{4, 6}, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, p.NumRows)
	assert.Equal(t, 2, p.NumCols)
	assert.Equal(t, []Relation{LessEq, LessEq}, p.Relations)
	assert.True(t, mat.Equal(mat.NewDense(2, 2, []float64{1, 1, 1, 3}), p.A))
	assert.True(t, mat.Equal(mat.NewDense(2, 1, []float64{4, 6}), p.B))
	assert.NoError(t, p.Validate())
}

func TestFromRowsErrors(t *testing.T) {
	tests := []struct {
		name string
		c    []float64
		rows [][]float64
		b    []float64
		rel  []Relation
		want error
	}{
		{"no variables", nil, [][]float64{{1}}, []float64{1}, nil, ErrEmptyProblem},
		{"no rows", []float64{1}, nil, nil, nil, ErrEmptyProblem},
		{"short row", []float64{1, 2}, [][]float64{{1, 1}, {1}}, []float64{1, 2}, nil, ErrShape},
		{"rhs length", []float64{1, 2}, [][]float64{{1, 1}}, []float64{1, 2}, nil, ErrShape},
		{"relation length", []float64{1}, [][]float64{{1}}, []float64{1}, []Relation{LessEq, Equal}, ErrShape},
		{"bad relation", []float64{1}, [][]float64{{1}}, []float64{1}, []Relation{Relation(7)}, ErrRelation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRows(Minimize, tt.c, tt.rows, tt.b, tt.rel)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestInputsAreCopied(t *testing.T) {
	c := []float64{1, 2}
	row := []float64{3, 4}
	p, err := FromRows(Maximize, c, [][]float64{row}, []float64{5}, nil)
	require.NoError(t, err)

	c[0], row[0] = 100, 100
	assert.Equal(t, 1.0, p.C.At(0, 0))
	assert.Equal(t, 3.0, p.A.At(0, 0))
}

func TestMultiplyConstraint(t *testing.T) {
	p, err := FromRows(Minimize, []float64{1, 1}, [][]float64{{1, -2}, {3, 4}}, []float64{2, 5}, []Relation{GreaterEq, Equal})
	require.NoError(t, err)

	require.NoError(t, p.MultiplyConstraint(0, -1))
	assert.Equal(t, []float64{-1, 2}, mat.Row(nil, 0, p.A))
	assert.Equal(t, -2.0, p.B.At(0, 0))
	assert.Equal(t, LessEq, p.Relations[0])

	require.NoError(t, p.MultiplyConstraint(1, -1))
	assert.Equal(t, Equal, p.Relations[1])

	assert.Error(t, p.MultiplyConstraint(2, -1))
}

func TestAddRow(t *testing.T) {
	p, err := FromRows(Maximize, []float64{1, 1}, [][]float64{{1, 0}}, []float64{2}, nil)
	require.NoError(t, err)

	require.NoError(t, p.AddRow([]float64{0, 1}, GreaterEq, 3))
	assert.Equal(t, 2, p.NumRows)
	assert.Equal(t, []float64{0, 1}, mat.Row(nil, 1, p.A))
	assert.Equal(t, 3.0, p.B.At(1, 0))
	assert.Equal(t, []Relation{LessEq, GreaterEq}, p.Relations)
	assert.NoError(t, p.Validate())

	assert.True(t, errors.Is(p.AddRow([]float64{1}, LessEq, 0), ErrShape))
}

func TestClone(t *testing.T) {
	p, err := FromRows(Maximize, []float64{1}, [][]float64{{1}}, []float64{2}, []Relation{GreaterEq})
	require.NoError(t, err)

	q := p.Clone()
	require.NoError(t, q.MultiplyConstraint(0, -1))

	assert.Equal(t, 1.0, p.A.At(0, 0))
	assert.Equal(t, 2.0, p.B.At(0, 0))
	assert.Equal(t, GreaterEq, p.Relations[0])
	assert.True(t, p.Has(GreaterEq))
	assert.False(t, q.Has(GreaterEq))
}

func TestValidate(t *testing.T) {
	var p *Problem
	assert.Equal(t, ErrEmptyProblem, p.Validate())

	p = NewProblem(2, 2)
	p.Relations = p.Relations[:1]
	assert.True(t, errors.Is(p.Validate(), ErrShape))
}

func TestModeComparisons(t *testing.T) {
	const tol = 1e-9

	assert.True(t, Maximize.Optimal(0, tol))
	assert.True(t, Maximize.Optimal(-tol/2, tol))
	assert.False(t, Maximize.Optimal(-1, tol))
	assert.True(t, Minimize.Optimal(-1, tol))
	assert.False(t, Minimize.Optimal(1, tol))

	assert.True(t, Maximize.Better(-3, -2))
	assert.True(t, Minimize.Better(3, 2))

	assert.Equal(t, 1.0, Maximize.Sign())
	assert.Equal(t, -1.0, Minimize.Sign())
}

func TestParse(t *testing.T) {
	m, err := ParseMode("MIN")
	require.NoError(t, err)
	assert.Equal(t, Minimize, m)
	m, err = ParseMode("maximize")
	require.NoError(t, err)
	assert.Equal(t, Maximize, m)
	_, err = ParseMode("sideways")
	assert.Error(t, err)

	assert.Equal(t, ">=", LessEq.Flip().String())
	assert.Equal(t, "=", Equal.Flip().String())
}
