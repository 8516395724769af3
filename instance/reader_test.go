package instance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"q.log/tableau/model"
	"q.log/tableau/simplex"
)

func TestConstructProblemFromFile(t *testing.T) {
	p, err := NewReader("testdata/example.mps").ConstructProblemFromFile(model.Minimize)
	require.NoError(t, err)

	assert.Equal(t, model.Minimize, p.Mode)
	assert.Equal(t, 3, p.NumCols)
	assert.Equal(t, 7, p.NumRows)
	assert.Equal(t, []float64{1, 2, -1}, mat.Row(nil, 0, p.C))

	assert.Equal(t, []model.Relation{
		model.LessEq,    // LIM1
		model.GreaterEq, // LIM2
		model.Equal,     // MYEQN
		model.GreaterEq, // RNG lower end
		model.LessEq,    // RNG upper end
		model.LessEq,    // X1 <= 4
		model.GreaterEq, // X2 >= 0.5
	}, p.Relations)

	assert.True(t, mat.Equal(mat.NewDense(7, 3, []float64{
		1, 1, 0,
		1, 0, 0,
		0, -1, 1,
		0, 1, 0,
		0, 1, 0,
		1, 0, 0,
		0, 1, 0,
	}), p.A))
	assert.Equal(t, []float64{4, 1, 7, 1, 2, 4, 0.5}, mat.Col(nil, 0, p.B))
}

func TestSolveFromFile(t *testing.T) {
	p, err := NewReader("testdata/example.mps").ConstructProblemFromFile(model.Minimize)
	require.NoError(t, err)

	// x3 = 7 + x2, so the objective is x1 + x2 - 7 with x1 >= 1, x2 >= 1
	res, err := simplex.SolveAuto(p)
	require.NoError(t, err)
	require.Equal(t, simplex.Optimal, res.Status)
	assert.Equal(t, simplex.BigM, res.Method)
	assert.InDelta(t, -5, res.Objective, 1e-6)
	assert.InDeltaSlice(t, []float64{1, 1, 8}, res.Values, 1e-6)
}

func TestConstructProblemMissingFile(t *testing.T) {
	_, err := NewReader("testdata/missing.mps").ConstructProblemFromFile(model.Maximize)
	assert.Error(t, err)
}
