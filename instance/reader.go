package instance

import (
	"math"
	"runtime"

	"github.com/lukpank/go-glpk/glpk"
	"github.com/pkg/errors"
	"q.log/tableau/model"
)

// Reader reads a free-format mps file to construct a problem
type Reader struct {
	filename string
}

func NewReader(filename string) *Reader {
	return &Reader{
		filename: filename,
	}
}

type row struct {
	coefs []float64
	rel   model.Relation
	rhs   float64
}

// ConstructProblemFromFile returns the problem stored in the file. Ranged
// rows become a >= and a <= row; finite column bounds other than x >= 0
// become extra rows.
func (r *Reader) ConstructProblemFromFile(mode model.Mode) (*model.Problem, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	lp := glpk.New()
	defer lp.Delete()
	if err := lp.ReadMPS(glpk.MPS_FILE, nil, r.filename); err != nil {
		return nil, errors.Wrapf(err, "read mps %s", r.filename)
	}

	numCols := lp.NumCols()

	//populate obj function
	cVec := make([]float64, numCols)
	for c := range numCols {
		cVec[c] = lp.ObjCoef(c + 1)
	}

	//populate constraints
	var rows []row
	for i := 1; i <= lp.NumRows(); i++ {
		rowVec := make([]float64, numCols)
		idxs, vals := lp.MatRow(i)
		for k, v := range idxs {
			if v == 0 {
				continue
			}
			rowVec[v-1] = vals[k]
		}

		lb, ub := lp.RowLB(i), lp.RowUB(i)
		switch {
		case lb == -math.MaxFloat64 && ub == math.MaxFloat64:
			// free row, no constraint
		case lb == -math.MaxFloat64:
			rows = append(rows, row{rowVec, model.LessEq, ub})
		case ub == math.MaxFloat64:
			rows = append(rows, row{rowVec, model.GreaterEq, lb})
		case lb == ub:
			rows = append(rows, row{rowVec, model.Equal, lb})
		default:
			upper := append([]float64(nil), rowVec...)
			rows = append(rows, row{rowVec, model.GreaterEq, lb}, row{upper, model.LessEq, ub})
		}
	}

	aRows := make([][]float64, len(rows))
	bVec := make([]float64, len(rows))
	rel := make([]model.Relation, len(rows))
	for i, rw := range rows {
		aRows[i], bVec[i], rel[i] = rw.coefs, rw.rhs, rw.rel
	}

	p, err := model.FromRows(mode, cVec, aRows, bVec, rel)
	if err != nil {
		return nil, errors.Wrapf(err, "build problem from %s", r.filename)
	}

	//column bounds become unit rows
	for c := range numCols {
		lb, ub := lp.ColLB(c+1), lp.ColUB(c+1)
		if lb > 0 && lb != math.MaxFloat64 {
			if err := p.AddRow(unitRow(numCols, c), model.GreaterEq, lb); err != nil {
				return nil, err
			}
		}
		if ub != math.MaxFloat64 {
			if err := p.AddRow(unitRow(numCols, c), model.LessEq, ub); err != nil {
				return nil, err
			}
		}
	}
	return p, nil
}

func unitRow(n, c int) []float64 {
	rVec := make([]float64, n)
	rVec[c] = 1
	return rVec
}
