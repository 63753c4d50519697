package confmat

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/scip-dagger/dagger-analysis/analysis"
)

// Cell addresses one (policy, data) entry of the score matrix.
type Cell struct {
	Policy int
	Data   int
}

// FailSet holds the cells whose time or gap was imputed.
type FailSet map[Cell]struct{}

// Add records a failed cell.
func (f FailSet) Add(policy, data int) {
	f[Cell{Policy: policy, Data: data}] = struct{}{}
}

// Has reports whether the cell was imputed.
func (f FailSet) Has(policy, data int) bool {
	_, ok := f[Cell{Policy: policy, Data: data}]
	return ok
}

// Cells returns the failed cells ordered by policy, then data.
func (f FailSet) Cells() []Cell {
	cells := make([]Cell, 0, len(f))
	for c := range f {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Policy != cells[j].Policy {
			return cells[i].Policy < cells[j].Policy
		}
		return cells[i].Data < cells[j].Data
	})
	return cells
}

// Result carries every stage of the score computation.
type Result struct {
	Raw      *Raw
	Time     *mat.Dense // imputed wallclock
	Gap      *mat.Dense // imputed optimality gap
	TimeNorm *mat.Dense
	GapNorm  *mat.Dense
	Combined *mat.Dense // TimeNorm + GapNorm
	Score    *mat.Dense
	Fail     FailSet
}

// Impute replaces every Unknown cell with the maximum Known value of its
// column and records the cell in fail. A column without any Known value
// cannot be imputed and is an error.
func Impute(raw [][]analysis.Value, fail FailSet) (*mat.Dense, error) {
	rows := len(raw)
	if rows == 0 {
		return nil, fmt.Errorf("empty matrix")
	}
	cols := len(raw[0])
	if cols == 0 {
		return nil, fmt.Errorf("empty matrix")
	}
	for i, row := range raw {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d", i, len(row), cols)
		}
	}

	m := mat.NewDense(rows, cols, nil)
	for j := 0; j < cols; j++ {
		colMax, found := 0.0, false
		for i := 0; i < rows; i++ {
			if v, ok := raw[i][j].Get(); ok && (!found || v > colMax) {
				colMax, found = v, true
			}
		}
		if !found {
			return nil, fmt.Errorf("column %d has no defined values to impute from", j)
		}
		for i := 0; i < rows; i++ {
			v, ok := raw[i][j].Get()
			if !ok {
				v = colMax
				fail.Add(i, j)
				logrus.Warnf("cell (%d,%d) imputed with column max %v", i, j, colMax)
			}
			m.Set(i, j, v)
		}
	}
	return m, nil
}

// NormalizeColumns maps each column linearly onto [0, 1]. A constant column
// maps to zeros.
func NormalizeColumns(m mat.Matrix) *mat.Dense {
	rows, cols := m.Dims()
	out := mat.NewDense(rows, cols, nil)
	for j := 0; j < cols; j++ {
		col := mat.Col(nil, j, m)
		lo, hi := floats.Min(col), floats.Max(col)
		scale := hi - lo
		if scale == 0 {
			scale = 1
		}
		for i, v := range col {
			out.Set(i, j, (v-lo)/scale)
		}
	}
	return out
}

// Score converts the combined normalized cost into the comparative score.
// Off-diagonal cells score combined[d,d] / combined[p,d]; failed cells and
// cells with zero combined cost score 0; the diagonal is 1.
func Score(combined mat.Matrix, fail FailSet) *mat.Dense {
	n, _ := combined.Dims()
	s := mat.NewDense(n, n, nil)
	for p := 0; p < n; p++ {
		for d := 0; d < n; d++ {
			switch {
			case p == d:
				s.Set(p, d, 1)
			case fail.Has(p, d):
				s.Set(p, d, 0)
			case combined.At(p, d) == 0:
				logrus.Warnf("cell (%d,%d) has zero combined cost; scored as failed", p, d)
				s.Set(p, d, 0)
			default:
				s.Set(p, d, combined.At(d, d)/combined.At(p, d))
			}
		}
	}
	return s
}

// Compute runs imputation, normalization and scoring over raw measurements.
func Compute(raw *Raw) (*Result, error) {
	res := &Result{Raw: raw, Fail: make(FailSet)}
	var err error
	if res.Time, err = Impute(raw.Time, res.Fail); err != nil {
		return nil, fmt.Errorf("imputing time: %w", err)
	}
	if res.Gap, err = Impute(raw.Gap, res.Fail); err != nil {
		return nil, fmt.Errorf("imputing gap: %w", err)
	}
	if r, c := res.Time.Dims(); r != c {
		return nil, fmt.Errorf("score matrix must be square, got %dx%d", r, c)
	}
	res.TimeNorm = NormalizeColumns(res.Time)
	res.GapNorm = NormalizeColumns(res.Gap)

	rows, cols := res.TimeNorm.Dims()
	res.Combined = mat.NewDense(rows, cols, nil)
	res.Combined.Add(res.TimeNorm, res.GapNorm)

	res.Score = Score(res.Combined, res.Fail)
	return res, nil
}

// Build loads every pair named by cfg and computes the score matrix.
func Build(cfg Config) (*Result, error) {
	raw, err := Load(cfg)
	if err != nil {
		return nil, err
	}
	return Compute(raw)
}
