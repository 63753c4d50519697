// Package ttest runs a paired t-test over the first two columns of a numeric
// text file.
package ttest

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/scip-dagger/dagger-analysis/analysis"
)

// ReadColumns reads whitespace-separated rows of floats. Every row must have
// the same width, at least two. Blank lines are skipped.
func ReadColumns(path string) ([][]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logrus.Warnf("closing %s: %v", path, closeErr)
		}
	}()

	var rows [][]float64
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		row, err := analysis.ParseFloats(fields)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, lineNo, err)
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("%s line %d: %w: need at least 2 columns, got %d", path, lineNo, analysis.ErrMalformedLine, len(row))
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%s line %d: %w: %d columns, previous rows have %d", path, lineNo, analysis.ErrMalformedLine, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}
	return rows, nil
}

// Column extracts column j of rows.
func Column(rows [][]float64, j int) []float64 {
	col := make([]float64, len(rows))
	for i, row := range rows {
		col[i] = row[j]
	}
	return col
}

// Result is the outcome of a paired t-test.
type Result struct {
	N        int
	MeanA    float64
	MeanB    float64
	MeanDiff float64 // mean of a[i] - b[i]
	DF       float64
	T        float64
	P        float64 // two-sided
}

// Paired tests the null hypothesis that a and b have equal means.
//
// With zero variance among the differences, T is ±Inf and P is 0 when the
// mean difference is non-zero, and both are NaN when every difference is zero.
func Paired(a, b []float64) (Result, error) {
	if len(a) != len(b) {
		return Result{}, fmt.Errorf("mismatched sample lengths: %d and %d", len(a), len(b))
	}
	n := len(a)
	if n < 2 {
		return Result{}, fmt.Errorf("need at least 2 pairs, got %d", n)
	}

	diff := make([]float64, n)
	for i := range a {
		diff[i] = a[i] - b[i]
	}
	meanDiff, variance := stat.MeanVariance(diff, nil)

	res := Result{
		N:        n,
		MeanA:    stat.Mean(a, nil),
		MeanB:    stat.Mean(b, nil),
		MeanDiff: meanDiff,
		DF:       float64(n - 1),
	}
	if variance == 0 {
		if meanDiff == 0 {
			res.T, res.P = math.NaN(), math.NaN()
		} else {
			res.T, res.P = math.Inf(sign(meanDiff)), 0
		}
		logrus.Warnf("zero variance among %d paired differences; t = %v", n, res.T)
		return res, nil
	}

	res.T = meanDiff / math.Sqrt(variance/float64(n))
	tdist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: res.DF}
	res.P = 2 * tdist.CDF(-math.Abs(res.T))
	return res, nil
}

func sign(x float64) int {
	if x < 0 {
		return -1
	}
	return 1
}

// Write prints the sample shape, the two means, then t and p.
func (r Result) Write(w io.Writer, cols int) error {
	_, err := fmt.Fprintf(w, "(%d, %d)\n%v %v\n%v %v\ndf=%v mean_diff=%v\n",
		r.N, cols, r.MeanA, r.MeanB, r.T, r.P, r.DF, r.MeanDiff)
	return err
}
