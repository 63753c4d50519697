package ttest

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scip-dagger/dagger-analysis/analysis"
	"github.com/scip-dagger/dagger-analysis/internal/testutil"
)

func TestPaired_ConstantShift_MeansAndInfiniteT(t *testing.T) {
	// GIVEN four pairs that all differ by exactly -1
	path := testutil.WriteFile(t, t.TempDir(), "pairs", "1 2\n2 3\n3 4\n4 5\n")
	rows, err := ReadColumns(path)
	require.NoError(t, err)

	// WHEN tested
	res, err := Paired(Column(rows, 0), Column(rows, 1))
	require.NoError(t, err)

	// THEN the means are exact
	assert.Equal(t, 4, res.N)
	assert.Equal(t, 2.5, res.MeanA)
	assert.Equal(t, 3.5, res.MeanB)
	// AND zero within-pair variance gives the limiting t = -Inf, p = 0
	assert.True(t, math.IsInf(res.T, -1), "t = %v", res.T)
	assert.Equal(t, 0.0, res.P)
}

func TestPaired_IdenticalSamples_NaN(t *testing.T) {
	res, err := Paired([]float64{1, 2, 3}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(res.T))
	assert.True(t, math.IsNaN(res.P))
}

func TestPaired_ZeroMeanDifference_PValueOne(t *testing.T) {
	res, err := Paired([]float64{2, 1, 2, 1}, []float64{1, 2, 1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 0, res.T, 1e-12)
	assert.InDelta(t, 1, res.P, 1e-9)
}

func TestPaired_KnownSample(t *testing.T) {
	// differences -1 0 -2 1 -2: mean -0.8, sample variance 1.7
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{2, 2, 5, 3, 7}

	res, err := Paired(a, b)

	require.NoError(t, err)
	assert.Equal(t, 4.0, res.DF)
	testutil.AssertFloat64Equal(t, "mean diff", -0.8, res.MeanDiff, 1e-12)
	testutil.AssertFloat64Equal(t, "t", -0.8/math.Sqrt(1.7/5), res.T, 1e-9)
	assert.Greater(t, res.P, 0.2)
	assert.Less(t, res.P, 0.3)
}

func TestPaired_LargerEffect_SmallerPValue(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6}
	small, err := Paired(a, []float64{1.5, 2.1, 3.4, 4.2, 5.1, 6.6})
	require.NoError(t, err)
	large, err := Paired(a, []float64{3.5, 4.1, 5.4, 6.2, 7.1, 8.6})
	require.NoError(t, err)
	assert.Less(t, large.P, small.P)
}

func TestPaired_InvalidInput(t *testing.T) {
	_, err := Paired([]float64{1, 2}, []float64{1})
	assert.Error(t, err)
	_, err = Paired([]float64{1}, []float64{1})
	assert.Error(t, err)
}

func TestReadColumns_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
	}{
		{"single column", "1\n2\n"},
		{"ragged rows", "1 2\n3 4 5\n"},
		{"non numeric", "1 2\nx 4\n"},
		{"empty", "\n\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := testutil.WriteFile(t, dir, tc.name, tc.content)
			_, err := ReadColumns(path)
			assert.Error(t, err)
		})
	}

	_, err := ReadColumns(dir + "/missing")
	assert.Error(t, err)
}

func TestReadColumns_RaggedRows_Malformed(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "pairs", "1 2\n3 4 5\n")
	_, err := ReadColumns(path)
	assert.ErrorIs(t, err, analysis.ErrMalformedLine)
	assert.Contains(t, err.Error(), "line 2")
}

func TestResultWrite_ShapeMeansStatistic(t *testing.T) {
	res := Result{N: 4, MeanA: 2.5, MeanB: 3.5, MeanDiff: -1, DF: 3, T: math.Inf(-1), P: 0}
	var buf bytes.Buffer
	require.NoError(t, res.Write(&buf, 2))
	assert.Equal(t, "(4, 2)\n2.5 3.5\n-Inf 0\ndf=3 mean_diff=-1\n", buf.String())
}
