package analysis

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scip-dagger/dagger-analysis/internal/testutil"
)

func TestLastLine_MultipleRecords_ReturnsFinalTokens(t *testing.T) {
	// GIVEN a file with three records and trailing blank lines
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "result", "a 1 2\nb 3 4\nc  5\t6\n\n   \n")

	// WHEN the last line is read
	tokens, err := LastLine(path)

	// THEN only the final non-empty record is returned, split on any whitespace
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "5", "6"}, tokens)
}

func TestLastLine_MissingFile_ErrorNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "stats")
	_, err := LastLine(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLastLine_EmptyFile_Malformed(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "empty", "\n\n")
	_, err := LastLine(path)
	assert.True(t, errors.Is(err, ErrMalformedLine), "got %v", err)
}

func TestFloatAt_OutOfRangeAndNonNumeric(t *testing.T) {
	tokens := []string{"x", "1.5", "abc"}

	v, err := FloatAt(tokens, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	_, err = FloatAt(tokens, 2)
	assert.ErrorIs(t, err, ErrMalformedLine)

	_, err = FloatAt(tokens, 6)
	assert.ErrorIs(t, err, ErrMalformedLine)
}

func TestParseFloats_AllNumeric(t *testing.T) {
	got, err := ParseFloats([]string{"1", "-2.5", "3e2"})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -2.5, 300}, got)

	_, err = ParseFloats([]string{"1", "nan?"})
	assert.ErrorIs(t, err, ErrMalformedLine)
}

func TestValue_KnownAndUnknown(t *testing.T) {
	v, ok := Known(2.5).Get()
	assert.True(t, ok)
	assert.Equal(t, 2.5, v)
	assert.Equal(t, "2.5", Known(2.5).String())

	var zero Value
	assert.False(t, zero.IsKnown())
	assert.Equal(t, Unknown, zero)
	assert.Equal(t, "?", Unknown.String())
}
