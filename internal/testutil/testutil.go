// Package testutil provides shared test infrastructure for the analysis
// packages: fixture writers for the harness file formats and float
// assertion helpers.
package testutil

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFile writes content to dir/rel, creating parent directories.
func WriteFile(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create fixture dir for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", rel, err)
	}
	return path
}

// ResultLine builds a policy result record with wallclock at token 2, gap at
// token 6 and, when failFlag is non-nil, a fail flag as the 9th token.
func ResultLine(time, gap float64, failFlag *int) string {
	fields := []string{"inst", "0", fmt.Sprint(time), "100", "10", "0.5", fmt.Sprint(gap), "1.0"}
	if failFlag != nil {
		fields = append(fields, fmt.Sprint(*failFlag))
	}
	return strings.Join(fields, " ")
}

// StatsLine builds a baseline solver stats record with wallclock at token 2.
func StatsLine(time float64) string {
	return fmt.Sprintf("total 0 %v 1000 12", time)
}

// Lines joins records with newlines and adds a trailing newline.
func Lines(records ...string) string {
	return strings.Join(records, "\n") + "\n"
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
