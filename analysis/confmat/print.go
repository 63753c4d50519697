package confmat

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"
)

// Print writes the intermediate and final matrices, rows indexed by policy
// and columns by test dataset.
func (r *Result) Print(w io.Writer, labels []string) {
	printMatrix(w, "time", r.TimeNorm)
	printMatrix(w, "gap", r.GapNorm)
	printMatrix(w, "time+gap", r.Combined)
	printMatrix(w, "score", r.Score)

	if len(r.Fail) == 0 {
		return
	}
	fmt.Fprintln(w, "failed")
	for _, c := range r.Fail.Cells() {
		fmt.Fprintf(w, "  policy=%s data=%s\n", label(labels, c.Policy), label(labels, c.Data))
	}
}

func printMatrix(w io.Writer, name string, m mat.Matrix) {
	fmt.Fprintln(w, name)
	fmt.Fprintf(w, "%.4f\n", mat.Formatted(m, mat.Squeeze()))
}

func label(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return fmt.Sprint(i)
}
