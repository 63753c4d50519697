package analysis

import "strconv"

// Value is a measurement that is either Known or Unknown.
// The zero value is Unknown.
type Value struct {
	v     float64
	known bool
}

// Unknown marks a missing measurement (failed run, or a run the baseline beat).
var Unknown = Value{}

// Known wraps a defined measurement.
func Known(v float64) Value {
	return Value{v: v, known: true}
}

// Get returns the wrapped float and whether it is defined.
func (x Value) Get() (float64, bool) {
	return x.v, x.known
}

// IsKnown reports whether the value is defined.
func (x Value) IsKnown() bool {
	return x.known
}

// String renders Unknown as "?".
func (x Value) String() string {
	if !x.known {
		return "?"
	}
	return strconv.FormatFloat(x.v, 'g', -1, 64)
}
