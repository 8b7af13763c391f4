package survey

import (
	"fmt"
	"math"
	"strings"
)

// ScoreSuffix is the naming convention for derived score columns. The
// visualization layer depends on it.
const ScoreSuffix = "_score"

// Frame is a small column-ordered table. Numeric cells use NaN for missing
// values; identifier and timestamp columns are kept as text.
type Frame struct {
	n     int
	order []string
	text  map[string][]string
	nums  map[string][]float64
}

// NewFrame creates an empty frame with n rows.
func NewFrame(n int) *Frame {
	return &Frame{
		n:    n,
		text: map[string][]string{},
		nums: map[string][]float64{},
	}
}

// Len returns the number of rows.
func (f *Frame) Len() int { return f.n }

// Columns returns all column names in insertion order.
func (f *Frame) Columns() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// HasColumn reports whether the frame contains the column.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.text[name]
	if !ok {
		_, ok = f.nums[name]
	}
	return ok
}

// Text returns a text column. The returned slice must not be mutated.
func (f *Frame) Text(name string) ([]string, bool) {
	v, ok := f.text[name]
	return v, ok
}

// Numeric returns a numeric column. The returned slice must not be mutated.
func (f *Frame) Numeric(name string) ([]float64, bool) {
	v, ok := f.nums[name]
	return v, ok
}

// SetText adds or replaces a text column.
func (f *Frame) SetText(name string, values []string) error {
	if len(values) != f.n {
		return fmt.Errorf("column %s: got %d values, want %d", name, len(values), f.n)
	}
	if !f.HasColumn(name) {
		f.order = append(f.order, name)
	}
	delete(f.nums, name)
	f.text[name] = values
	return nil
}

// SetNumeric adds or replaces a numeric column.
func (f *Frame) SetNumeric(name string, values []float64) error {
	if len(values) != f.n {
		return fmt.Errorf("column %s: got %d values, want %d", name, len(values), f.n)
	}
	if !f.HasColumn(name) {
		f.order = append(f.order, name)
	}
	delete(f.text, name)
	f.nums[name] = values
	return nil
}

// SetConstant adds a numeric column with every cell set to v.
func (f *Frame) SetConstant(name string, v float64) {
	values := make([]float64, f.n)
	for i := range values {
		values[i] = v
	}
	_ = f.SetNumeric(name, values)
}

// Clone returns a deep copy. Derived tables are always built on copies so
// no stage mutates another stage's output.
func (f *Frame) Clone() *Frame {
	out := NewFrame(f.n)
	out.order = make([]string, len(f.order))
	copy(out.order, f.order)
	for name, vals := range f.text {
		cp := make([]string, len(vals))
		copy(cp, vals)
		out.text[name] = cp
	}
	for name, vals := range f.nums {
		cp := make([]float64, len(vals))
		copy(cp, vals)
		out.nums[name] = cp
	}
	return out
}

// MissingCount returns the number of NaN cells in a numeric column.
func (f *Frame) MissingCount(name string) int {
	vals, ok := f.nums[name]
	if !ok {
		return 0
	}
	c := 0
	for _, v := range vals {
		if math.IsNaN(v) {
			c++
		}
	}
	return c
}

// ScoreColumns returns the columns named <x>_score, in frame order.
func (f *Frame) ScoreColumns() []string {
	out := make([]string, 0, len(f.order))
	for _, c := range f.order {
		if strings.HasSuffix(c, ScoreSuffix) {
			if _, ok := f.nums[c]; ok {
				out = append(out, c)
			}
		}
	}
	return out
}

// NumericData returns the named numeric columns as a map, sharing the
// underlying slices. Callers treat the result as read-only.
func (f *Frame) NumericData(cols []string) map[string][]float64 {
	out := make(map[string][]float64, len(cols))
	for _, c := range cols {
		if v, ok := f.nums[c]; ok {
			out[c] = v
		}
	}
	return out
}
