package stats

import (
	"bytes"
	"math"
	"strconv"
)

// Float is a float64 that serializes NaN and infinities as JSON null.
// Statistical degeneracies (zero variance, too few cases) are represented
// as NaN throughout the core, and null is the only portable JSON encoding
// for them.
type Float float64

var nullLiteral = []byte("null")

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nullLiteral, nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

func (f *Float) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, nullLiteral) {
		*f = Float(math.NaN())
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*f = Float(v)
	return nil
}
