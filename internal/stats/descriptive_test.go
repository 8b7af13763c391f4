package stats

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe_Basic(t *testing.T) {
	d := Describe([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.Equal(t, 8, d.N)
	assert.InDelta(t, 5.0, float64(d.Mean), 1e-9)
	assert.InDelta(t, 2.138, float64(d.StdDev), 1e-3)
	assert.Equal(t, 2.0, float64(d.Min))
	assert.Equal(t, 9.0, float64(d.Max))
	assert.Less(t, float64(d.CILow), float64(d.Mean))
	assert.Greater(t, float64(d.CIHigh), float64(d.Mean))
}

func TestDescribe_SkipsMissing(t *testing.T) {
	d := Describe([]float64{1, math.NaN(), 3})
	assert.Equal(t, 2, d.N)
	assert.InDelta(t, 2.0, float64(d.Mean), 1e-9)
}

func TestDescribe_SingleValueCollapsesInterval(t *testing.T) {
	d := Describe([]float64{4})
	assert.Equal(t, 1, d.N)
	assert.Equal(t, 4.0, float64(d.CILow))
	assert.Equal(t, 4.0, float64(d.CIHigh))
	assert.Equal(t, 0.0, float64(d.StdDev))
}

func TestDescribe_AllMissing(t *testing.T) {
	d := Describe([]float64{math.NaN(), math.NaN()})
	assert.Equal(t, 0, d.N)
	assert.True(t, math.IsNaN(float64(d.Mean)))
}

func TestFloat_JSONNullRoundTrip(t *testing.T) {
	type payload struct {
		A Float `json:"a"`
		B Float `json:"b"`
	}
	out, err := json.Marshal(payload{A: Float(math.NaN()), B: 1.5})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":null,"b":1.5}`, string(out))

	var back payload
	require.NoError(t, json.Unmarshal(out, &back))
	assert.True(t, math.IsNaN(float64(back.A)))
	assert.Equal(t, 1.5, float64(back.B))
}
