package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerce(t *testing.T) {
	value := 12.5

	tests := []struct {
		name     string
		input    interface{}
		fallback float64
		expected float64
	}{
		{"float64", 42.5, 0, 42.5},
		{"int", 7, 0, 7},
		{"int64", int64(9), 0, 9},
		{"nil uses fallback", nil, 3, 3},
		{"nil pointer uses fallback", (*float64)(nil), 3, 3},
		{"pointer", &value, 0, 12.5},
		{"numeric string", "19.99", 0, 19.99},
		{"string with spaces", "  19.99 ", 0, 19.99},
		{"garbage string uses fallback", "abc", 5, 5},
		{"NaN uses fallback", math.NaN(), 1, 1},
		{"Inf uses fallback", math.Inf(1), 1, 1},
		{"bytes", []byte("2.5"), 0, 2.5},
		{"unsupported type uses fallback", struct{}{}, 8, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Coerce(tt.input, tt.fallback))
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 19.99, Round2(19.994))
	assert.Equal(t, 20.0, Round2(19.995))
	assert.Equal(t, -3.33, Round2(-3.333))
	assert.Equal(t, 0.0, Round2(math.NaN()))
	assert.Equal(t, 0.0, Round2(math.Inf(-1)))
}

func TestSafeDiv(t *testing.T) {
	assert.Equal(t, 2.5, SafeDiv(5, 2))
	assert.Equal(t, 0.0, SafeDiv(5, 0))
	assert.Equal(t, 0.0, SafeDiv(0, 0))
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		expected float64
	}{
		{"growth", 150, 100, 50},
		{"decline", 80, 100, -20},
		{"from zero to positive is 100", 50, 0, 100},
		{"zero to zero is no change", 0, 0, 0},
		{"to zero is full decline", 0, 100, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, PercentChange(tt.current, tt.previous), 1e-9)
		})
	}
}
