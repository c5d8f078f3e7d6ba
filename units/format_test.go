package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		isNaN bool
	}{
		{input: "100", want: 100},
		{input: "  2.5 ", want: 2.5},
		{input: "-40", want: -40},
		{input: "1e3", want: 1000},
		{input: ".5", want: 0.5},
		{input: "", want: 0},
		{input: "   ", want: 0},
		{input: "Infinity", want: math.Inf(1)},
		{input: "-Infinity", want: math.Inf(-1)},
		{input: "abc", isNaN: true},
		{input: "12abc", isNaN: true},
		{input: "inf", isNaN: true},
		{input: "NaN", isNaN: true},
		{input: "1_000", isNaN: true},
		{input: "0x1p4", isNaN: true},
		{input: "1e400", want: math.Inf(1)},
		{input: "-1e400", want: math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseValue(tt.input)
			if tt.isNaN {
				assert.True(t, math.IsNaN(got), "expected NaN, got %v", got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{"integer", 1, "1"},
		{"large integer", 300000, "300000"},
		{"fraction", 2.20462, "2.20462"},
		{"negative", -40, "-40"},
		{"negative zero", math.Copysign(0, -1), "0"},
		{"small fraction", 0.000025, "0.000025"},
		{"below exponent threshold", 0.0000001, "1e-7"},
		{"exponent threshold", 1e21, "1e+21"},
		{"just below exponent threshold", 1e20, "100000000000000000000"},
		{"NaN", math.NaN(), "NaN"},
		{"positive infinity", math.Inf(1), "Infinity"},
		{"negative infinity", math.Inf(-1), "-Infinity"},
		{"float artefact kept", 0.1 + 0.2, "0.30000000000000004"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.input))
		})
	}
}

func TestFormatResult(t *testing.T) {
	assert.Equal(t, "100 cm = 1 m", FormatResult("100", "cm", "m", 1))
	assert.Equal(t, "0 C = 32 F", FormatResult("0", "C", "F", 32))
	assert.Equal(t, "abc kg = NaN lb", FormatResult("abc", "kg", "lb", math.NaN()))
	assert.Equal(t, " 5 m = 5 m", FormatResult(" 5", "m", "m", 5))
}

func TestFormatPassThrough(t *testing.T) {
	assert.Equal(t, "abc m = abc m", FormatPassThrough("abc", "m", "m"))
	assert.Equal(t, "007 C = 007 C", FormatPassThrough("007", "C", "C"))
	assert.Equal(t, " kg =  kg", FormatPassThrough("", "kg", "kg"))
}
