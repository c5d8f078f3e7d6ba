package units

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseValue coerces a form field to a number. Surrounding whitespace is
// ignored, an empty field is 0 and anything that is not a numeric literal
// is NaN. NaN is returned, never rejected.
func ParseValue(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	// strconv accepts spellings like "inf", "nan", "0x1p4" and "1_000"
	// that a numeric field does not
	lower := strings.ToLower(s)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") ||
		strings.Contains(lower, "x") || strings.Contains(lower, "_") {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		// overflow saturates to ±Inf
		return f
	}
	if err != nil {
		return math.NaN()
	}
	return f
}

// FormatNumber renders a number the way it is displayed in a result:
// shortest round-trip digits, exponent notation below 1e-6 and from 1e21.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		return trimExponent(strconv.FormatFloat(f, 'e', -1, 64))
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// trimExponent turns "1e-07" into "1e-7"
func trimExponent(s string) string {
	mantissa, exp, ok := strings.Cut(s, "e")
	if !ok {
		return s
	}
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}

// FormatResult builds "<value> <from> = <result> <to>". value is the raw
// field text as typed.
func FormatResult(value, from, to string, result float64) string {
	return value + " " + from + " = " + FormatNumber(result) + " " + to
}

// FormatPassThrough is FormatResult for a pair without a formula: the
// field text is echoed on both sides, uncoerced.
func FormatPassThrough(value, from, to string) string {
	return value + " " + from + " = " + value + " " + to
}
