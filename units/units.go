package units

import (
	"strings"
)

// Category identifies one conversion form and its unit vocabulary
type Category string

const (
	Length      Category = "length"
	Weight      Category = "weight"
	Temperature Category = "temperature"
)

// Func converts a value from one unit to another
type Func func(value float64) float64

type pair struct {
	from string
	to   string
}

// categoryOrder is the tab order; forms are built 1:1 from it
var categoryOrder = []Category{Length, Weight, Temperature}

var vocabulary = map[Category][]string{
	Length:      {"cm", "m", "km"},
	Weight:      {"kg", "lb"},
	Temperature: {"C", "F"},
}

const poundsPerKilogram = 2.20462

// table holds every supported conversion. Pairs that are not listed here
// (same-unit pairs included) convert to the input value unchanged.
var table = map[Category]map[pair]Func{
	Length: {
		{"cm", "m"}:  func(v float64) float64 { return v / 100 },
		{"m", "cm"}:  func(v float64) float64 { return v * 100 },
		{"cm", "km"}: func(v float64) float64 { return v / 100000 },
		{"km", "cm"}: func(v float64) float64 { return v * 100000 },
		{"m", "km"}:  func(v float64) float64 { return v / 1000 },
		{"km", "m"}:  func(v float64) float64 { return v * 1000 },
	},
	Weight: {
		{"kg", "lb"}: func(v float64) float64 { return v * poundsPerKilogram },
		{"lb", "kg"}: func(v float64) float64 { return v / poundsPerKilogram },
	},
	Temperature: {
		{"C", "F"}: func(v float64) float64 { return v*1.8 + 32 },
		{"F", "C"}: func(v float64) float64 { return (v - 32) / 1.8 },
	},
}

// Categories returns the categories in tab order
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// UnitsFor returns the unit vocabulary offered by a category's form
func UnitsFor(c Category) []string {
	units := vocabulary[c]
	out := make([]string, len(units))
	copy(out, units)
	return out
}

// Convert looks up the (from, to) pair for the category and applies it.
// Unknown categories and untabulated pairs return value unchanged.
func Convert(c Category, value float64, from, to string) float64 {
	if fn, ok := lookup(c, from, to); ok {
		return fn(value)
	}
	return value
}

// Supported reports whether the pair has an explicit formula
func Supported(c Category, from, to string) bool {
	_, ok := lookup(c, from, to)
	return ok
}

func lookup(c Category, from, to string) (Func, bool) {
	pairs, ok := table[c]
	if !ok {
		return nil, false
	}
	fn, ok := pairs[pair{from: from, to: to}]
	return fn, ok
}

// FormID returns the form identifier of a category ("length-form")
func FormID(c Category) string {
	return string(c) + "-form"
}

// CategoryFromID derives the category from a form or field identifier by
// taking the first token of the id split on "-"
func CategoryFromID(id string) Category {
	token, _, _ := strings.Cut(id, "-")
	return Category(token)
}
