package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wxconv/units"
)

func TestNewConverter(t *testing.T) {
	c := NewConverter()

	require.Len(t, c.Forms, 3)
	assert.Equal(t, units.Length, c.Forms[0].Category)
	assert.Equal(t, units.Weight, c.Forms[1].Category)
	assert.Equal(t, units.Temperature, c.Forms[2].Category)

	assert.Equal(t, 0, c.Active())
	assert.Equal(t, []int{0}, c.VisibleForms())
	assert.False(t, c.Result.Visible)

	assert.Equal(t, "cm", c.Forms[0].From)
	assert.Equal(t, "m", c.Forms[0].To)
	assert.Equal(t, "kg", c.Forms[1].From)
	assert.Equal(t, "lb", c.Forms[1].To)
	assert.Equal(t, "C", c.Forms[2].From)
	assert.Equal(t, "F", c.Forms[2].To)
	assert.Equal(t, "length-form", c.Forms[0].ID())
}

func TestSelectShowsExactlyOneForm(t *testing.T) {
	c := NewConverter()

	for _, seq := range [][]int{{1}, {2, 0}, {0, 0}, {2, 1, 2}} {
		for _, i := range seq {
			c.Select(i)
			assert.Equal(t, []int{i}, c.VisibleForms())
			assert.Equal(t, i, c.Active())
		}
	}

	c.Select(7)
	assert.Equal(t, 2, c.Active(), "out of range selection is ignored")
}

func TestSelectLeavesResultPanel(t *testing.T) {
	c := NewConverter()
	c.SetValue(0, "100")
	c.Submit(0)

	c.Select(1)
	assert.True(t, c.Result.Visible)
	assert.Equal(t, "100 cm = 1 m", c.Result.Value)
	assert.Equal(t, []int{1}, c.VisibleForms())
}

func TestSubmit(t *testing.T) {
	tests := []struct {
		name  string
		index int
		value string
		from  string
		to    string
		want  string
	}{
		{"length", 0, "100", "cm", "m", "100 cm = 1 m"},
		{"weight", 1, "1", "kg", "lb", "1 kg = 2.20462 lb"},
		{"temperature", 2, "100", "C", "F", "100 C = 212 F"},
		{"identity", 0, "5", "m", "m", "5 m = 5 m"},
		{"identity keeps text", 0, "abc", "m", "m", "abc m = abc m"},
		{"identity keeps exponent", 0, "1e3", "m", "m", "1e3 m = 1e3 m"},
		{"identity keeps leading zeros", 2, "007", "C", "C", "007 C = 007 C"},
		{"identity empty", 1, "", "lb", "lb", " lb =  lb"},
		{"empty value", 1, "", "kg", "lb", " kg = 0 lb"},
		{"unparsable", 2, "abc", "C", "F", "abc C = NaN F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConverter()
			c.Select(tt.index)
			c.SetValue(tt.index, tt.value)
			c.Forms[tt.index].From = tt.from
			c.Forms[tt.index].To = tt.to

			conv := c.Submit(tt.index)

			assert.Equal(t, tt.want, conv.Text)
			assert.True(t, c.Result.Visible)
			assert.Equal(t, ResultLabel, c.Result.Label)
			assert.Equal(t, tt.want, c.Result.Value)
			assert.Empty(t, c.VisibleForms(), "active form hidden after submit")
			assert.Equal(t, tt.index, c.Active())
		})
	}
}

func TestSubmitOutOfRange(t *testing.T) {
	c := NewConverter()

	assert.NotPanics(t, func() {
		assert.Equal(t, Conversion{}, c.Submit(-1))
		assert.Equal(t, Conversion{}, c.Submit(len(c.Forms)))
	})
	assert.False(t, c.Result.Visible)
	assert.Equal(t, []int{0}, c.VisibleForms())
}

func TestFormPassThrough(t *testing.T) {
	c := NewConverter()
	assert.False(t, c.Forms[0].PassThrough())

	c.Forms[0].To = "cm"
	assert.True(t, c.Forms[0].PassThrough())

	for i, f := range c.Forms {
		assert.Equal(t, f.Category, units.CategoryFromID(f.ID()), "form %d", i)
	}
}

func TestSubmitKeepsFieldValues(t *testing.T) {
	c := NewConverter()
	c.SetValue(0, "250")
	c.SubmitActive()

	assert.Equal(t, "250", c.Forms[0].Value)
}

func TestResubmitOverwritesResult(t *testing.T) {
	c := NewConverter()
	c.SetValue(0, "100")
	c.Submit(0)
	c.SetValue(0, "1000")
	c.Submit(0)

	assert.Equal(t, "1000 cm = 10 m", c.ResultText())
}

func TestReset(t *testing.T) {
	c := NewConverter()
	c.Select(2)
	c.SetValue(2, "37")
	c.CycleUnit(2, FromField, 1)
	c.SetValue(0, "12")
	c.Submit(2)

	c.Reset()

	assert.False(t, c.Result.Visible)
	assert.Equal(t, []int{2}, c.VisibleForms())
	for _, f := range c.Forms {
		assert.Empty(t, f.Value, "form %s cleared", f.Category)
	}
	assert.Equal(t, "C", c.Forms[2].From)
	assert.Equal(t, "F", c.Forms[2].To)
}

func TestResetWithoutSubmit(t *testing.T) {
	c := NewConverter()
	c.Select(1)
	c.Reset()

	assert.False(t, c.Result.Visible)
	assert.Equal(t, []int{1}, c.VisibleForms())
}

func TestCycleUnit(t *testing.T) {
	c := NewConverter()

	c.CycleUnit(0, FromField, 1)
	assert.Equal(t, "m", c.Forms[0].From)
	c.CycleUnit(0, FromField, 1)
	assert.Equal(t, "km", c.Forms[0].From)
	c.CycleUnit(0, FromField, 1)
	assert.Equal(t, "cm", c.Forms[0].From, "wraps forward")

	c.CycleUnit(0, ToField, -1)
	assert.Equal(t, "cm", c.Forms[0].To)
	c.CycleUnit(0, ToField, -1)
	assert.Equal(t, "km", c.Forms[0].To, "wraps backward")

	c.CycleUnit(1, ToField, 3)
	assert.Equal(t, "kg", c.Forms[1].To)
}
