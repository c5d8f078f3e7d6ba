package model

import (
	"wxconv/units"
)

// ResultLabel is shown above every conversion result
const ResultLabel = "Result of calculation:"

// UnitField selects one of a form's two unit fields
type UnitField int

const (
	FromField UnitField = iota
	ToField
)

// Form is one category's input panel
type Form struct {
	id       string
	Category units.Category
	Value    string // raw text of the <category>-convert field
	From     string
	To       string
	Visible  bool
}

// ID returns the form identifier ("length-form")
func (f Form) ID() string {
	return f.id
}

// newForm builds the form with the given id; its category is the first
// token of the id
func newForm(id string) Form {
	f := Form{id: id, Category: units.CategoryFromID(id)}
	f.clear()
	return f
}

// PassThrough reports whether the selected pair has no formula, in which
// case submitting echoes the field text
func (f Form) PassThrough() bool {
	return !units.Supported(f.Category, f.From, f.To)
}

func (f *Form) clear() {
	vocab := units.UnitsFor(f.Category)
	f.Value = ""
	f.From = ""
	f.To = ""
	if len(vocab) > 0 {
		f.From = vocab[0]
		f.To = vocab[0]
	}
	if len(vocab) > 1 {
		f.To = vocab[1]
	}
}

// ResultPanel mirrors the result container and its two labels
type ResultPanel struct {
	Label   string
	Value   string
	Visible bool
}

// Conversion is the outcome of one form submission
type Conversion struct {
	Category units.Category
	Input    string
	From     string
	To       string
	Result   float64
	Text     string
}

// Converter owns the converter screen state: one form per category in tab
// order, the active index and the result panel.
type Converter struct {
	Forms  []Form
	Result ResultPanel
	active int
}

func NewConverter() *Converter {
	categories := units.Categories()
	forms := make([]Form, len(categories))
	for i, c := range categories {
		forms[i] = newForm(units.FormID(c))
	}
	if len(forms) > 0 {
		forms[0].Visible = true
	}
	return &Converter{Forms: forms}
}

// Active returns the index of the selected category tab
func (c *Converter) Active() int {
	return c.active
}

func (c *Converter) ActiveForm() *Form {
	return &c.Forms[c.active]
}

// Select hides the previously active form and shows form i. The result
// panel is left as it is.
func (c *Converter) Select(i int) {
	if i < 0 || i >= len(c.Forms) {
		return
	}
	c.Forms[c.active].Visible = false
	c.active = i
	c.Forms[c.active].Visible = true
}

// Submit converts form i, fills and shows the result panel and hides the
// active form. The active index does not change.
func (c *Converter) Submit(i int) Conversion {
	if i < 0 || i >= len(c.Forms) {
		return Conversion{}
	}
	form := c.Forms[i]
	result := units.Convert(form.Category, units.ParseValue(form.Value), form.From, form.To)

	text := units.FormatResult(form.Value, form.From, form.To, result)
	if form.PassThrough() {
		text = units.FormatPassThrough(form.Value, form.From, form.To)
	}

	conv := Conversion{
		Category: form.Category,
		Input:    form.Value,
		From:     form.From,
		To:       form.To,
		Result:   result,
		Text:     text,
	}

	c.Result.Visible = true
	c.Result.Label = ResultLabel
	c.Result.Value = conv.Text

	c.Forms[c.active].Visible = false
	return conv
}

// SubmitActive submits the form of the selected tab
func (c *Converter) SubmitActive() Conversion {
	return c.Submit(c.active)
}

// Reset shows the active form, hides the result panel and clears the
// fields of every form.
func (c *Converter) Reset() {
	c.Forms[c.active].Visible = true
	c.Result.Visible = false
	for i := range c.Forms {
		c.Forms[i].clear()
	}
	c.Forms[c.active].Visible = true
}

// ResultText is what the copy control places on the clipboard
func (c *Converter) ResultText() string {
	return c.Result.Value
}

// VisibleForms returns the indices of the forms currently shown
func (c *Converter) VisibleForms() []int {
	var visible []int
	for i, f := range c.Forms {
		if f.Visible {
			visible = append(visible, i)
		}
	}
	return visible
}

// SetValue replaces the text of form i's value field
func (c *Converter) SetValue(i int, value string) {
	if i < 0 || i >= len(c.Forms) {
		return
	}
	c.Forms[i].Value = value
}

// CycleUnit moves a unit field of form i through its category's
// vocabulary, wrapping at both ends.
func (c *Converter) CycleUnit(i int, field UnitField, delta int) {
	if i < 0 || i >= len(c.Forms) {
		return
	}
	form := &c.Forms[i]
	vocab := units.UnitsFor(form.Category)
	if len(vocab) == 0 {
		return
	}

	current := &form.From
	if field == ToField {
		current = &form.To
	}

	idx := 0
	for j, u := range vocab {
		if u == *current {
			idx = j
			break
		}
	}
	idx = ((idx+delta)%len(vocab) + len(vocab)) % len(vocab)
	*current = vocab[idx]
}
