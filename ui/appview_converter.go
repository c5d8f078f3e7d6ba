package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	appmodel "wxconv/model"
	"wxconv/units"
)

var categoryLabels = map[units.Category]string{
	units.Length:      "Length",
	units.Weight:      "Weight",
	units.Temperature: "Temperature",
}

func categoryLabel(c units.Category) string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

func (a AppView) handleConverterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	kb := a.dataModel.Config.Keybindings
	conv := a.dataModel.Converter
	key := msg.String()

	// Category tabs
	switch {
	case kb.Matches(key, "category_prev"):
		return a.selectCategory(conv.Active() - 1)
	case kb.Matches(key, "category_next"):
		return a.selectCategory(conv.Active() + 1)
	}
	for i := range conv.Forms {
		if kb.Matches(key, fmt.Sprintf("category_%d", i+1)) {
			return a.selectCategory(i)
		}
	}

	switch {
	case kb.Matches(key, "reset"):
		conv.Reset()
		a.valueInput.SetValue("")
		a.focusField = focusValue
		return a, a.valueInput.Focus()

	case kb.Matches(key, "copy_result"):
		return a, a.dataModel.CopyResult()
	}

	// Everything below edits the active form, which is hidden after a submit
	if !conv.ActiveForm().Visible {
		return a, nil
	}

	switch {
	case kb.Matches(key, "submit"):
		return a, a.dataModel.SubmitConversion()

	case kb.Matches(key, "next_field"):
		return a, a.setFocus((a.focusField + 1) % focusCount)

	case kb.Matches(key, "prev_field"):
		return a, a.setFocus((a.focusField + focusCount - 1) % focusCount)

	case kb.Matches(key, "clear_input") && a.focusField == focusValue:
		a.valueInput.SetValue("")
		conv.SetValue(conv.Active(), "")
		return a, nil
	}

	if a.focusField != focusValue {
		field := appmodel.FromField
		if a.focusField == focusTo {
			field = appmodel.ToField
		}
		switch {
		case kb.Matches(key, "unit_next"):
			conv.CycleUnit(conv.Active(), field, 1)
		case kb.Matches(key, "unit_prev"):
			conv.CycleUnit(conv.Active(), field, -1)
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.valueInput, cmd = a.valueInput.Update(msg)
	conv.SetValue(conv.Active(), a.valueInput.Value())
	return a, cmd
}

// selectCategory switches tabs, wrapping at both ends
func (a AppView) selectCategory(i int) (tea.Model, tea.Cmd) {
	conv := a.dataModel.Converter
	n := len(conv.Forms)
	if n == 0 {
		return a, nil
	}
	i = ((i % n) + n) % n

	conv.Select(i)
	a.valueInput.SetValue(conv.ActiveForm().Value)
	a.valueInput.CursorEnd()
	return a, a.setFocus(focusValue)
}

func (a *AppView) setFocus(field int) tea.Cmd {
	a.focusField = field
	if field == focusValue {
		return a.valueInput.Focus()
	}
	a.valueInput.Blur()
	return nil
}

func (a AppView) renderConverter() string {
	conv := a.dataModel.Converter

	sections := []string{a.renderCategoryTabs(), ""}

	if form := conv.ActiveForm(); form.Visible {
		sections = append(sections, a.renderForm(*form), "")
	}

	if conv.Result.Visible {
		result := lipgloss.JoinVertical(
			lipgloss.Left,
			ResultLabelStyle.Render(conv.Result.Label),
			ResultValueStyle.Render(conv.Result.Value),
		)
		sections = append(sections, PanelStyle.Render(result))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a AppView) renderCategoryTabs() string {
	conv := a.dataModel.Converter
	tabs := make([]string, 0, len(conv.Forms))
	for i, f := range conv.Forms {
		label := fmt.Sprintf("%d %s", i+1, categoryLabel(f.Category))
		if i == conv.Active() {
			tabs = append(tabs, ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, TabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (a AppView) renderForm(form appmodel.Form) string {
	labelStyle := lipgloss.NewStyle().Width(8)

	value := a.valueInput
	if !value.Focused() {
		value.TextStyle = DimStyle
	}

	lines := []string{
		HighlightStyle.Render(categoryLabel(form.Category)),
		"",
		labelStyle.Render(focusMarker(a.focusField == focusValue)+"Value") + value.View(),
		labelStyle.Render(focusMarker(a.focusField == focusFrom)+"From") + renderUnitChoice(form.Category, form.From, a.focusField == focusFrom),
		labelStyle.Render(focusMarker(a.focusField == focusTo)+"To") + renderUnitChoice(form.Category, form.To, a.focusField == focusTo),
	}
	if form.PassThrough() {
		lines = append(lines, "", DimStyle.Render("No formula for "+form.From+" → "+form.To+", the value passes through"))
	}
	return PanelStyle.Render(strings.Join(lines, "\n"))
}

func focusMarker(focused bool) string {
	if focused {
		return "> "
	}
	return "  "
}

// renderUnitChoice shows the whole vocabulary with the chosen unit marked
func renderUnitChoice(c units.Category, chosen string, focused bool) string {
	vocab := units.UnitsFor(c)
	parts := make([]string, 0, len(vocab))
	for _, u := range vocab {
		switch {
		case u == chosen && focused:
			parts = append(parts, SelectedStyle.Render("["+u+"]"))
		case u == chosen:
			parts = append(parts, TitleStyle.Render("["+u+"]"))
		default:
			parts = append(parts, DimStyle.Render(" "+u+" "))
		}
	}
	return strings.Join(parts, " ")
}
