package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (a AppView) handleWeatherKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	kb := a.dataModel.Config.Keybindings
	key := msg.String()

	switch {
	case kb.Matches(key, "submit"):
		// The city goes out exactly as typed, blank included
		city := a.cityInput.Value()
		ticking := a.dataModel.WeatherPanel.Pending
		cmds := []tea.Cmd{a.dataModel.LookupWeather(city)}
		if !ticking {
			cmds = append(cmds, a.loadingSpinner.Tick)
		}
		return a, tea.Batch(cmds...)

	case kb.Matches(key, "clear_input"):
		a.cityInput.SetValue("")
		return a, nil
	}

	var cmd tea.Cmd
	a.cityInput, cmd = a.cityInput.Update(msg)
	return a, cmd
}

func (a AppView) handleWeatherResult(msg weatherResultMsg) (tea.Model, tea.Cmd) {
	panel := a.dataModel.WeatherPanel
	current := msg.Seq == panel.Seq()

	saveCmd := a.dataModel.ApplyWeather(msg)
	if !current {
		return a, nil
	}

	if msg.Err != nil {
		return a, a.flash("Weather lookup failed: "+msg.Err.Error(), true)
	}

	return a, tea.Batch(saveCmd, a.renderMarkdownAsync(panel.Markup))
}

func (a AppView) renderWeather() string {
	panel := a.dataModel.WeatherPanel

	sections := []string{a.cityInput.View(), ""}

	if panel.Pending {
		sections = append(sections, a.loadingSpinner.View()+" Fetching weather...", "")
	}

	if panel.HasReport() {
		content := a.weatherRendered
		if a.weatherSource != panel.Markup || content == "" {
			content = panel.Markup
		}
		content = strings.TrimRight(content, "\n")

		boxWidth := a.width - 4
		if boxWidth < 20 {
			boxWidth = 20
		}
		sections = append(sections, PanelStyle.Width(boxWidth).Render(content))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
