package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (a AppView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	// Spinner ticks only while a lookup is in flight
	if _, ok := msg.(spinner.TickMsg); ok {
		if a.dataModel.WeatherPanel.Pending {
			a.loadingSpinner, cmd = a.loadingSpinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.historyFilterInput.Width = max(10, min(60, a.width-20))
		a.ready = true

		// Re-render weather markup for the new width
		if a.dataModel.WeatherPanel.Markup != "" {
			return a, a.renderMarkdownAsync(a.dataModel.WeatherPanel.Markup)
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case weatherResultMsg:
		return a.handleWeatherResult(msg)

	case markdownRenderedMsg:
		if msg.Source == a.dataModel.WeatherPanel.Markup {
			a.weatherRendered = msg.Rendered
			a.weatherSource = msg.Source
		}
		return a, nil

	case clipboardResultMsg:
		if msg.Err != nil {
			return a, a.flash("Copy failed: "+msg.Err.Error(), true)
		}
		if msg.Text == "" {
			return a, a.flash("Copied empty result", false)
		}
		return a, a.flash("Copied: "+msg.Text, false)

	case historySavedMsg:
		if msg.Err != nil {
			debugf("[UI] history save failed: %v", msg.Err)
			return a, a.flash("History not saved: "+msg.Err.Error(), true)
		}
		if a.showHistory {
			return a, a.dataModel.FetchHistory()
		}
		return a, nil

	case historyListMsg:
		if msg.Err != nil {
			return a, a.flash("Could not load history: "+msg.Err.Error(), true)
		}
		a.historyEntries = msg.Entries
		a.refilterHistory()
		return a, nil

	case historyEnabledMsg:
		return a.handleHistoryEnabled(msg)

	case historyClearedMsg:
		if msg.Err != nil {
			return a, a.flash("Could not clear history: "+msg.Err.Error(), true)
		}
		a.historyEntries = nil
		a.refilterHistory()
		return a, a.flash("History cleared", false)

	case flashTickMsg:
		if a.statusFlash > 0 {
			a.statusFlash--
		}
		if a.statusFlash == 0 {
			a.statusMsg = ""
			a.statusErr = false
		}
		return a, nil
	}

	return a, nil
}

func (a AppView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	kb := a.dataModel.Config.Keybindings
	key := msg.String()

	// PRIORITY 0: Always-global shortcuts
	if kb.Matches(key, "quit") || key == "ctrl+c" {
		debugf("[UI] quit requested")
		a.dataModel.Quitting = true
		return a, tea.Quit
	}

	// PRIORITY 1: Acknowledge modal swallows everything until dismissed
	if a.showAcknowledgeModal {
		if key == "enter" || key == "esc" {
			a.showAcknowledgeModal = false
		}
		return a, nil
	}

	if a.confirmation.Active {
		return a.handleConfirmationKey(msg)
	}

	if a.showHistoryOffer {
		return a.handleHistoryOfferKey(msg)
	}

	// PRIORITY 2: Modal toggles
	switch {
	case kb.Matches(key, "help"):
		a.showHelp = !a.showHelp
		return a, nil

	case kb.Matches(key, "about"):
		open := !a.showAbout
		a.closeAllModals()
		a.showAbout = open
		return a, nil

	case kb.Matches(key, "history"):
		if a.showHistory {
			a.closeAllModals()
			return a, nil
		}
		return a.openHistory()
	}

	if key == "esc" && (a.showHelp || a.showAbout || a.showHistory) {
		a.closeAllModals()
		return a, nil
	}

	if a.showHelp || a.showAbout {
		return a, nil
	}

	if a.showHistory {
		return a.handleHistoryKey(msg)
	}

	if kb.Matches(key, "switch_view") {
		return a.switchScreen()
	}

	switch a.screen {
	case screenWeather:
		return a.handleWeatherKey(msg)
	default:
		return a.handleConverterKey(msg)
	}
}

func (a AppView) switchScreen() (tea.Model, tea.Cmd) {
	if a.screen == screenConverter {
		a.screen = screenWeather
		a.valueInput.Blur()
		return a, a.cityInput.Focus()
	}

	a.screen = screenConverter
	a.cityInput.Blur()
	if a.focusField == focusValue {
		return a, a.valueInput.Focus()
	}
	return a, nil
}
