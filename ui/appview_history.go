package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	appmodel "wxconv/model"
	"wxconv/storage"
)

const historyModalWidth = 70

func (a AppView) openHistory() (tea.Model, tea.Cmd) {
	a.closeAllModals()

	if !a.dataModel.HistoryEnabled() {
		a.showHistoryOffer = true
		return a, nil
	}

	a.showHistory = true
	a.selectedHistoryIdx = 0
	a.historyFilterInput.SetValue("")
	return a, tea.Batch(a.historyFilterInput.Focus(), a.dataModel.FetchHistory())
}

// handleHistoryOfferKey answers the "turn history on?" prompt
func (a AppView) handleHistoryOfferKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		a.showHistoryOffer = false
		return a, a.dataModel.EnableHistory()
	case "n", "N", "esc", "enter":
		a.showHistoryOffer = false
	}
	return a, nil
}

func (a AppView) handleHistoryEnabled(msg historyEnabledMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		debugf("[UI] enabling history failed: %v", msg.Err)
		a.showAcknowledge("Could not enable history", msg.Err.Error(), ModalTypeError)
		return a, nil
	}
	a.dataModel.AttachHistory(msg.Storage)
	return a.openHistory()
}

func (a AppView) renderHistoryOffer() string {
	lines := []string{
		"Nothing is recorded by default.",
		"",
		"Turn history on? Conversions and weather lookups",
		"will be kept in history.db in your data directory",
		"and [history] enabled = true is saved to config.toml.",
	}
	return RenderThreeSectionModal(
		"History is off",
		lines,
		FormatFooter("y", "Enable", "n/Esc", "Not now"),
		ModalTypeInfo,
		60,
		a.width,
		a.height,
	)
}

func (a AppView) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	kb := a.dataModel.Config.Keybindings
	key := msg.String()

	switch {
	case kb.Matches(key, "history_down"):
		if a.selectedHistoryIdx < len(a.filteredHistory)-1 {
			a.selectedHistoryIdx++
		}
		return a, nil

	case kb.Matches(key, "history_up"):
		if a.selectedHistoryIdx > 0 {
			a.selectedHistoryIdx--
		}
		return a, nil

	case kb.Matches(key, "submit"):
		if len(a.filteredHistory) == 0 {
			return a, nil
		}
		entry := a.filteredHistory[a.selectedHistoryIdx]
		a.closeAllModals()
		return a, a.dataModel.CopyText(entry.Summary)

	case kb.Matches(key, "history_clear"):
		if len(a.historyEntries) == 0 {
			return a, nil
		}
		return a.askConfirmation(
			"Clear history?",
			"Every saved conversion and weather lookup\nwill be deleted.",
			a.dataModel.ClearHistory,
		), nil

	case kb.Matches(key, "clear_input"):
		a.historyFilterInput.SetValue("")
		a.refilterHistory()
		return a, nil
	}

	var cmd tea.Cmd
	a.historyFilterInput, cmd = a.historyFilterInput.Update(msg)
	a.refilterHistory()
	return a, cmd
}

func (a *AppView) refilterHistory() {
	a.filteredHistory = appmodel.FilterHistory(a.historyEntries, a.historyFilterInput.Value())
	if a.selectedHistoryIdx >= len(a.filteredHistory) {
		a.selectedHistoryIdx = max(0, len(a.filteredHistory)-1)
	}
}

func (a AppView) renderHistoryModal() string {
	kb := a.dataModel.Config.Keybindings

	modalWidth := historyModalWidth
	if a.width < modalWidth+10 {
		modalWidth = a.width - 10
	}

	lines := []string{a.historyFilterInput.View(), ""}

	if len(a.filteredHistory) == 0 {
		msg := "No history yet"
		if len(a.historyEntries) > 0 {
			msg = "No matches"
		}
		lines = append(lines, DimStyle.Render(msg))
	}

	// Keep the selection inside the visible window
	visible := max(1, a.height-14)
	start := 0
	if a.selectedHistoryIdx >= visible {
		start = a.selectedHistoryIdx - visible + 1
	}
	end := min(len(a.filteredHistory), start+visible)

	for i := start; i < end; i++ {
		lines = append(lines, renderHistoryLine(a.filteredHistory[i], i == a.selectedHistoryIdx, modalWidth))
	}

	footer := FormatFooter(
		"Enter", "Copy",
		kb.DisplayActionKey("history_clear"), "Clear",
		"Esc", "Close",
	)

	return RenderThreeSectionModal(
		fmt.Sprintf("History (%d)", len(a.historyEntries)),
		lines,
		footer,
		ModalTypeInfo,
		modalWidth,
		a.width,
		a.height,
	)
}

func renderHistoryLine(e storage.Entry, selected bool, width int) string {
	stamp := e.CreatedAt.Local().Format("01-02 15:04")
	kind := "conv"
	if e.Kind == storage.KindWeather {
		kind = "wthr"
	}

	prefix := "  "
	if selected {
		prefix = "> "
	}

	// Truncate by display width, not bytes
	head := prefix + stamp + " " + kind + " "
	summary := runewidth.Truncate(e.Summary, max(0, width-runewidth.StringWidth(head)), "…")
	line := head + summary

	if selected {
		return SelectedStyle.Render(line)
	}
	return line
}
