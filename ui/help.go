package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (a AppView) renderHelpModal(width, height int) string {
	kb := a.dataModel.Config.Keybindings

	green := lipgloss.NewStyle().
		Bold(true).
		Foreground(successColor)

	title := green.Render("wxconv - Keyboard Shortcuts")

	blue := lipgloss.NewStyle().Foreground(accentColor)

	globalActions := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## Global Actions"),
		fmt.Sprintf("• %-13s Converter / Weather", kb.DisplayActionKey("switch_view")),
		fmt.Sprintf("• %-13s History", kb.DisplayActionKey("history")),
		fmt.Sprintf("• %-13s About", kb.DisplayActionKey("about")),
		fmt.Sprintf("• %-13s Toggle this help", kb.DisplayActionKey("help")),
		fmt.Sprintf("• %-13s Clear input", kb.DisplayActionKey("clear_input")),
		fmt.Sprintf("• %-13s Quit", kb.DisplayActionKey("quit")),
	)

	weatherActions := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## Weather"),
		fmt.Sprintf("• %-13s Look up city", kb.DisplayActionKey("submit")),
	)

	converterActions := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## Converter"),
		fmt.Sprintf("• %-13s Previous category", kb.DisplayActionKey("category_prev")),
		fmt.Sprintf("• %-13s Next category", kb.DisplayActionKey("category_next")),
		fmt.Sprintf("• %-13s Jump to category", kb.DisplayActionKey("category_1")+".."+kb.DisplayActionKey("category_3")),
		fmt.Sprintf("• %-13s Next field", kb.DisplayActionKey("next_field")),
		fmt.Sprintf("• %-13s Previous field", kb.DisplayActionKey("prev_field")),
		fmt.Sprintf("• %-13s Change unit", kb.DisplayActionKey("unit_prev")+"/"+kb.DisplayActionKey("unit_next")),
		fmt.Sprintf("• %-13s Convert", kb.DisplayActionKey("submit")),
		fmt.Sprintf("• %-13s Reset", kb.DisplayActionKey("reset")),
		fmt.Sprintf("• %-13s Copy result", kb.DisplayActionKey("copy_result")),
	)

	historyActions := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## History"),
		fmt.Sprintf("• %-13s Move", kb.DisplayActionKey("history_up")+"/"+kb.DisplayActionKey("history_down")),
		fmt.Sprintf("• %-13s Copy entry", kb.DisplayActionKey("submit")),
		fmt.Sprintf("• %-13s Clear all", kb.DisplayActionKey("history_clear")),
	)

	column1 := lipgloss.JoinVertical(
		lipgloss.Left,
		globalActions,
		"",
		weatherActions,
	)

	column2 := lipgloss.JoinVertical(
		lipgloss.Left,
		converterActions,
		"",
		historyActions,
	)

	columnStyle := lipgloss.NewStyle().Width(42).PaddingLeft(4)

	twoColumns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		columnStyle.Render(column1),
		"  ",
		columnStyle.Render(column2),
	)

	footer := lipgloss.NewStyle().
		Foreground(dimColor).
		Render(fmt.Sprintf("Press %s or Esc to close this help", kb.DisplayActionKey("help")))

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		twoColumns,
		"",
		footer,
	)

	helpBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(1, 2).
		Width(96)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		helpBox.Render(content),
	)
}
