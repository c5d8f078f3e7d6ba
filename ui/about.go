package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const ASCIIArt = `               ___ ___  _ __ __   __
__      ____ _/ __/ _ \| '_ \\ \ / /
\ \ /\ / /\ \/ (_| (_) | | | |\ V /
 \ V  V /  >  < \___\___/|_| |_| \_/
  \_/\_/  /_/\_\`

var Features = []string{
	"• Length, weight and temperature conversion",
	"• Current weather for any city",
	"• One-key copy of the last result",
	"• Optional local history (off by default)",
}

func (a AppView) renderAboutModal(width, height int) string {
	var sb strings.Builder

	asciiStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10")).
		Bold(true)

	sb.WriteString(asciiStyle.Render(ASCIIArt))
	sb.WriteString("\n\n\n")

	featureStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("7"))

	for _, feature := range Features {
		sb.WriteString(featureStyle.Render(feature))
		sb.WriteString("\n")
	}

	sb.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("7"))

	sb.WriteString(labelStyle.Render("Version: "))
	sb.WriteString(valueStyle.Render(a.dataModel.Version))
	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render("License: "))
	sb.WriteString(valueStyle.Render(a.dataModel.License))
	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render("Weather: "))
	sb.WriteString(valueStyle.Render(a.dataModel.Config.WeatherURL))
	sb.WriteString("\n\n\n")

	kb := a.dataModel.Config.Keybindings
	sb.WriteString(featureStyle.Render(fmt.Sprintf("Press Esc or %s to close", kb.DisplayActionKey("about"))))
	sb.WriteString("\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(1, 2)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, boxStyle.Render(sb.String()))
}
