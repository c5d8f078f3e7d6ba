package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmationState holds a yes/no prompt and the command run on "y"
type ConfirmationState struct {
	Active    bool
	Title     string
	Message   string
	OnConfirm func() tea.Cmd
}

// RenderConfirmationModal renders the prompt with a y/n footer
func RenderConfirmationModal(state ConfirmationState, width, height int) string {
	modalWidth := 60
	if width < modalWidth+10 {
		modalWidth = width - 10
	}

	return RenderThreeSectionModal(
		state.Title,
		strings.Split(state.Message, "\n"),
		FormatFooter("y", "Yes", "n", "No"),
		ModalTypeWarning,
		modalWidth,
		width,
		height,
	)
}

func (a AppView) askConfirmation(title, message string, onConfirm func() tea.Cmd) AppView {
	a.confirmation = ConfirmationState{
		Active:    true,
		Title:     title,
		Message:   message,
		OnConfirm: onConfirm,
	}
	return a
}

func (a AppView) handleConfirmationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		onConfirm := a.confirmation.OnConfirm
		a.confirmation = ConfirmationState{}
		if onConfirm == nil {
			return a, nil
		}
		return a, onConfirm()
	case "n", "N", "esc":
		a.confirmation = ConfirmationState{}
	}
	return a, nil
}
