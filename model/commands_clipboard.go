package model

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"wxconv/config"
)

var errClipboardUnavailable = errors.New("clipboard unavailable")

// CopyResult writes the current result text to the clipboard. Nothing is
// validated: an empty or hidden result is copied as it stands.
func (m *Model) CopyResult() tea.Cmd {
	return m.CopyText(m.Converter.ResultText())
}

// CopyText writes arbitrary text to the clipboard
func (m *Model) CopyText(text string) tea.Cmd {
	write := m.Clipboard
	return func() tea.Msg {
		if write == nil {
			return ClipboardResultMsg{Text: text, Err: errClipboardUnavailable}
		}
		err := write(text)
		if err != nil && config.DebugLog != nil {
			config.DebugLog.Debugf("[Clipboard] write failed: %v", err)
		}
		return ClipboardResultMsg{Text: text, Err: err}
	}
}
