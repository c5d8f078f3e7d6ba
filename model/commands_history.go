package model

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"wxconv/config"
	"wxconv/storage"
	"wxconv/weather"
)

// SubmitConversion converts the active form and records the result when
// history is enabled.
func (m *Model) SubmitConversion() tea.Cmd {
	conv := m.Converter.SubmitActive()
	if config.DebugLog != nil {
		config.DebugLog.Debugf("[Converter] %s: %s", conv.Category, conv.Text)
	}
	return m.saveHistory(storage.KindConversion, string(conv.Category), conv.Text)
}

// SaveWeather records a weather report summary when history is enabled
func (m *Model) SaveWeather(city string, report *weather.Report) tea.Cmd {
	return m.saveHistory(storage.KindWeather, "", weather.Summary(city, report))
}

func (m *Model) saveHistory(kind storage.Kind, category, summary string) tea.Cmd {
	if m.History == nil {
		return nil
	}
	hs := m.History
	return func() tea.Msg {
		entry, err := hs.Add(kind, category, summary)
		return HistorySavedMsg{Entry: entry, Err: err}
	}
}

// FetchHistory loads the most recent entries up to the configured limit
func (m *Model) FetchHistory() tea.Cmd {
	if m.History == nil {
		return nil
	}
	hs := m.History
	limit := m.historyLimit()
	return func() tea.Msg {
		entries, err := hs.List(limit)
		return HistoryListMsg{Entries: entries, Err: err}
	}
}

// ClearHistory removes every stored entry
func (m *Model) ClearHistory() tea.Cmd {
	if m.History == nil {
		return nil
	}
	hs := m.History
	return func() tea.Msg {
		return HistoryClearedMsg{Err: hs.Clear()}
	}
}

type historySource []storage.Entry

func (s historySource) String(i int) string { return s[i].Summary }
func (s historySource) Len() int            { return len(s) }

// FilterHistory returns the entries whose summary fuzzily matches query,
// best match first. An empty query returns entries unchanged.
func FilterHistory(entries []storage.Entry, query string) []storage.Entry {
	if query == "" {
		return entries
	}
	matches := fuzzy.FindFrom(query, historySource(entries))
	filtered := make([]storage.Entry, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, entries[match.Index])
	}
	return filtered
}

// EnableHistory turns history on in config.toml and opens the database
func (m *Model) EnableHistory() tea.Cmd {
	if m.History != nil {
		return nil
	}
	dataDir := m.Config.DataDir()
	return func() tea.Msg {
		if err := config.UpdateUserField(dataDir, "history.enabled", "true"); err != nil {
			return HistoryEnabledMsg{Err: err}
		}
		hs, err := storage.NewHistoryStorage(dataDir)
		return HistoryEnabledMsg{Storage: hs, Err: err}
	}
}

// AttachHistory starts recording into hs
func (m *Model) AttachHistory(hs *storage.HistoryStorage) {
	m.History = hs
	m.Config.HistoryEnabled = true
}
