package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wxconv/config"
	"wxconv/storage"
)

func TestCopyResult(t *testing.T) {
	m := newTestModel(nil)
	var copied []string
	m.Clipboard = func(s string) error {
		copied = append(copied, s)
		return nil
	}

	m.Converter.SetValue(0, "100")
	m.SubmitConversion()

	msg := m.CopyResult()().(ClipboardResultMsg)
	assert.NoError(t, msg.Err)
	assert.Equal(t, "100 cm = 1 m", msg.Text)
	assert.Equal(t, []string{"100 cm = 1 m"}, copied)
}

func TestCopyResultWhenEmpty(t *testing.T) {
	m := newTestModel(nil)
	var copied []string
	m.Clipboard = func(s string) error {
		copied = append(copied, s)
		return nil
	}

	msg := m.CopyResult()().(ClipboardResultMsg)
	assert.NoError(t, msg.Err)
	assert.Equal(t, []string{""}, copied, "empty result is still written")
}

func TestCopyResultFailure(t *testing.T) {
	m := newTestModel(nil)
	denied := errors.New("permission denied")
	m.Clipboard = func(string) error { return denied }

	msg := m.CopyResult()().(ClipboardResultMsg)
	assert.ErrorIs(t, msg.Err, denied)

	m.Clipboard = nil
	msg = m.CopyResult()().(ClipboardResultMsg)
	assert.Error(t, msg.Err)
}

func TestSubmitConversionWithoutHistory(t *testing.T) {
	m := newTestModel(nil)
	m.Converter.SetValue(0, "1")

	assert.Nil(t, m.SubmitConversion())
	assert.Equal(t, "1 cm = 0.01 m", m.Converter.ResultText())
	assert.Nil(t, m.FetchHistory())
	assert.Nil(t, m.ClearHistory())
	assert.False(t, m.HistoryEnabled())
}

func TestHistoryCommands(t *testing.T) {
	hs, err := storage.NewHistoryStorage(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { hs.Close() })

	m := NewModel(&config.Config{HistoryLimit: 2}, nil, hs, "test", "MIT")
	assert.True(t, m.HistoryEnabled())

	for _, v := range []string{"1", "2", "3"} {
		m.Converter.SetValue(0, v)
		saved := m.SubmitConversion()().(HistorySavedMsg)
		require.NoError(t, saved.Err)
		assert.Equal(t, "length", saved.Entry.Category)
	}

	list := m.FetchHistory()().(HistoryListMsg)
	require.NoError(t, list.Err)
	require.Len(t, list.Entries, 2, "limited by config")
	assert.Equal(t, "3 cm = 0.03 m", list.Entries[0].Summary)

	cleared := m.ClearHistory()().(HistoryClearedMsg)
	require.NoError(t, cleared.Err)

	list = m.FetchHistory()().(HistoryListMsg)
	require.NoError(t, list.Err)
	assert.Empty(t, list.Entries)
}

func TestFilterHistory(t *testing.T) {
	entries := []storage.Entry{
		{ID: "1", Summary: "100 cm = 1 m"},
		{ID: "2", Summary: "Paris: 18°C, humidity 60%, wind 3.5 m/s"},
		{ID: "3", Summary: "1 kg = 2.20462 lb"},
	}

	assert.Equal(t, entries, FilterHistory(entries, ""))

	got := FilterHistory(entries, "paris")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	assert.Empty(t, FilterHistory(entries, "zzz"))
}

func TestEnableHistory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dataDir := t.TempDir()

	m := NewModel(&config.Config{DataDirectory: dataDir, HistoryLimit: 5}, nil, nil, "test", "MIT")
	require.False(t, m.HistoryEnabled())

	msg := m.EnableHistory()().(HistoryEnabledMsg)
	require.NoError(t, msg.Err)
	require.NotNil(t, msg.Storage)
	t.Cleanup(func() { msg.Storage.Close() })

	m.AttachHistory(msg.Storage)
	assert.True(t, m.HistoryEnabled())
	assert.True(t, m.Config.HistoryEnabled)
	assert.Nil(t, m.EnableHistory(), "already enabled")

	userCfg, err := config.LoadUserConfig(dataDir)
	require.NoError(t, err)
	assert.True(t, userCfg.History.Enabled)
}
