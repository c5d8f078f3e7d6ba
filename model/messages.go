package model

import (
	"wxconv/storage"
	"wxconv/weather"
)

// WeatherResultMsg carries the outcome of one lookup back to Update
type WeatherResultMsg struct {
	Seq    uint64
	City   string
	Report *weather.Report
	Err    error
}

type ClipboardResultMsg struct {
	Text string
	Err  error
}

type HistorySavedMsg struct {
	Entry *storage.Entry
	Err   error
}

type HistoryListMsg struct {
	Entries []storage.Entry
	Err     error
}

type HistoryEnabledMsg struct {
	Storage *storage.HistoryStorage
	Err     error
}

type HistoryClearedMsg struct {
	Err error
}

// MarkdownRenderedMsg delivers terminal-rendered weather markup
type MarkdownRenderedMsg struct {
	Source   string
	Rendered string
}

type FlashTickMsg struct{}
