package ui

import (
	"wxconv/model"
)

// Message type aliases - these are defined in the model package
type weatherResultMsg = model.WeatherResultMsg
type clipboardResultMsg = model.ClipboardResultMsg
type historySavedMsg = model.HistorySavedMsg
type historyListMsg = model.HistoryListMsg
type historyEnabledMsg = model.HistoryEnabledMsg
type historyClearedMsg = model.HistoryClearedMsg
type markdownRenderedMsg = model.MarkdownRenderedMsg
type flashTickMsg = model.FlashTickMsg

// screen selects which panel fills the main area
type screen int

const (
	screenConverter screen = iota
	screenWeather
)

func (s screen) String() string {
	switch s {
	case screenWeather:
		return "Weather"
	default:
		return "Converter"
	}
}

// converter form focus targets
const (
	focusValue = iota
	focusFrom
	focusTo
	focusCount
)
