package model

import (
	"context"

	"github.com/atotto/clipboard"

	"wxconv/config"
	"wxconv/storage"
	"wxconv/weather"
)

// WeatherClient is the part of weather.Client the model depends on
type WeatherClient interface {
	Lookup(ctx context.Context, q weather.Query) (*weather.Report, error)
}

// Model holds the core application data and business logic state
type Model struct {
	// Core dependencies
	Config  *config.Config
	Weather WeatherClient
	History *storage.HistoryStorage // nil when history is disabled

	// Application data
	Converter    *Converter
	WeatherPanel *WeatherPanel

	// Clipboard writes text to the system clipboard
	Clipboard func(string) error

	Quitting bool

	// Application metadata
	Version string
	License string
}

// NewModel creates a new Model with the given configuration
func NewModel(cfg *config.Config, client WeatherClient, history *storage.HistoryStorage, version, license string) *Model {
	if client == nil && config.DebugLog != nil {
		config.DebugLog.Debugf("[Model] no weather client configured, lookups will fail")
	}

	return &Model{
		Config:       cfg,
		Weather:      client,
		History:      history,
		Converter:    NewConverter(),
		WeatherPanel: &WeatherPanel{},
		Clipboard:    clipboard.WriteAll,
		Version:      version,
		License:      license,
	}
}

// HistoryEnabled reports whether entries are being persisted
func (m *Model) HistoryEnabled() bool {
	return m.History != nil
}

func (m *Model) historyLimit() int {
	if m.Config == nil || m.Config.HistoryLimit <= 0 {
		return config.DefaultHistoryLimit
	}
	return m.Config.HistoryLimit
}
