package model

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"wxconv/config"
	"wxconv/weather"
)

// ErrNoWeatherClient is reported when no backend has been configured
var ErrNoWeatherClient = errors.New("weather backend not configured")

// now is swapped out in tests
var now = time.Now

// LookupWeather starts a lookup for city. The request carries the city
// exactly as typed; an empty city is still sent.
func (m *Model) LookupWeather(city string) tea.Cmd {
	seq := m.WeatherPanel.Begin()
	client := m.Weather
	q := weather.NewQuery(city, now())

	if config.DebugLog != nil {
		config.DebugLog.Debugf("[Weather] lookup #%d city=%q", seq, city)
	}

	return func() tea.Msg {
		if client == nil {
			return WeatherResultMsg{Seq: seq, City: city, Err: ErrNoWeatherClient}
		}
		report, err := client.Lookup(context.Background(), q)
		if err != nil && config.DebugLog != nil {
			config.DebugLog.Debugf("[Weather] lookup #%d failed: %v", seq, err)
		}
		return WeatherResultMsg{Seq: seq, City: city, Report: report, Err: err}
	}
}

// ApplyWeather records a lookup result and, when it is current and history
// is enabled, persists a summary of it.
func (m *Model) ApplyWeather(msg WeatherResultMsg) tea.Cmd {
	if !m.WeatherPanel.Apply(msg) {
		if config.DebugLog != nil {
			config.DebugLog.Debugf("[Weather] dropping stale result #%d (current #%d)", msg.Seq, m.WeatherPanel.Seq())
		}
		return nil
	}
	if msg.Err != nil || strings.TrimSpace(msg.City) == "" {
		return nil
	}
	return m.SaveWeather(msg.City, msg.Report)
}
