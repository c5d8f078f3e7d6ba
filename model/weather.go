package model

import (
	"wxconv/weather"
)

// WeatherPanel holds the state of the weather widget. Only the response to
// the most recent lookup is applied; anything older is discarded.
type WeatherPanel struct {
	City    string // city of the last applied report
	Markup  string
	Report  *weather.Report
	Pending bool
	Err     error

	seq uint64
}

// Begin marks a new lookup in flight and returns its sequence number
func (w *WeatherPanel) Begin() uint64 {
	w.seq++
	w.Pending = true
	return w.seq
}

// Seq returns the sequence number of the latest lookup
func (w *WeatherPanel) Seq() uint64 {
	return w.seq
}

// Apply folds a lookup result into the panel. It reports false when the
// result belongs to a superseded lookup. A failed lookup keeps the last
// rendered report on screen.
func (w *WeatherPanel) Apply(msg WeatherResultMsg) bool {
	if msg.Seq != w.seq {
		return false
	}

	w.Pending = false
	if msg.Err != nil {
		w.Err = msg.Err
		return true
	}

	w.Err = nil
	w.City = msg.City
	w.Report = msg.Report
	w.Markup = weather.Markup(msg.City, msg.Report)
	return true
}

// HasReport reports whether the panel has anything to show
func (w *WeatherPanel) HasReport() bool {
	return w.Report != nil
}
