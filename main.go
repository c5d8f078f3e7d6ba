package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"wxconv/config"
	"wxconv/model"
	"wxconv/storage"
	"wxconv/ui"
	"wxconv/weather"
)

const (
	Version = "v0.1.0"
	License = "Apache-2.0"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		showFatal("Configuration Error", err.Error())
	}

	// Initialize debug logging after config is loaded
	config.InitDebugLog(cfg.DataDir())
	defer config.CloseDebugLog()

	var client model.WeatherClient
	wc, err := weather.NewClient(cfg.WeatherURL, cfg.WeatherTimeout)
	if err != nil {
		// Converter still works without a backend
		if config.DebugLog != nil {
			config.DebugLog.Warnf("weather client unavailable: %v", err)
		}
	} else {
		if config.DebugLog != nil {
			wc.SetLogger(config.DebugLog.Debugf)
		}
		client = wc
	}

	var history *storage.HistoryStorage
	if cfg.HistoryEnabled {
		history, err = storage.NewHistoryStorage(cfg.DataDir())
		if err != nil {
			showFatal("History Error", fmt.Sprintf("Failed to open history database:\n\n%v\n\nDisable [history] in config.toml to continue without it.", err))
		}
	}

	dataModel := model.NewModel(cfg, client, history, Version, License)
	appView := ui.NewAppView(dataModel)

	p := tea.NewProgram(
		appView,
		tea.WithAltScreen(),
	)

	_, runErr := p.Run()

	// History may have been switched on while running
	if dataModel.History != nil {
		if err := dataModel.History.Close(); err != nil && config.DebugLog != nil {
			config.DebugLog.Warnf("failed to close history database: %v", err)
		}
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		config.CloseDebugLog()
		os.Exit(1)
	}
}

// showFatal displays an error modal and exits once it is dismissed
func showFatal(title, msg string) {
	errorModal := ui.NewErrorModal(title, msg)
	p := tea.NewProgram(
		errorModal,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}
