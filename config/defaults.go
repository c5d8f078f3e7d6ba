package config

const (
	DefaultWeatherURL     = "http://localhost:3000"
	DefaultWeatherTimeout = "15s"
	DefaultHistoryLimit   = 50
)

func DefaultSystemConfig() *SystemConfig {
	return &SystemConfig{
		DataDirectory: "~/.local/share/wxconv",
	}
}

func DefaultUserConfig() *UserConfig {
	return &UserConfig{
		Weather: WeatherConfig{
			Endpoint: DefaultWeatherURL,
			Timeout:  DefaultWeatherTimeout,
		},
		History: HistoryConfig{
			Enabled: false,
			Limit:   DefaultHistoryLimit,
		},
	}
}

func GenerateSystemConfigTemplate() string {
	return `# wxconv System Configuration
# Location: ~/.config/wxconv/settings.toml
# This file uses TOML format: https://toml.io

# Directory where the user config, keybindings and history are stored
data_directory = "~/.local/share/wxconv"
`
}

func GenerateUserConfigTemplate() string {
	return `# wxconv User Configuration
# Location: <data_directory>/config.toml
# This file uses TOML format: https://toml.io

[weather]
# Base URL of the weather backend; lookups are sent to <endpoint>/api/weather
endpoint = "http://localhost:3000"

# Give up on a lookup after this long ("0" waits forever)
timeout = "15s"

[history]
# Keep a local record of conversions and weather lookups (history.db)
enabled = false

# Number of entries shown in the history view
limit = 50
`
}
