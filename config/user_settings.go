package config

import (
	"fmt"
	"strconv"
)

// UpdateUserField updates a single field of config.toml and saves it.
// Other values in the file are preserved, comments are not.
//
// Fields:
//   - "history.enabled": "true" / "false"
//   - "history.limit": 1..1000
//   - "weather.endpoint", "weather.timeout"
func UpdateUserField(dataDir, field, value string) error {
	cfg, err := LoadUserConfig(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	switch field {
	case "history.enabled":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: history.enabled must be true or false", ErrInvalidConfig)
		}
		cfg.History.Enabled = enabled
		if cfg.History.Limit == 0 {
			cfg.History.Limit = DefaultHistoryLimit
		}

	case "history.limit":
		limit, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: history.limit must be a number", ErrInvalidConfig)
		}
		cfg.History.Limit = limit

	case "weather.endpoint":
		cfg.Weather.Endpoint = value

	case "weather.timeout":
		if _, err := ParseTimeout(value); err != nil {
			return err
		}
		cfg.Weather.Timeout = value

	default:
		return fmt.Errorf("unknown config field: %s", field)
	}

	if err := ValidateUserConfig(cfg); err != nil {
		return err
	}

	if err := SaveUserConfig(cfg, dataDir); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	if DebugLog != nil {
		DebugLog.Infof("Updated %s in %s/config.toml", field, dataDir)
	}

	return nil
}
