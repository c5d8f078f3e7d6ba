package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type SystemConfig struct {
	DataDirectory string `toml:"data_directory"`
}

type WeatherConfig struct {
	Endpoint string `toml:"endpoint" validate:"required,url,startswith=http"`
	Timeout  string `toml:"timeout"`
}

type HistoryConfig struct {
	Enabled bool `toml:"enabled"`
	Limit   int  `toml:"limit" validate:"min=1,max=1000"`
}

type UserConfig struct {
	Weather WeatherConfig `toml:"weather"`
	History HistoryConfig `toml:"history"`
}

type Config struct {
	DataDirectory  string
	WeatherURL     string
	WeatherTimeout time.Duration
	HistoryEnabled bool
	HistoryLimit   int
	Keybindings    *KeyBindingsConfig
}

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

var Debug = false
var DebugLog *zap.SugaredLogger

func (c *Config) DataDir() string {
	return ExpandPath(c.DataDirectory)
}

func (c *Config) applyEnvOverrides() {
	if dataDir := os.Getenv("WXCONV_DATA_DIR"); dataDir != "" {
		c.DataDirectory = dataDir
	}
	if url := os.Getenv("WXCONV_WEATHER_URL"); url != "" {
		c.WeatherURL = url
	}
}

func (c *Config) applyUserConfig(userCfg *UserConfig) error {
	if err := ValidateUserConfig(userCfg); err != nil {
		return err
	}

	timeout, err := ParseTimeout(userCfg.Weather.Timeout)
	if err != nil {
		return err
	}

	c.WeatherURL = userCfg.Weather.Endpoint
	c.WeatherTimeout = timeout
	c.HistoryEnabled = userCfg.History.Enabled
	c.HistoryLimit = userCfg.History.Limit
	return nil
}

// ParseTimeout parses the weather request timeout. Empty and "0" disable it.
func ParseTimeout(s string) (time.Duration, error) {
	if s == "" || s == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: weather.timeout %q: %v", ErrInvalidConfig, s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: weather.timeout must not be negative", ErrInvalidConfig)
	}
	return d, nil
}

func CheckDebug() bool {
	debug := os.Getenv("WXCONV_DEBUG")
	return debug == "true" || debug == "1"
}

func InitDebugLog(dataDir string) {
	if !CheckDebug() {
		return
	}

	Debug = true
	logPath := filepath.Join(dataDir, "debug.log")

	// 0600 - lookups include the cities the user typed
	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open debug log at %s: %v\n", logPath, err)
		return
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05.000000")
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(f), zapcore.DebugLevel)

	DebugLog = zap.New(core, zap.AddCaller()).Sugar()
	DebugLog.Infof("=== Debug logging started (WXCONV_DEBUG=%s) ===", os.Getenv("WXCONV_DEBUG"))
	DebugLog.Infof("Log path: %s", logPath)
}

// CloseDebugLog flushes buffered log entries
func CloseDebugLog() {
	if DebugLog == nil {
		return
	}
	_ = DebugLog.Sync()
}

func Load() (*Config, error) {
	cfg := &Config{
		DataDirectory: GetDefaultDataDir(),
		WeatherURL:    DefaultWeatherURL,
		HistoryLimit:  DefaultHistoryLimit,
	}

	systemCfg, err := LoadSystemConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load system config: %w", err)
	}
	if systemCfg.DataDirectory != "" {
		cfg.DataDirectory = systemCfg.DataDirectory
	}

	// Data dir override has to apply before the user config is located
	if dataDir := os.Getenv("WXCONV_DATA_DIR"); dataDir != "" {
		cfg.DataDirectory = dataDir
	}

	dataDir := cfg.DataDir()
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := EnsureDataDirPermissions(dataDir); err != nil {
		return nil, fmt.Errorf("failed to set data directory permissions: %w", err)
	}

	userCfg, err := LoadUserConfig(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}
	if err := cfg.applyUserConfig(userCfg); err != nil {
		return nil, err
	}

	cfg.applyEnvOverrides()
	if err := ValidateWeatherURL(cfg.WeatherURL); err != nil {
		return nil, err
	}

	kb, err := LoadKeybindings(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load keybindings: %w", err)
	}
	if ok, warning := kb.Validate(); !ok {
		return nil, fmt.Errorf("%w: keybindings: %s", ErrInvalidConfig, warning)
	}
	cfg.Keybindings = kb

	return cfg, nil
}
