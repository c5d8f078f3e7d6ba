package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at a temp dir and clears overrides
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("WXCONV_DATA_DIR", "")
	t.Setenv("WXCONV_WEATHER_URL", "")
	t.Setenv("WXCONV_DEBUG", "")
	return home
}

func writeUserConfig(t *testing.T, dataDir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dataDir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "config.toml"), []byte(content), 0600))
}

func TestLoadCreatesDefaultFiles(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	dataDir := filepath.Join(home, ".local", "share", "wxconv")
	assert.Equal(t, dataDir, cfg.DataDir())
	assert.Equal(t, DefaultWeatherURL, cfg.WeatherURL)
	assert.Equal(t, 15*time.Second, cfg.WeatherTimeout)
	assert.False(t, cfg.HistoryEnabled)
	assert.Equal(t, DefaultHistoryLimit, cfg.HistoryLimit)
	require.NotNil(t, cfg.Keybindings)
	assert.Equal(t, "alt", cfg.Keybindings.Primary())

	assert.FileExists(t, filepath.Join(home, ".config", "wxconv", "settings.toml"))
	assert.FileExists(t, filepath.Join(dataDir, "config.toml"))
	assert.FileExists(t, filepath.Join(dataDir, "keybindings.toml"))

	info, err := os.Stat(dataDir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestLoadReadsUserConfig(t *testing.T) {
	isolate(t)
	dataDir := filepath.Join(t.TempDir(), "data")
	t.Setenv("WXCONV_DATA_DIR", dataDir)

	writeUserConfig(t, dataDir, `
[weather]
endpoint = "https://weather.example.com"
timeout = "2s"

[history]
enabled = true
limit = 10
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, dataDir, cfg.DataDir())
	assert.Equal(t, "https://weather.example.com", cfg.WeatherURL)
	assert.Equal(t, 2*time.Second, cfg.WeatherTimeout)
	assert.True(t, cfg.HistoryEnabled)
	assert.Equal(t, 10, cfg.HistoryLimit)
}

func TestLoadPartialUserConfigKeepsDefaults(t *testing.T) {
	isolate(t)
	dataDir := filepath.Join(t.TempDir(), "data")
	t.Setenv("WXCONV_DATA_DIR", dataDir)

	writeUserConfig(t, dataDir, `
[history]
enabled = true
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultWeatherURL, cfg.WeatherURL)
	assert.Equal(t, 15*time.Second, cfg.WeatherTimeout)
	assert.True(t, cfg.HistoryEnabled)
	assert.Equal(t, DefaultHistoryLimit, cfg.HistoryLimit)
}

func TestLoadRejectsInvalidUserConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "non http endpoint",
			content: `
[weather]
endpoint = "ftp://weather.example.com"
`,
		},
		{
			name: "relative endpoint",
			content: `
[weather]
endpoint = "/api"
`,
		},
		{
			name: "bad timeout",
			content: `
[weather]
timeout = "soon"
`,
		},
		{
			name: "history limit out of range",
			content: `
[history]
limit = 0
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			dataDir := filepath.Join(t.TempDir(), "data")
			t.Setenv("WXCONV_DATA_DIR", dataDir)
			writeUserConfig(t, dataDir, tt.content)

			_, err := Load()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadMalformedTOML(t *testing.T) {
	isolate(t)
	dataDir := filepath.Join(t.TempDir(), "data")
	t.Setenv("WXCONV_DATA_DIR", dataDir)
	writeUserConfig(t, dataDir, "[weather\nendpoint = ")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse user config")
}

func TestWeatherURLEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("WXCONV_DATA_DIR", filepath.Join(t.TempDir(), "data"))
	t.Setenv("WXCONV_WEATHER_URL", "http://127.0.0.1:9000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9000", cfg.WeatherURL)

	t.Setenv("WXCONV_WEATHER_URL", "not a url")
	_, err = Load()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParseTimeout(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{input: "", want: 0},
		{input: "0", want: 0},
		{input: "15s", want: 15 * time.Second},
		{input: "1m30s", want: 90 * time.Second},
		{input: "-1s", wantErr: true},
		{input: "fast", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeout(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandPath(t *testing.T) {
	home := isolate(t)
	t.Setenv("WXCONV_TEST_DIR", "/srv/data")

	assert.Equal(t, "", ExpandPath(""))
	assert.Equal(t, filepath.Join(home, "notes"), ExpandPath("~/notes"))
	assert.Equal(t, "/srv/data/wxconv", ExpandPath("$WXCONV_TEST_DIR/wxconv"))
	assert.Equal(t, "/tmp/a", ExpandPath("/tmp/./a/"))
}

func TestInitDebugLogDisabled(t *testing.T) {
	isolate(t)
	DebugLog = nil

	InitDebugLog(t.TempDir())
	assert.Nil(t, DebugLog)
}

func TestInitDebugLogEnabled(t *testing.T) {
	isolate(t)
	t.Setenv("WXCONV_DEBUG", "1")
	dir := t.TempDir()
	t.Cleanup(func() {
		DebugLog = nil
		Debug = false
	})

	InitDebugLog(dir)
	require.NotNil(t, DebugLog)
	DebugLog.Infof("hello %s", "log")
	CloseDebugLog()

	data, err := os.ReadFile(filepath.Join(dir, "debug.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello log")
}
