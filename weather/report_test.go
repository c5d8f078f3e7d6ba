package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReportInterpolation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string // rendered temp field
	}{
		{"integer", `{"temp": 18}`, "18"},
		{"fraction", `{"temp": -3.25}`, "-3.25"},
		{"exponent", `{"temp": 1e2}`, "100"},
		{"string", `{"temp": "warm"}`, "warm"},
		{"null", `{"temp": null}`, "null"},
		{"bool", `{"temp": true}`, "true"},
		{"missing", `{"humidity": 60}`, "undefined"},
		{"object", `{"temp": {"c": 18}}`, "[object Object]"},
		{"array", `{"temp": [1, "a", null, 2.5]}`, "1,a,,2.5"},
		{"duplicate key keeps last", `{"temp": 1, "temp": 2}`, "2"},
		{"array body", `[1, 2, 3]`, "undefined"},
		{"number body", `42`, "undefined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseReport([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Temp().String())
		})
	}
}

func TestParseReportRejectsInvalidJSON(t *testing.T) {
	for _, body := range []string{"", "   ", "{", `{"temp": 18} trailing`, "not json", "null", " null\n"} {
		_, err := ParseReport([]byte(body))
		assert.ErrorIs(t, err, ErrMalformedResponse, "body %q", body)
	}
}

func TestReportKeys(t *testing.T) {
	r, err := ParseReport([]byte(`{"wind_speed": 3.5, "temp": "n/a", "humidity": 60, "wind_speed": 4}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"wind_speed", "temp", "humidity"}, r.Keys())
	assert.Equal(t, "4", r.WindSpeed().String())
	assert.Equal(t, "n/a", r.Temp().String())
	assert.Equal(t, "undefined", r.Field("pressure").String())
}

func TestMarkupAndSummary(t *testing.T) {
	r, err := ParseReport([]byte(`{"temp": 18, "humidity": 60, "wind_speed": 3.5}`))
	require.NoError(t, err)

	want := "## Paris\n\nTemperature: 18°C\n\nHumidity: 60%\n\nWind Speed: 3.5 m/s\n"
	assert.Equal(t, want, Markup("Paris", r))
	assert.Equal(t, "Paris: 18°C, humidity 60%, wind 3.5 m/s", Summary("Paris", r))
}
