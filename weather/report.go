package weather

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"wxconv/units"
)

// Report is a decoded backend response. Fields are kept as raw JSON and
// are not validated; they render the way template interpolation would.
type Report struct {
	keys   []string
	fields map[string]json.RawMessage
}

// ParseReport decodes a response body. Any valid JSON other than null is
// accepted; bodies that are not objects produce a report without fields.
func ParseReport(data []byte) (*Report, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: body is not valid JSON", ErrMalformedResponse)
	}

	r := &Report{fields: make(map[string]json.RawMessage)}

	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("%w: body is null", ErrMalformedResponse)
	}
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return r, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected key %v", ErrMalformedResponse, tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}

		// duplicate keys: last value wins, first position is kept
		if _, seen := r.fields[key]; !seen {
			r.keys = append(r.keys, key)
		}
		r.fields[key] = raw
	}

	return r, nil
}

// Keys returns the response keys in the order they arrived
func (r *Report) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Field returns a response field; missing fields render as "undefined"
func (r *Report) Field(key string) Value {
	raw, ok := r.fields[key]
	return Value{raw: raw, present: ok}
}

func (r *Report) Temp() Value      { return r.Field("temp") }
func (r *Report) Humidity() Value  { return r.Field("humidity") }
func (r *Report) WindSpeed() Value { return r.Field("wind_speed") }

// Value is one response field
type Value struct {
	raw     json.RawMessage
	present bool
}

func (v Value) String() string {
	if !v.present {
		return "undefined"
	}
	return interpolate(v.raw)
}

func interpolate(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "undefined"
	}

	switch trimmed[0] {
	case 'n':
		return "null"
	case 't', 'f':
		return string(trimmed)
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return string(trimmed)
		}
		return s
	case '{':
		return "[object Object]"
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return string(trimmed)
		}
		parts := make([]string, len(items))
		for i, item := range items {
			// null elements join as empty strings
			if s := bytes.TrimSpace(item); len(s) > 0 && s[0] == 'n' {
				continue
			}
			parts[i] = interpolate(item)
		}
		return strings.Join(parts, ",")
	}

	f, err := strconv.ParseFloat(string(trimmed), 64)
	if err != nil {
		return string(trimmed)
	}
	return units.FormatNumber(f)
}

// Markup is the content of the result container for one lookup
func Markup(city string, r *Report) string {
	var sb strings.Builder
	sb.WriteString("## " + city + "\n\n")
	sb.WriteString("Temperature: " + r.Temp().String() + "°C\n\n")
	sb.WriteString("Humidity: " + r.Humidity().String() + "%\n\n")
	sb.WriteString("Wind Speed: " + r.WindSpeed().String() + " m/s\n")
	return sb.String()
}

// Summary is a one-line form of Markup used for history and the status line
func Summary(city string, r *Report) string {
	return fmt.Sprintf("%s: %s°C, humidity %s%%, wind %s m/s",
		city, r.Temp(), r.Humidity(), r.WindSpeed())
}
