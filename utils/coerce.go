package utils

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// IntOrNone coerces a loosely typed JSON value to an int. Returns nil for
// missing or unparseable input instead of failing.
func IntOrNone(v any) *int {
	switch t := v.(type) {
	case int:
		return intPtr(t)
	case int64:
		return intPtr(int(t))
	case float64:
		return intPtr(int(t))
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return intPtr(int(n))
		}
		if f, err := t.Float64(); err == nil {
			return intPtr(int(f))
		}
		return nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return nil
		}
		return intPtr(n)
	default:
		return nil
	}
}

// FloatOrNone coerces a loosely typed JSON value to a float64, dividing by
// scale. A duration reported in milliseconds becomes seconds with scale 1000.
func FloatOrNone(v any, scale float64) *float64 {
	if scale == 0 {
		scale = 1
	}

	var f float64
	switch t := v.(type) {
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case float64:
		f = t
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return nil
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}

	f = f / scale
	return &f
}

// StrToInt parses counters that sites render for humans, e.g. "1,234" or
// "1.234.567". Separators are stripped before parsing.
func StrToInt(v any) *int {
	s, ok := v.(string)
	if !ok {
		return IntOrNone(v)
	}

	s = strings.NewReplacer(",", "", ".", "", "+", "", " ", "").Replace(strings.TrimSpace(s))
	if s == "" {
		return nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return intPtr(n)
}

var strdateLayouts = []string{
	"20060102",
	"2006-01-02",
	"2006/01/02",
	"02.01.2006",
	"02/01/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
}

// UnifiedStrdate normalizes a date string to YYYYMMDD. Returns the empty
// string when no known layout matches.
func UnifiedStrdate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	for _, layout := range strdateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("20060102")
		}
	}
	return ""
}

// ParseDuration reads a duration in seconds from the textual forms remote
// APIs use: bare seconds ("60", "248.667") or clock notation ("1:00",
// "1:02:03"). Returns nil when the text fits neither form.
func ParseDuration(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if !strings.Contains(s, ":") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return &f
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return nil
	}

	var total float64
	for _, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil
		}
		total = total*60 + f
	}
	return &total
}

// DetermineExt guesses the file extension from a media URL, ignoring query
// and fragment. Returns the empty string when there is nothing to guess.
func DetermineExt(rawURL string) string {
	if i := strings.IndexAny(rawURL, "?#"); i >= 0 {
		rawURL = rawURL[:i]
	}
	name := rawURL[strings.LastIndex(rawURL, "/")+1:]

	i := strings.LastIndex(name, ".")
	if i < 0 || i == len(name)-1 {
		return ""
	}

	ext := name[i+1:]
	if len(ext) > 5 {
		return ""
	}
	for _, r := range ext {
		alnum := r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
		if !alnum {
			return ""
		}
	}
	return ext
}

func intPtr(i int) *int {
	return &i
}
