package adobetv

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/ansel1/merry/v2"
	"github.com/vidprobe/vidprobe"
	"github.com/vidprobe/vidprobe/utils"
)

// fieldMapping binds one raw record key to the coercion that writes it into
// the normalized record.
type fieldMapping struct {
	key    string
	assign func(info *vidprobe.MediaInfo, v any)
}

func missingField(id, key string) error {
	return merry.Wrap(vidprobe.ErrMissingField,
		merry.WithMessagef("%s: required field %q missing from media record", id, key))
}

func stringOrEmpty(v any) string {
	s, _ := v.(string)
	return s
}

// stringifyID renders a record id as a string whether the remote service
// sends it as a number or as text.
func stringifyID(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return ""
	}
}

// looseDuration handles the episode duration field, which the API has been
// seen returning both as clock text and as a bare number of seconds.
func looseDuration(v any) *float64 {
	if s, ok := v.(string); ok {
		return utils.ParseDuration(s)
	}
	return utils.FloatOrNone(v, 1)
}

// trailingURLToken mirrors the site's file naming: the quality label sits
// after the last "-" and before the first "." of that segment.
func trailingURLToken(u string) string {
	token := u[strings.LastIndex(u, "-")+1:]
	if i := strings.Index(token, "."); i >= 0 {
		token = token[:i]
	}
	return token
}
