package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntOrNone(t *testing.T) {
	res := IntOrNone("1234")
	require.NotNil(t, res)
	assert.Equal(t, 1234, *res)

	res = IntOrNone(float64(720))
	require.NotNil(t, res)
	assert.Equal(t, 720, *res)

	assert.Nil(t, IntOrNone("N/A"))
	assert.Nil(t, IntOrNone(nil))
	assert.Nil(t, IntOrNone([]any{}))
	assert.Nil(t, IntOrNone(""))
}

func TestFloatOrNone(t *testing.T) {
	res := FloatOrNone(float64(2000), 1000)
	require.NotNil(t, res)
	assert.Equal(t, 2.0, *res)

	res = FloatOrNone("248.667", 1)
	require.NotNil(t, res)
	assert.InDelta(t, 248.667, *res, 0.0001)

	// scale 0 behaves like 1
	res = FloatOrNone(float64(5), 0)
	require.NotNil(t, res)
	assert.Equal(t, 5.0, *res)

	assert.Nil(t, FloatOrNone("abc", 1))
	assert.Nil(t, FloatOrNone(nil, 1))
}

func TestStrToInt(t *testing.T) {
	res := StrToInt("1234")
	require.NotNil(t, res)
	assert.Equal(t, 1234, *res)

	res = StrToInt("1,234,567")
	require.NotNil(t, res)
	assert.Equal(t, 1234567, *res)

	res = StrToInt(float64(42))
	require.NotNil(t, res)
	assert.Equal(t, 42, *res)

	assert.Nil(t, StrToInt("many"))
	assert.Nil(t, StrToInt(""))
	assert.Nil(t, StrToInt(nil))
}

func TestUnifiedStrdate(t *testing.T) {
	assert.Equal(t, "20110914", UnifiedStrdate("20110914"))
	assert.Equal(t, "20110914", UnifiedStrdate("2011-09-14"))
	assert.Equal(t, "20110914", UnifiedStrdate("2011/09/14"))
	assert.Equal(t, "20110914", UnifiedStrdate("September 14, 2011"))
	assert.Equal(t, "", UnifiedStrdate("not a date"))
	assert.Equal(t, "", UnifiedStrdate(""))
}

func TestParseDuration(t *testing.T) {
	res := ParseDuration("1:00")
	require.NotNil(t, res)
	assert.Equal(t, 60.0, *res)

	res = ParseDuration("1:02:03")
	require.NotNil(t, res)
	assert.Equal(t, 3723.0, *res)

	res = ParseDuration("90")
	require.NotNil(t, res)
	assert.Equal(t, 90.0, *res)

	res = ParseDuration("248.667")
	require.NotNil(t, res)
	assert.InDelta(t, 248.667, *res, 0.0001)

	assert.Nil(t, ParseDuration(""))
	assert.Nil(t, ParseDuration("soon"))
	assert.Nil(t, ParseDuration("1:2:3:4"))
}

func TestDetermineExt(t *testing.T) {
	assert.Equal(t, "mp4", DetermineExt("http://x/a.mp4"))
	assert.Equal(t, "mp4", DetermineExt("http://x/a.mp4?token=abc"))
	assert.Equal(t, "m3u8", DetermineExt("http://x/playlist.m3u8#frag"))
	assert.Equal(t, "", DetermineExt("http://x/no-extension"))
	assert.Equal(t, "", DetermineExt("http://x/trailing."))
	assert.Equal(t, "", DetermineExt(""))
}
