package adobetv

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vidprobe/vidprobe"
	"github.com/vidprobe/vidprobe/services/httpjson"
)

const episodeRecordJSON = `{
	"id": 10981,
	"title": "Quick Tip",
	"videos": [
		{"url": "http://x/q-720.mp4", "width": 1280, "height": 720, "video_data_rate": 1500}
	],
	"duration": "1:00",
	"start_date": "20110914",
	"playcount": "1234"
}`

func decodeRecord(t *testing.T, raw string) map[string]any {
	t.Helper()
	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &record))
	return record
}

func TestMapEpisode(t *testing.T) {
	info, err := mapEpisode(decodeRecord(t, episodeRecordJSON))
	require.NoError(t, err)

	assert.Equal(t, "10981", info.ID)
	assert.Equal(t, "Quick Tip", info.Title)
	assert.Equal(t, "20110914", info.UploadDate)
	require.NotNil(t, info.Duration)
	assert.Equal(t, 60.0, *info.Duration)
	require.NotNil(t, info.ViewCount)
	assert.Equal(t, 1234, *info.ViewCount)

	require.Len(t, info.Formats, 1)
	f := info.Formats[0]
	assert.Equal(t, "http://x/q-720.mp4", f.URL)
	assert.Equal(t, "720", f.FormatID)
	require.NotNil(t, f.Width)
	assert.Equal(t, 1280, *f.Width)
	require.NotNil(t, f.Height)
	assert.Equal(t, 720, *f.Height)
	require.NotNil(t, f.Bitrate)
	assert.Equal(t, 1500, *f.Bitrate)
}

func TestMapEpisodePrefersQualityLevel(t *testing.T) {
	record := decodeRecord(t, `{
		"id": 1,
		"title": "t",
		"videos": [{"url": "http://x/q-720.mp4", "quality_level": "1080p"}]
	}`)

	info, err := mapEpisode(record)
	require.NoError(t, err)
	require.Len(t, info.Formats, 1)
	assert.Equal(t, "1080p", info.Formats[0].FormatID)
}

func TestMapEpisodeMalformedNumbersDegradeToAbsent(t *testing.T) {
	record := decodeRecord(t, `{
		"id": 1,
		"title": "t",
		"videos": [{"url": "http://x/a.mp4", "height": "N/A"}],
		"playcount": "many"
	}`)

	info, err := mapEpisode(record)
	require.NoError(t, err)
	assert.Nil(t, info.ViewCount)
	require.Len(t, info.Formats, 1)
	assert.Nil(t, info.Formats[0].Height)
}

func TestMapEpisodeMissingRequiredFields(t *testing.T) {
	_, err := mapEpisode(decodeRecord(t, `{"id": 1, "videos": []}`))
	assert.ErrorIs(t, err, vidprobe.ErrMissingField)

	_, err = mapEpisode(decodeRecord(t, `{"id": 1, "title": "t"}`))
	assert.ErrorIs(t, err, vidprobe.ErrMissingField)

	_, err = mapEpisode(decodeRecord(t, `{"title": "t", "videos": []}`))
	assert.ErrorIs(t, err, vidprobe.ErrMissingField)

	_, err = mapEpisode(decodeRecord(t, `{"id": 1, "title": "t", "videos": [{"width": 100}]}`))
	assert.ErrorIs(t, err, vidprobe.ErrMissingField)
}

func TestMapEpisodeIsIdempotent(t *testing.T) {
	record := decodeRecord(t, episodeRecordJSON)

	first, err := mapEpisode(record)
	require.NoError(t, err)
	second, err := mapEpisode(record)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestEpisodeExtractorEndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v4/episode/get/", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "en", q.Get("language"))
		assert.Equal(t, "the-show", q.Get("show_urlname"))
		assert.Equal(t, "the-episode", q.Get("urlname"))
		assert.Equal(t, "standard", q.Get("disclosure"))

		_, _ = w.Write([]byte(`{"data": [` + episodeRecordJSON + `]}`))
	}))
	defer srv.Close()

	client := httpjson.NewClient("", 5*time.Second)
	e := NewEpisodeExtractor(client, srv.URL)

	require.True(t, e.Match("http://tv.adobe.com/watch/the-show/the-episode/"))

	info, err := e.Extract("http://tv.adobe.com/watch/the-show/the-episode/")
	require.NoError(t, err)
	assert.Equal(t, "10981", info.ID)
	assert.Equal(t, "Quick Tip", info.Title)
}

func TestEpisodeExtractorEmptyDataIsFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer srv.Close()

	e := NewEpisodeExtractor(httpjson.NewClient("", 5*time.Second), srv.URL)
	_, err := e.Extract("http://tv.adobe.com/watch/the-show/the-episode/")
	assert.ErrorIs(t, err, vidprobe.ErrFetchFailure)
	assert.Contains(t, err.Error(), "the-episode")
}

func TestEpisodeExtractorServerErrorIsFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	e := NewEpisodeExtractor(httpjson.NewClient("", 5*time.Second), srv.URL)
	_, err := e.Extract("http://tv.adobe.com/watch/the-show/the-episode/")
	assert.ErrorIs(t, err, vidprobe.ErrFetchFailure)
}

func TestEpisodeExtractorDeclinesForeignURL(t *testing.T) {
	e := NewEpisodeExtractor(httpjson.NewClient("", 5*time.Second), "")
	assert.False(t, e.Match("http://example.com/watch/a/b"))

	_, err := e.Extract("http://example.com/watch/a/b")
	assert.ErrorIs(t, err, vidprobe.ErrNoMatch)
}
