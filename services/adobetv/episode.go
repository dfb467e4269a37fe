package adobetv

import (
	"fmt"
	"strings"

	"github.com/ansel1/merry/v2"
	"github.com/vidprobe/vidprobe"
	"github.com/vidprobe/vidprobe/services/httpjson"
	"github.com/vidprobe/vidprobe/utils"
)

const DefaultBaseURL = "http://tv.adobe.com"

// EpisodeExtractor handles watch pages on tv.adobe.com.
type EpisodeExtractor struct {
	client  *httpjson.Client
	baseURL string
}

// NewEpisodeExtractor returns an extractor talking to baseURL, or to the
// live site when baseURL is empty.
func NewEpisodeExtractor(client *httpjson.Client, baseURL string) *EpisodeExtractor {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &EpisodeExtractor{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (e *EpisodeExtractor) Name() string {
	return "adobetv"
}

func (e *EpisodeExtractor) Match(rawURL string) bool {
	_, ok := MatchEpisodeURL(rawURL)
	return ok
}

// Extract performs the single fetch against the episode endpoint and maps
// the first returned record.
func (e *EpisodeExtractor) Extract(rawURL string) (*vidprobe.MediaInfo, error) {
	ref, ok := MatchEpisodeURL(rawURL)
	if !ok {
		return nil, merry.Wrap(vidprobe.ErrNoMatch,
			merry.WithMessagef("not an adobetv episode URL: %s", rawURL))
	}

	endpoint := fmt.Sprintf(
		"%s/api/v4/episode/get/?language=%s&show_urlname=%s&urlname=%s&disclosure=standard",
		e.baseURL, ref.Language, ref.Show, ref.Episode)

	var envelope episodeEnvelope
	if err := e.client.FetchInto(endpoint, ref.Episode, &envelope); err != nil {
		return nil, merry.Wrap(vidprobe.ErrFetchFailure, merry.WithCause(err),
			merry.WithMessagef("%s: %v", ref.Episode, err))
	}
	if len(envelope.Data) == 0 {
		return nil, merry.Wrap(vidprobe.ErrFetchFailure,
			merry.WithMessagef("%s: episode endpoint returned no records", ref.Episode))
	}

	return mapEpisode(envelope.Data[0])
}

// episodeFieldMappings lists the optional scalar fields of an episode
// record: raw key, coercion, destination. Required fields (id, title,
// videos) are checked separately in mapEpisode.
var episodeFieldMappings = []fieldMapping{
	{"description", func(info *vidprobe.MediaInfo, v any) {
		info.Description = stringOrEmpty(v)
	}},
	{"thumbnail", func(info *vidprobe.MediaInfo, v any) {
		info.Thumbnail = stringOrEmpty(v)
	}},
	{"start_date", func(info *vidprobe.MediaInfo, v any) {
		info.UploadDate = utils.UnifiedStrdate(stringOrEmpty(v))
	}},
	{"duration", func(info *vidprobe.MediaInfo, v any) {
		info.Duration = looseDuration(v)
	}},
	{"playcount", func(info *vidprobe.MediaInfo, v any) {
		info.ViewCount = utils.StrToInt(v)
	}},
}

// mapEpisode is a pure transform from a raw episode record to a MediaInfo.
func mapEpisode(record map[string]any) (*vidprobe.MediaInfo, error) {
	id := stringifyID(record["id"])
	if id == "" {
		return nil, missingField("episode", "id")
	}

	title := stringOrEmpty(record["title"])
	if title == "" {
		return nil, missingField(id, "title")
	}

	info := &vidprobe.MediaInfo{
		ID:    id,
		Title: title,
	}
	for _, m := range episodeFieldMappings {
		v, ok := record[m.key]
		if !ok || v == nil {
			continue
		}
		m.assign(info, v)
	}

	videos, ok := record["videos"].([]any)
	if !ok {
		return nil, missingField(id, "videos")
	}

	formats := make([]vidprobe.Format, 0, len(videos))
	for _, raw := range videos {
		source, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		u := stringOrEmpty(source["url"])
		if u == "" {
			return nil, missingField(id, "videos[].url")
		}

		formatID := stringOrEmpty(source["quality_level"])
		if formatID == "" {
			formatID = trailingURLToken(u)
		}

		formats = append(formats, vidprobe.Format{
			URL:      u,
			FormatID: formatID,
			Width:    utils.IntOrNone(source["width"]),
			Height:   utils.IntOrNone(source["height"]),
			Bitrate:  utils.IntOrNone(source["video_data_rate"]),
		})
	}
	utils.SortFormats(formats)
	info.Formats = formats

	return info, nil
}
