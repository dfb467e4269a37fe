package adobetv

import (
	"fmt"

	"github.com/ansel1/merry/v2"
	"github.com/vidprobe/vidprobe"
	"github.com/vidprobe/vidprobe/services/httpjson"
	"github.com/vidprobe/vidprobe/utils"
)

// VideoExtractor handles direct video pages on video.tv.adobe.com.
type VideoExtractor struct {
	client *httpjson.Client
	// endpoint builds the JSON endpoint for a matched page URL
	endpoint func(rawURL string) string
}

func NewVideoExtractor(client *httpjson.Client) *VideoExtractor {
	return &VideoExtractor{
		client: client,
		endpoint: func(rawURL string) string {
			return rawURL + "?format=json"
		},
	}
}

func (e *VideoExtractor) Name() string {
	return "adobetv:video"
}

func (e *VideoExtractor) Match(rawURL string) bool {
	_, ok := MatchVideoURL(rawURL)
	return ok
}

// Extract fetches the page's JSON rendition and maps it.
func (e *VideoExtractor) Extract(rawURL string) (*vidprobe.MediaInfo, error) {
	id, ok := MatchVideoURL(rawURL)
	if !ok {
		return nil, merry.Wrap(vidprobe.ErrNoMatch,
			merry.WithMessagef("not an adobetv video URL: %s", rawURL))
	}

	record, err := e.client.FetchJSON(e.endpoint(rawURL), id)
	if err != nil {
		return nil, merry.Wrap(vidprobe.ErrFetchFailure, merry.WithCause(err),
			merry.WithMessagef("%s: %v", id, err))
	}

	return mapVideo(id, record)
}

// mapVideo is a pure transform from a raw video record to a MediaInfo.
func mapVideo(id string, record map[string]any) (*vidprobe.MediaInfo, error) {
	title := stringOrEmpty(record["title"])
	if title == "" {
		return nil, missingField(id, "title")
	}

	info := &vidprobe.MediaInfo{
		ID:          id,
		Title:       title,
		Description: stringOrEmpty(record["description"]),
	}
	if video, ok := record["video"].(map[string]any); ok {
		info.Thumbnail = stringOrEmpty(video["poster"])
	}

	sources, ok := record["sources"].([]any)
	if !ok {
		return nil, missingField(id, "sources")
	}

	formats := make([]vidprobe.Format, 0, len(sources))
	var maxDuration *float64
	for _, raw := range sources {
		source, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		src := stringOrEmpty(source["src"])
		if src == "" {
			return nil, missingField(id, "sources[].src")
		}

		height := utils.IntOrNone(source["height"])
		formatID := utils.DetermineExt(src)
		if height != nil {
			formatID = fmt.Sprintf("%s-%d", formatID, *height)
		}

		formats = append(formats, vidprobe.Format{
			URL:      src,
			FormatID: formatID,
			Width:    utils.IntOrNone(source["width"]),
			Height:   height,
			Bitrate:  utils.IntOrNone(source["bitrate"]),
		})

		// The sources report their duration in milliseconds and disagree
		// between renditions. The longest one is treated as authoritative.
		if d := utils.FloatOrNone(source["duration"], 1000); d != nil {
			if maxDuration == nil || *d > *maxDuration {
				maxDuration = d
			}
		}
	}
	utils.SortFormats(formats)
	info.Formats = formats
	info.Duration = maxDuration

	if translations, ok := record["translations"].([]any); ok {
		subtitles := map[string][]vidprobe.SubtitleTrack{}
		for _, raw := range translations {
			translation, ok := raw.(map[string]any)
			if !ok {
				continue
			}

			langID := stringOrEmpty(translation["language_w3c"])
			if langID == "" {
				langID = vidprobe.LongNameToCode(stringOrEmpty(translation["language_medium"]))
			}
			if langID == "" {
				continue
			}

			vttPath := stringOrEmpty(translation["vttPath"])
			if vttPath == "" {
				return nil, missingField(id, "translations[].vttPath")
			}

			subtitles[langID] = append(subtitles[langID], vidprobe.SubtitleTrack{
				URL: vttPath,
				Ext: "vtt",
			})
		}
		if len(subtitles) > 0 {
			info.Subtitles = subtitles
		}
	}

	return info, nil
}
