package vidprobe

// Format describes one downloadable rendition of a media item.
type Format struct {
	URL      string `json:"url"`
	FormatID string `json:"format_id,omitempty"`
	Width    *int   `json:"width,omitempty"`
	Height   *int   `json:"height,omitempty"`
	// Bitrate is the total bitrate in kbps
	Bitrate *int `json:"bitrate,omitempty"`
}

// SubtitleTrack is a single subtitle file for one language.
// A language can have more than one track.
type SubtitleTrack struct {
	URL string `json:"url"`
	Ext string `json:"ext"`
}

// MediaInfo is the normalized metadata record produced by an extractor.
// Optional fields stay at their zero value (or nil) when the source
// record does not carry them.
type MediaInfo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	// UploadDate is formatted as YYYYMMDD
	UploadDate string `json:"upload_date,omitempty"`
	// Duration is in seconds
	Duration  *float64                   `json:"duration,omitempty"`
	ViewCount *int                       `json:"view_count,omitempty"`
	Formats   []Format                   `json:"formats"`
	Subtitles map[string][]SubtitleTrack `json:"subtitles,omitempty"`
}
