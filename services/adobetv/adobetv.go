// Package adobetv extracts downloadable media metadata from the AdobeTV
// JSON APIs: episode pages on tv.adobe.com and direct video pages on
// video.tv.adobe.com.
package adobetv

import (
	"regexp"
	"strings"

	"github.com/orsinium-labs/enum"
	"github.com/samber/lo"
)

type SiteLanguage enum.Member[string]

// The watch URLs only ever carry one of these language segments. Anything
// else in that position makes the URL not ours.
var (
	SiteLangFR    = SiteLanguage{Value: "fr"}
	SiteLangDE    = SiteLanguage{Value: "de"}
	SiteLangES    = SiteLanguage{Value: "es"}
	SiteLangJP    = SiteLanguage{Value: "jp"}
	SiteLanguages = enum.New(SiteLangFR, SiteLangDE, SiteLangES, SiteLangJP)
)

// DefaultLanguage applies when the URL has no language segment.
const DefaultLanguage = "en"

var (
	episodeURLPattern = regexp.MustCompile(
		`^https?://tv\.adobe\.com/(?:(` + siteLanguageAlternation() + `)/)?watch/([^/?#]+)/([^/?#]+)`)
	videoURLPattern = regexp.MustCompile(`^https?://video\.tv\.adobe\.com/v/(\d+)`)
)

func siteLanguageAlternation() string {
	values := lo.Map(SiteLanguages.Members(), func(l SiteLanguage, _ int) string {
		return l.Value
	})
	return strings.Join(values, "|")
}

// MediaReference identifies one episode, as extracted from a watch URL.
type MediaReference struct {
	Language string
	Show     string
	Episode  string
}

// MatchEpisodeURL decides whether rawURL is an episode watch page and, if
// so, extracts its identifying segments.
func MatchEpisodeURL(rawURL string) (MediaReference, bool) {
	m := episodeURLPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return MediaReference{}, false
	}

	ref := MediaReference{
		Language: m[1],
		Show:     m[2],
		Episode:  m[3],
	}
	if ref.Language == "" {
		ref.Language = DefaultLanguage
	}
	return ref, true
}

// MatchVideoURL decides whether rawURL is a direct video page and, if so,
// extracts the numeric video id.
func MatchVideoURL(rawURL string) (string, bool) {
	m := videoURLPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}
