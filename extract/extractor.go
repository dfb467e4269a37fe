// Package extract routes media URLs to the extractor that owns them.
package extract

import (
	"github.com/ansel1/merry/v2"
	"github.com/samber/lo"
	"github.com/vidprobe/vidprobe"
)

// Extractor recognizes URLs of one site and converts that site's API
// response into a normalized media record. Implementations are stateless
// and safe for concurrent use.
type Extractor interface {
	Name() string
	// Match reports whether this extractor owns the URL. It must not
	// perform any network access.
	Match(rawURL string) bool
	Extract(rawURL string) (*vidprobe.MediaInfo, error)
}

// Registry tries extractors in registration order and dispatches to the
// first one that matches.
type Registry struct {
	extractors []Extractor
}

func NewRegistry(extractors ...Extractor) *Registry {
	return &Registry{extractors: extractors}
}

func (r *Registry) Names() []string {
	return lo.Map(r.extractors, func(e Extractor, _ int) string {
		return e.Name()
	})
}

// Extract dispatches rawURL. When no registered extractor matches, it
// returns ErrNoMatch so the caller can treat the URL as unsupported rather
// than failed.
func (r *Registry) Extract(rawURL string) (*vidprobe.MediaInfo, error) {
	for _, e := range r.extractors {
		if !e.Match(rawURL) {
			continue
		}
		return e.Extract(rawURL)
	}

	return nil, merry.Wrap(vidprobe.ErrNoMatch,
		merry.WithMessagef("no extractor matches %s", rawURL))
}
