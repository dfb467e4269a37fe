package utils

import (
	"sort"

	"github.com/samber/lo"
	"github.com/vidprobe/vidprobe"
)

// SortFormats orders formats in place, best quality first: height, then
// width, then bitrate, all descending. A format with an unknown dimension
// ranks below every format where it is known. Formats that compare equal
// keep their encounter order.
func SortFormats(formats []vidprobe.Format) {
	sort.SliceStable(formats, func(i, j int) bool {
		a, b := formats[i], formats[j]
		if c := compareOptional(a.Height, b.Height); c != 0 {
			return c > 0
		}
		if c := compareOptional(a.Width, b.Width); c != 0 {
			return c > 0
		}
		return compareOptional(a.Bitrate, b.Bitrate) > 0
	})
}

// FilterMaxResolution drops formats that exceed res in either dimension.
// Formats with unknown dimensions are kept.
func FilterMaxResolution(formats []vidprobe.Format, res Resolution) []vidprobe.Format {
	return lo.Filter(formats, func(f vidprobe.Format, _ int) bool {
		if f.Height != nil && *f.Height > res.Height {
			return false
		}
		if f.Width != nil && *f.Width > res.Width {
			return false
		}
		return true
	})
}

func compareOptional(a, b *int) int {
	av, bv := -1, -1
	if a != nil {
		av = *a
	}
	if b != nil {
		bv = *b
	}

	switch {
	case av > bv:
		return 1
	case av < bv:
		return -1
	default:
		return 0
	}
}
