package utils

import (
	"fmt"
)

var (
	Resolution4K   = MustResolution("3840x2160")
	Resolution1080 = MustResolution("1920x1080")
	Resolution720  = MustResolution("1280x720")
)

type Resolution struct {
	Width  int
	Height int
}

func ResolutionFromString(str string) (*Resolution, error) {
	var r Resolution
	_, err := fmt.Sscanf(str, "%dx%d", &r.Width, &r.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to parse resolution string %s, err: %v", str, err)
	}
	return &r, nil
}

func MustResolution(str string) *Resolution {
	r, err := ResolutionFromString(str)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}
