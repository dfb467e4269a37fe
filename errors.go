package vidprobe

import "github.com/ansel1/merry/v2"

// ErrNoMatch signals that a URL does not belong to an extractor. It is a
// routing signal, not a failure: another extractor may still claim the URL.
var ErrNoMatch = merry.Sentinel("no extractor matches this URL")

// ErrFetchFailure covers transport and JSON decoding problems while
// retrieving a remote record. Fatal to the current extraction, never retried.
var ErrFetchFailure = merry.Sentinel("unable to fetch media metadata")

// ErrMissingField is returned when a required key is absent from an
// otherwise valid remote record. Optional fields degrade to absent instead.
var ErrMissingField = merry.Sentinel("required field missing from media record")
