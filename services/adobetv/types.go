package adobetv

// The episode endpoint wraps its records in a data array. The records
// themselves are kept schema-less: the remote service owns their shape and
// we only probe the keys we map.
type episodeEnvelope struct {
	Data []map[string]any `json:"data"`
}
