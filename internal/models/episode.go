package models

// EpisodeAsset is one audio file: a stable episode identifier, its canonical
// request path and its total size in bytes. Reference data, never mutated.
type EpisodeAsset struct {
	ID        string
	Path      string
	SizeBytes int64
}

// HasSize reports whether size metadata is present. An asset without a size
// cannot be classified and is surfaced as a configuration error.
func (a *EpisodeAsset) HasSize() bool {
	return a.SizeBytes > 0
}
