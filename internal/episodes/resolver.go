package episodes

import (
	"regexp"

	"podcast-metrics/internal/models"
)

// episodePathPattern is the serving convention for episode audio files:
// /episode-<number>.<extension>. Paths matching it resolve to an episode id
// even when the manifest has no entry, so that missing size metadata can be
// reported instead of the traffic silently vanishing.
var episodePathPattern = regexp.MustCompile(`^/episode-(\d+)\.(m4a|mp3)$`)

//go:generate mockgen -source=resolver.go -destination=./mocks/resolver_mock.go -package=mocks
type Resolver interface {
	// Resolve maps a request path to an episode asset, or reports that the
	// path is not an episode request. Pure lookup, read-only for a run.
	Resolve(path string) (*models.EpisodeAsset, bool)
}

type manifestResolver struct {
	byPath map[string]*models.EpisodeAsset
}

func NewManifestResolver(assets []*models.EpisodeAsset) Resolver {
	byPath := make(map[string]*models.EpisodeAsset, len(assets))
	for _, asset := range assets {
		byPath[asset.Path] = asset
	}
	return &manifestResolver{byPath: byPath}
}

func (r *manifestResolver) Resolve(path string) (*models.EpisodeAsset, bool) {
	if asset, ok := r.byPath[path]; ok {
		return asset, true
	}

	groups := episodePathPattern.FindStringSubmatch(path)
	if groups == nil {
		return nil, false
	}

	// Known episode path shape but no manifest entry: resolve without a
	// size so the caller surfaces the missing metadata.
	return &models.EpisodeAsset{ID: groups[1], Path: path}, true
}
