package episodes

import (
	"fmt"
	"os"
	"strings"

	"podcast-metrics/internal/models"
	"podcast-metrics/internal/shared/validators"

	"gopkg.in/yaml.v3"
)

// manifestFile is the on-disk episode metadata format:
//
//	episodes:
//	  - id: "001"
//	    path: /episode-001.m4a
//	    size_bytes: 61231072
type manifestFile struct {
	Episodes []manifestEntry `yaml:"episodes" validate:"required,min=1,dive"`
}

type manifestEntry struct {
	ID   string `yaml:"id" validate:"required"`
	Path string `yaml:"path" validate:"required,startswith=/"`
	// SizeBytes may be zero when the file size is not yet known; matching
	// traffic is then surfaced as missing metadata instead of classified.
	SizeBytes int64 `yaml:"size_bytes" validate:"gte=0"`
}

// LoadManifest reads and validates the episode metadata manifest.
var LoadManifest = func(path string) ([]*models.EpisodeAsset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errManifestReadFailed(path, err)
	}

	var file manifestFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errManifestInvalid(fmt.Sprintf("not valid yaml: %v", err), err)
	}

	validate := validators.New()
	if err := validate.Struct(&file); err != nil {
		var details []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				details = append(details, fmt.Sprintf("%s (%s)", strings.ToLower(e.StructNamespace()), e.Tag()))
			}
		}
		return nil, errManifestInvalid(strings.Join(details, ", "), err)
	}

	assets := make([]*models.EpisodeAsset, 0, len(file.Episodes))
	seenIDs := make(map[string]bool, len(file.Episodes))
	seenPaths := make(map[string]bool, len(file.Episodes))
	for _, entry := range file.Episodes {
		if seenIDs[entry.ID] {
			return nil, errManifestInvalid(fmt.Sprintf("duplicate episode id %q", entry.ID), nil)
		}
		if seenPaths[entry.Path] {
			return nil, errManifestInvalid(fmt.Sprintf("duplicate episode path %q", entry.Path), nil)
		}
		seenIDs[entry.ID] = true
		seenPaths[entry.Path] = true

		assets = append(assets, &models.EpisodeAsset{
			ID:        entry.ID,
			Path:      entry.Path,
			SizeBytes: entry.SizeBytes,
		})
	}

	return assets, nil
}
