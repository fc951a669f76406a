package accumulators

import (
	"podcast-metrics/internal/models"
)

//go:generate mockgen -source=classifier.go -destination=./mocks/classifier_mock.go -package=mocks
type DownloadClassifier interface {
	// Classify converts a deduplicated coverage length and the episode's
	// known size into a Full/Partial/None verdict.
	Classify(coverageBytes, episodeSize int64) (models.DownloadClass, error)
}

type thresholdClassifier struct {
	// threshold is the fraction of the episode size that counts as a full
	// download. Some clients omit trailing bytes, so 1.0 is too strict;
	// 0.95 is the recommended setting.
	threshold float64
}

func NewThresholdClassifier(threshold float64) (DownloadClassifier, error) {
	if threshold <= 0 || threshold > 1 {
		return nil, errInvalidThreshold(threshold)
	}
	return &thresholdClassifier{threshold: threshold}, nil
}

func (c *thresholdClassifier) Classify(coverageBytes, episodeSize int64) (models.DownloadClass, error) {
	if episodeSize <= 0 {
		return models.ClassNone, errMissingEpisodeSize(episodeSize)
	}

	if coverageBytes <= 0 {
		return models.ClassNone, nil
	}
	if float64(coverageBytes) >= c.threshold*float64(episodeSize) {
		return models.ClassFull, nil
	}
	return models.ClassPartial, nil
}
