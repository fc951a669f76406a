package accumulators

import (
	"testing"

	"podcast-metrics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewThresholdClassifier_InvalidThreshold(t *testing.T) {
	t.Parallel()

	for _, threshold := range []float64{0, -0.5, 1.01, 2} {
		_, err := NewThresholdClassifier(threshold)
		assert.Error(t, err, "threshold %v should be rejected", threshold)
	}
}

func TestClassify_Verdicts(t *testing.T) {
	t.Parallel()

	classifier, err := NewThresholdClassifier(0.95)
	require.NoError(t, err)

	cases := []struct {
		name     string
		coverage int64
		size     int64
		want     models.DownloadClass
	}{
		{"zero coverage is none", 0, 200, models.ClassNone},
		{"exactly at threshold is full", 190, 200, models.ClassFull},
		{"complete file is full", 200, 200, models.ClassFull},
		{"half the file is partial", 50, 200, models.ClassPartial},
		{"just below threshold is partial", 189, 200, models.ClassPartial},
		{"single byte is partial", 1, 200, models.ClassPartial},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := classifier.Classify(tc.coverage, tc.size)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassify_MissingEpisodeSize(t *testing.T) {
	t.Parallel()

	classifier, err := NewThresholdClassifier(0.95)
	require.NoError(t, err)

	_, err = classifier.Classify(100, 0)
	assert.Error(t, err)

	_, err = classifier.Classify(100, -1)
	assert.Error(t, err)
}
