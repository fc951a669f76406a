package ingestors

import (
	"context"
	"sort"

	"podcast-metrics/internal/shared/loggers"

	"github.com/mileusna/useragent"
)

//go:generate mockgen -source=run_summarizer.go -destination=./mocks/run_summarizer_mock.go -package=mocks
type RunSummarizer interface {
	// Observe records one request's user agent. Not safe for concurrent use;
	// ingestion reads files from a single goroutine.
	Observe(rawUserAgent string)
	// LogSummary writes the per-family counts to the run log.
	LogSummary(ctx context.Context)
}

type userAgentSummarizer struct {
	familyCounts map[string]int64
}

func NewUserAgentSummarizer() RunSummarizer {
	return &userAgentSummarizer{familyCounts: make(map[string]int64)}
}

func (s *userAgentSummarizer) Observe(rawUserAgent string) {
	s.familyCounts[s.normalize(rawUserAgent)]++
}

func (s *userAgentSummarizer) LogSummary(ctx context.Context) {
	logger := loggers.Ctx(ctx)

	families := make([]string, 0, len(s.familyCounts))
	for family := range s.familyCounts {
		families = append(families, family)
	}
	sort.Slice(families, func(i, j int) bool {
		if s.familyCounts[families[i]] != s.familyCounts[families[j]] {
			return s.familyCounts[families[i]] > s.familyCounts[families[j]]
		}
		return families[i] < families[j]
	})

	for _, family := range families {
		logger.Info().
			Str("user_agent_family", family).
			Int64("requests", s.familyCounts[family]).
			Msg("user agent family observed")
	}
}

// normalize parses the user agent to its family name, or keeps the raw value
// when parsing yields nothing.
func (s *userAgentSummarizer) normalize(rawUserAgent string) string {
	if rawUserAgent == "" {
		return "unknown"
	}
	parsed := useragent.Parse(rawUserAgent)
	if parsed.Name != "" {
		return parsed.Name
	}
	return rawUserAgent
}
