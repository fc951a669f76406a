package ingestors

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"podcast-metrics/internal/episodes"
	"podcast-metrics/internal/events"
	"podcast-metrics/internal/models"
	"podcast-metrics/internal/parsers"
	"podcast-metrics/internal/shared/loggers"
	"podcast-metrics/internal/streams"

	"github.com/klauspost/compress/gzip"
)

// maxLineBytes bounds a single log line. Combined-format lines with long
// user agents stay well under this.
const maxLineBytes = 1 << 20

// IngestResult represents the outcome of reading one set of access logs.
type IngestResult struct {
	FilesRead       int
	LinesRead       int
	ParseFailures   int
	UnresolvedPaths int
	EventsProduced  int
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// IngestLogs reads the given access-log files, parses every line and
	// publishes one request event per successful episode GET. Malformed
	// lines and paths that are not episode assets are counted, not fatal;
	// an unreadable file is.
	IngestLogs(ctx context.Context, paths []string) (*IngestResult, error)
}

type ingestionService struct {
	parser          parsers.AccessLogParser
	resolver        episodes.Resolver
	requestProducer streams.RequestProducer
	runSummarizer   RunSummarizer
}

func NewIngestionService(parser parsers.AccessLogParser, resolver episodes.Resolver, requestProducer streams.RequestProducer, runSummarizer RunSummarizer) IngestionService {
	return &ingestionService{
		parser:          parser,
		resolver:        resolver,
		requestProducer: requestProducer,
		runSummarizer:   runSummarizer,
	}
}

// DiscoverLogFiles lists files in dir whose name starts with prefix, sorted
// by name. Rotated and gzipped files (access.log.1, access.log.2.gz) are
// included.
func DiscoverLogFiles(dir, prefix string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errInternalLogFileReadFailed(dir, err)
	}

	var paths []string
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			continue
		}
		if strings.HasPrefix(dirEntry.Name(), prefix) {
			paths = append(paths, filepath.Join(dir, dirEntry.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, errNoLogFilesFound(dir, prefix)
	}

	sort.Strings(paths)
	return paths, nil
}

func (s *ingestionService) IngestLogs(ctx context.Context, paths []string) (*IngestResult, error) {
	result := &IngestResult{}
	for _, path := range paths {
		if err := s.ingestFile(ctx, path, result); err != nil {
			return nil, err
		}
		result.FilesRead++
		metricLogFilesReadTotal.Inc()
	}
	return result, nil
}

func (s *ingestionService) ingestFile(ctx context.Context, path string, result *IngestResult) error {
	logger := loggers.Ctx(ctx)
	logger.Debug().Str(loggers.FieldLogFile, path).Msg("started ingesting log file")

	file, err := os.Open(path)
	if err != nil {
		return errInternalLogFileReadFailed(path, err)
	}
	defer file.Close()

	var reader io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		gzipReader, err := gzip.NewReader(file)
		if err != nil {
			return errInternalLogFileReadFailed(path, err)
		}
		defer gzipReader.Close()
		reader = gzipReader
	}

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		result.LinesRead++
		metricLinesReadTotal.Inc()

		if err := s.ingestLine(ctx, line, result); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return errInternalLogFileReadFailed(path, err)
	}
	return nil
}

func (s *ingestionService) ingestLine(ctx context.Context, line string, result *IngestResult) error {
	logger := loggers.Ctx(ctx)

	record, err := s.parser.ParseLine(line)
	if err != nil {
		result.ParseFailures++
		logger.Debug().Err(err).Msg("skipped malformed log line")
		return nil
	}

	s.runSummarizer.Observe(record.UserAgent)

	asset, ok := s.resolver.Resolve(record.Path)
	if !ok {
		result.UnresolvedPaths++
		metricUnresolvedPathsTotal.Inc()
		return nil
	}

	// Only completed GET responses deliver audio bytes. HEAD probes and
	// redirects are resolved but contribute nothing.
	if record.Method != http.MethodGet || !record.IsSuccess() {
		return nil
	}

	event := &events.EpisodeRequestEvent{
		ClientIP:    record.ClientIP,
		EpisodeID:   asset.ID,
		Date:        models.DateOf(record.Time),
		EpisodeSize: asset.SizeBytes,
		Interval:    record.TransferredInterval(),
		BytesSent:   record.BytesSent,
	}
	if err := s.requestProducer.Produce(ctx, event); err != nil {
		return errInternalProducerFailed(err)
	}
	result.EventsProduced++
	metricRequestEventsProducedTotal.Inc()
	return nil
}
