package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"podcast-metrics/internal/accumulators"
	"podcast-metrics/internal/aggregators"
	"podcast-metrics/internal/episodes"
	"podcast-metrics/internal/events"
	internalhttp "podcast-metrics/internal/http"
	"podcast-metrics/internal/ingestors"
	"podcast-metrics/internal/models"
	"podcast-metrics/internal/parsers"
	"podcast-metrics/internal/reports"
	"podcast-metrics/internal/shared/configs"
	"podcast-metrics/internal/shared/filestorages"
	"podcast-metrics/internal/shared/loggers"
	"podcast-metrics/internal/shared/ulid"
	"podcast-metrics/internal/stores"
	"podcast-metrics/internal/streams"
)

// App wires the pipeline together and owns one processing run.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	runID     string

	metricsServer *http.Server

	ingestionService   ingestors.IngestionService
	runSummarizer      ingestors.RunSummarizer
	requestQueue       *streams.PartitionedQueue[events.EpisodeRequestEvent]
	coverageConsumer   streams.CoverageConsumer
	aggregationService aggregators.AggregationService
	dailyCountersStore stores.DailyCountersStore
	runReportStore     stores.RunReportStore
	csvExporter        reports.CSVExporter
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	runID := ulid.NewULID()

	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger = appLogger.With().
		Str(loggers.FieldApp, "podcast-metrics").
		Str(loggers.FieldRunID, runID).
		Logger()

	// Episode metadata
	assets, err := episodes.LoadManifest(config.Episodes.ManifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load episode manifest: %w", err)
	}
	resolver := episodes.NewManifestResolver(assets)

	// Durable counter storage
	var fileStorage filestorages.FileStorage
	if config.Storage.RootDir != "" {
		fileStorage, err = filestorages.NewFileStorage(config.Storage.RootDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
	}

	var dailyCountersStore stores.DailyCountersStore
	switch config.Storage.Backend {
	case "postgres":
		db, err := stores.OpenPostgres(config.Storage.Postgres, appLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		dailyCountersStore = stores.NewPostgresCountersStore(db)
	default:
		dailyCountersStore = stores.NewDailyCountersStore(fileStorage)
	}

	var runReportStore stores.RunReportStore
	if fileStorage != nil {
		runReportStore = stores.NewRunReportStore(fileStorage)
	}

	// Accumulation stream
	requestQueue := streams.NewPartitionedQueue[events.EpisodeRequestEvent]()
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	coverageConsumer := streams.NewCoverageConsumer(requestQueue, consumerLogger)

	// Aggregation
	classifier, err := accumulators.NewThresholdClassifier(config.Classification.FullThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize classifier: %w", err)
	}
	aggregationService := aggregators.NewAggregationService(classifier, aggregators.NewDailyRolluper(), dailyCountersStore)

	// Ingestion
	runSummarizer := ingestors.NewUserAgentSummarizer()
	requestProducer := streams.NewRequestProducer(requestQueue)
	ingestionService := ingestors.NewIngestionService(parsers.NewCombinedLogParser(), resolver, requestProducer, runSummarizer)

	app := &App{
		config:             config,
		appLogger:          appLogger,
		runID:              runID,
		ingestionService:   ingestionService,
		runSummarizer:      runSummarizer,
		requestQueue:       requestQueue,
		coverageConsumer:   coverageConsumer,
		aggregationService: aggregationService,
		dailyCountersStore: dailyCountersStore,
		runReportStore:     runReportStore,
		csvExporter:        reports.NewCSVExporter(dailyCountersStore),
	}

	if config.Server.MetricsPort > 0 {
		httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
		app.metricsServer = &http.Server{
			Addr:              fmt.Sprintf(":%d", config.Server.MetricsPort),
			Handler:           internalhttp.NewRouter(httpLogger),
			ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		}
	}

	return app, nil
}

// Run executes one processing run: ingest the given log files (or the
// configured directory when none are given), accumulate coverage, classify
// and upsert daily counters, then persist the run report. It returns the
// report even when persisting it failed.
func (app *App) Run(ctx context.Context, logPaths []string) (*models.RunReport, error) {
	ctx = app.appLogger.WithContext(ctx)
	startedAt := time.Now().UTC()

	app.appLogger.Info().
		Str("storage_backend", app.config.Storage.Backend).
		Float64("full_threshold", app.config.Classification.FullThreshold).
		Msg("starting processing run")

	app.startMetricsServer()
	defer app.stopMetricsServer()

	if len(logPaths) == 0 {
		var err error
		logPaths, err = ingestors.DiscoverLogFiles(app.config.Logs.Dir, app.config.Logs.FilePrefix)
		if err != nil {
			return nil, err
		}
	}

	app.coverageConsumer.Start(ctx)

	ingestResult, err := app.ingestionService.IngestLogs(ctx, logPaths)
	if err != nil {
		app.requestQueue.Close()
		return nil, err
	}

	app.requestQueue.Close()
	coverages := app.coverageConsumer.Drain()

	aggregateResult, svcErr := app.aggregationService.Aggregate(ctx, coverages)
	if svcErr != nil {
		return nil, svcErr
	}

	report := &models.RunReport{
		RunID:                   app.runID,
		StartedAt:               startedAt,
		FinishedAt:              time.Now().UTC(),
		FilesRead:               ingestResult.FilesRead,
		LinesRead:               ingestResult.LinesRead,
		ParseFailures:           ingestResult.ParseFailures,
		UnresolvedPaths:         ingestResult.UnresolvedPaths,
		MissingMetadataEpisodes: aggregateResult.MissingMetadataEpisodes,
		ClientsClassified:       aggregateResult.ClientsClassified,
		EpisodeDaysUpserted:     aggregateResult.EpisodeDaysUpserted,
		FullDownloads:           aggregateResult.FullDownloads,
		PartialDownloads:        aggregateResult.PartialDownloads,
	}

	app.runSummarizer.LogSummary(ctx)
	app.logRunSummary(report)

	if app.runReportStore != nil {
		if err := app.runReportStore.Put(ctx, report); err != nil {
			return report, fmt.Errorf("failed to persist run report: %w", err)
		}
	}

	if app.config.Reports.CSVDir != "" {
		if _, err := app.csvExporter.Export(ctx, app.config.Reports.CSVDir); err != nil {
			return report, err
		}
	}

	return report, nil
}

// ExportCSV writes the stored counters to a CSV file without processing logs.
func (app *App) ExportCSV(ctx context.Context, dir string) (string, error) {
	ctx = app.appLogger.WithContext(ctx)
	return app.csvExporter.Export(ctx, dir)
}

func (app *App) logRunSummary(report *models.RunReport) {
	app.appLogger.Info().
		Int("files_read", report.FilesRead).
		Int("lines_read", report.LinesRead).
		Int("parse_failures", report.ParseFailures).
		Int("unresolved_paths", report.UnresolvedPaths).
		Int("clients_classified", report.ClientsClassified).
		Int("episode_days_upserted", report.EpisodeDaysUpserted).
		Int("full_downloads", report.FullDownloads).
		Int("partial_downloads", report.PartialDownloads).
		Strs("missing_metadata_episodes", report.MissingMetadataEpisodes).
		Dur(loggers.FieldDuration, report.FinishedAt.Sub(report.StartedAt)).
		Msg("processing run completed")
}

func (app *App) startMetricsServer() {
	if app.metricsServer == nil {
		return
	}
	app.appLogger.Info().Str("addr", app.metricsServer.Addr).Msg("starting metrics listener")
	go func() {
		if err := app.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.appLogger.Error().Err(err).Msg("metrics listener failed")
		}
	}()
}

func (app *App) stopMetricsServer() {
	if app.metricsServer == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.metricsServer.Shutdown(shutdownCtx); err != nil {
		app.appLogger.Error().Err(err).Msg("metrics listener shutdown failed")
	}
}
