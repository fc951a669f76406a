package models

import "time"

// RunReport is the observability record of one processing run. It carries
// counts only: no IP address, path, timestamp-per-request or user agent ever
// appears in it.
type RunReport struct {
	RunID      string    `json:"runId"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`

	FilesRead       int `json:"filesRead"`
	LinesRead       int `json:"linesRead"`
	ParseFailures   int `json:"parseFailures"`
	UnresolvedPaths int `json:"unresolvedPaths"`

	// MissingMetadataEpisodes lists episode IDs that resolved but had no
	// size metadata; their traffic is excluded from the counters.
	MissingMetadataEpisodes []string `json:"missingMetadataEpisodes"`

	ClientsClassified   int `json:"clientsClassified"`
	EpisodeDaysUpserted int `json:"episodeDaysUpserted"`
	FullDownloads       int `json:"fullDownloads"`
	PartialDownloads    int `json:"partialDownloads"`
}
