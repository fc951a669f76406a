package configs

// Config holds all configuration for the application.
type Config struct {
	Log            LogConfig            `mapstructure:"log" validate:"required"`
	Logs           LogsConfig           `mapstructure:"logs" validate:"required"`
	Episodes       EpisodesConfig       `mapstructure:"episodes" validate:"required"`
	Classification ClassificationConfig `mapstructure:"classification" validate:"required"`
	Storage        StorageConfig        `mapstructure:"storage" validate:"required"`
	Server         ServerConfig         `mapstructure:"server"`
	Reports        ReportsConfig        `mapstructure:"reports"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// LogsConfig holds access-log input configuration.
type LogsConfig struct {
	Dir        string `mapstructure:"dir" validate:"required"`
	FilePrefix string `mapstructure:"file_prefix" validate:"required"`
}

// EpisodesConfig holds episode metadata configuration.
type EpisodesConfig struct {
	ManifestPath string `mapstructure:"manifest_path" validate:"required"`
}

// ClassificationConfig holds download classification configuration.
type ClassificationConfig struct {
	// FullThreshold is the fraction of an episode's size that must be
	// covered for a download to count as full, e.g. 0.95.
	FullThreshold float64 `mapstructure:"full_threshold" validate:"required,gt=0,lte=1"`
}

// StorageConfig holds durable counter storage configuration.
type StorageConfig struct {
	Backend  string         `mapstructure:"backend" validate:"required,oneof=file postgres"`
	RootDir  string         `mapstructure:"root_dir" validate:"required_if=Backend file"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

// PostgresConfig holds PostgreSQL connection settings for the postgres backend.
type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// ServerConfig holds the optional observability listener configuration.
// A zero MetricsPort disables the listener.
type ServerConfig struct {
	MetricsPort       int `mapstructure:"metrics_port" validate:"omitempty,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"omitempty,min=1"` // seconds
}

// ReportsConfig holds optional CSV report export configuration.
// An empty CSVDir disables the export.
type ReportsConfig struct {
	CSVDir string `mapstructure:"csv_dir"`
}
