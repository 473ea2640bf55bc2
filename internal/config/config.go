package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env       Env
	Server    ServerConfig
	Storage   StorageConfig
	Transcode TranscodeConfig
	Archive   ArchiveConfig
	NATS      NATSConfig
	Cleanup   CleanupConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"HOST" default:""`
	Port string `envconfig:"PORT" default:"5000"`
}

type StorageConfig struct {
	Dir string `envconfig:"STORAGE_DIR" default:"videos"`
}

type TranscodeConfig struct {
	FFmpegPath string `envconfig:"FFMPEG_PATH" default:"ffmpeg"`
	FrameRate  int    `envconfig:"TRANSCODE_FRAME_RATE" default:"10"`
	CRF        int    `envconfig:"TRANSCODE_CRF" default:"18"`
	Preset     string `envconfig:"TRANSCODE_PRESET" default:"veryfast"`
}

// ArchiveConfig configures the optional object-storage archive for finalized
// recordings. Archiving is off unless an endpoint is set.
type ArchiveConfig struct {
	Endpoint  string `envconfig:"ARCHIVE_ENDPOINT" default:""`
	Bucket    string `envconfig:"ARCHIVE_BUCKET" default:"recordings"`
	AccessKey string `envconfig:"ARCHIVE_ACCESS_KEY" default:""`
	SecretKey string `envconfig:"ARCHIVE_SECRET_KEY" default:""`
	UseSSL    bool   `envconfig:"ARCHIVE_USE_SSL" default:"false"`
}

// Enabled reports whether the archive adapter should be constructed.
func (a ArchiveConfig) Enabled() bool {
	return a.Endpoint != ""
}

// NATSConfig configures the optional finalize-event publisher. Publishing is
// off unless a URL is set.
type NATSConfig struct {
	URL     string `envconfig:"NATS_URL" default:""`
	Stream  string `envconfig:"NATS_STREAM" default:"RECORDINGS"`
	Subject string `envconfig:"NATS_SUBJECT" default:"recording.finalized"`
}

// Enabled reports whether the event publisher should be constructed.
func (n NATSConfig) Enabled() bool {
	return n.URL != ""
}

// CleanupConfig configures the stale partial-file sweeper. A zero TTL
// disables the sweeper entirely.
type CleanupConfig struct {
	PartialTTL time.Duration `envconfig:"CLEANUP_PARTIAL_TTL" default:"0"`
	Every      time.Duration `envconfig:"CLEANUP_EVERY" default:"1h"`
}

// Enabled reports whether the cleanup task should run.
func (c CleanupConfig) Enabled() bool {
	return c.PartialTTL > 0
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
