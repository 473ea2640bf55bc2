package minio

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"screencast/internal/config"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// contentTypes is deterministic and does NOT rely on OS mime databases
// (Docker-safe).
var contentTypes = map[string]string{
	".webm": "video/webm",
	".mp4":  "video/mp4",
	".jpg":  "image/jpeg",
}

// Archiver copies finalized recordings into an object-storage bucket.
// Archiving is best effort; callers log and move on when it fails.
type Archiver struct {
	client *minio.Client
	config config.ArchiveConfig
	logger *slog.Logger
}

// NewArchiver returns an Archiver, creating the bucket if absent
func NewArchiver(ctx context.Context, cfg config.ArchiveConfig, logger *slog.Logger) (*Archiver, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Archiver{client: client, config: cfg, logger: logger}, nil
}

// Archive uploads the local file under objectName.
func (a *Archiver) Archive(ctx context.Context, localPath, objectName string) error {
	contentType, ok := contentTypes[strings.ToLower(filepath.Ext(objectName))]
	if !ok {
		contentType = "application/octet-stream"
	}

	info, err := a.client.FPutObject(ctx, a.config.Bucket, objectName, localPath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to archive %s: %w", objectName, err)
	}

	a.logger.Info("artifact archived", "object", objectName, "bytes", info.Size)
	return nil
}
