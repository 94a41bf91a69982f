package minio

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/codecraftwt/eazecap/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Adapter is the staging-storage adapter backed by minio
type Adapter struct {
	client *minio.Client
	config config.MinioConfig
	logger *slog.Logger
}

// NewAdapter returns Adapter
func NewAdapter(ctx context.Context, cfg config.MinioConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.StagingBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check if staging bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.StagingBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create staging bucket: %w", err)
		}
	}

	return &Adapter{client: client, config: cfg, logger: logger}, nil
}

// Upload performs the direct binary transfer of an unscanned file into the
// staging bucket under the computed staging key.
func (a *Adapter) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	opts := minio.PutObjectOptions{
		ContentType: contentType,
	}

	if _, err := a.client.PutObject(ctx, a.config.StagingBucket, key, body, size, opts); err != nil {
		return fmt.Errorf("failed to stage object %q: %w", key, err)
	}

	return nil
}

// DeleteObject removes a staged object
func (a *Adapter) DeleteObject(ctx context.Context, key string) error {
	if err := a.client.RemoveObject(ctx, a.config.StagingBucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete staged object %q: %w", key, err)
	}
	return nil
}
