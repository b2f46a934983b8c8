// Package storage persists uploaded images in a bucket behind the portable
// gocloud blob API, so local disk and GCS are interchangeable via the
// bucket URL scheme.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"stockroom/config"
	"stockroom/internal/domain/service"
	"stockroom/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket URL schemes supported out of the box.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params holds dependencies for the asset storage, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and returns it as an AssetStorage.
func New(params Params) (service.AssetStorage, error) {
	cfg := params.Config.Assets
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("assets bucket URL is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Asset storage initialized",
		slog.String("bucket_url", cfg.BucketURL),
	)

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// Store writes the content under the given object name and returns the
// public URL it will be served from.
func (s *blobStorage) Store(ctx context.Context, name, contentType string, content io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, name, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", name)
	}

	if _, err := io.Copy(writer, content); err != nil {
		// Close discards the partial write on error.
		writer.Close()

		return "", errors.Wrapf(err, "failed to write %s", name)
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to commit %s", name)
	}

	return s.publicBaseURL + "/" + name, nil
}
