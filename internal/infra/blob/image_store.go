// Package blob stores uploaded bag photos in a gocloud.dev bucket.
package blob

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"strings"

	"brewlog/config"
	domainerrors "brewlog/internal/domain/errors"
	"brewlog/internal/domain/service"
	"brewlog/internal/errors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

const (
	// MaxImageBytes caps both uploads and reads.
	MaxImageBytes = 8 << 20

	defaultBucketURL = "mem://"
	keyPrefix        = "bags/"
)

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif", "image/heic"}

type imageStore struct {
	bucket *blob.Bucket
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewImageStore opens the configured bucket. An empty URL uses an in-memory bucket.
func NewImageStore(params Params) (service.ImageStore, error) {
	bucketURL := strings.TrimSpace(params.Config.ImageStore.BucketURL)
	if bucketURL == "" {
		bucketURL = defaultBucketURL
		params.Logger.Warn("Image store bucket is not configured, using an in-memory bucket")
	}

	bucket, err := blob.OpenBucket(context.Background(), bucketURL)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrConfiguration, "failed to open image bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return newImageStore(bucket), nil
}

func newImageStore(bucket *blob.Bucket) *imageStore {
	return &imageStore{bucket: bucket}
}

// SaveImage sniffs the content type, rejects non-images and writes the photo under a fresh key.
func (s *imageStore) SaveImage(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", domainerrors.ErrValidationFailed.WrapMessage("image is empty")
	}
	if len(data) > MaxImageBytes {
		return "", domainerrors.ErrValidationFailed.WrapMessage("image is too large")
	}

	mimeType, err := detectImageType(data)
	if err != nil {
		return "", err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate image key")
	}
	ref := keyPrefix + id.String()

	if err := s.bucket.WriteAll(ctx, ref, data, &blob.WriterOptions{ContentType: mimeType}); err != nil {
		return "", errors.Wrap(err, "failed to write image")
	}

	return ref, nil
}

// LoadDataURL reads the photo behind ref as a base64 data URL.
func (s *imageStore) LoadDataURL(ctx context.Context, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.Contains(ref, "..") {
		return "", domainerrors.ErrValidationFailed.WrapMessage("invalid image reference")
	}

	reader, err := s.bucket.NewReader(ctx, ref, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", errors.Wrapf(service.ErrImageNotFound, "image %s", ref)
		}

		return "", errors.Wrap(err, "failed to open image")
	}
	defer reader.Close()

	data, err := io.ReadAll(io.LimitReader(reader, MaxImageBytes+1))
	if err != nil {
		return "", errors.Wrap(err, "failed to read image")
	}
	if len(data) > MaxImageBytes {
		return "", domainerrors.ErrValidationFailed.WrapMessage("image is too large")
	}

	mimeType, err := detectImageType(data)
	if err != nil {
		return "", err
	}

	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func detectImageType(data []byte) (string, error) {
	detected := mimetype.Detect(data)
	for _, allowed := range allowedImageTypes {
		if detected.Is(allowed) {
			return allowed, nil
		}
	}

	return "", domainerrors.ErrValidationFailed.WrapMessage("unsupported image type " + detected.String())
}
