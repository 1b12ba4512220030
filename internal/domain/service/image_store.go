package service

import (
	"context"

	"brewlog/internal/errors"
)

// ErrImageNotFound is returned when an image reference does not resolve to a stored object.
var ErrImageNotFound = errors.New("image not found")

// ImageStore keeps uploaded bag photos and resolves them by reference.
type ImageStore interface {
	// SaveImage stores a photo and returns its reference. Only image content types are accepted.
	SaveImage(ctx context.Context, data []byte) (string, error)

	// LoadDataURL reads the photo behind ref and encodes it as a data URL.
	LoadDataURL(ctx context.Context, ref string) (string, error)
}
