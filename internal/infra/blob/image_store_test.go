package blob

import (
	"bytes"
	"context"
	"strings"
	"testing"

	domainerrors "brewlog/internal/domain/errors"
	"brewlog/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func newTestImageStore(t *testing.T) *imageStore {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return newImageStore(bucket)
}

func TestImageStore_SaveAndLoad(t *testing.T) {
	store := newTestImageStore(t)
	ctx := context.Background()

	ref, err := store.SaveImage(ctx, pngHeader)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, keyPrefix))

	dataURL, err := store.LoadDataURL(ctx, ref)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dataURL, "data:image/png;base64,"))
}

func TestImageStore_SaveRejectsNonImages(t *testing.T) {
	store := newTestImageStore(t)

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "text", data: []byte("just some text, not a bag photo")},
		{name: "pdf", data: []byte("%PDF-1.7\n")},
		{name: "too large", data: append([]byte("\xff\xd8\xff"), bytes.Repeat([]byte{0}, MaxImageBytes)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.SaveImage(context.Background(), tt.data)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestImageStore_LoadMissing(t *testing.T) {
	store := newTestImageStore(t)

	_, err := store.LoadDataURL(context.Background(), "bags/does-not-exist")
	assert.ErrorIs(t, err, service.ErrImageNotFound)
}

func TestImageStore_LoadRejectsBadReference(t *testing.T) {
	store := newTestImageStore(t)

	for _, ref := range []string{"", "  ", "../etc/passwd"} {
		_, err := store.LoadDataURL(context.Background(), ref)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, ref)
	}
}

func TestImageStore_LoadRejectsStoredNonImage(t *testing.T) {
	store := newTestImageStore(t)
	ctx := context.Background()

	require.NoError(t, store.bucket.WriteAll(ctx, "bags/notes.txt", []byte("hello"), nil))

	_, err := store.LoadDataURL(ctx, "bags/notes.txt")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
