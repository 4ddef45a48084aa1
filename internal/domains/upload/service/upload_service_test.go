package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manual-backend/internal/domains/upload"
	"manual-backend/internal/infrastructure/storage"
)

// fakeStorage records uploads and hands back deterministic URLs.
type fakeStorage struct {
	uploads map[string][]byte
	fail    bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{uploads: make(map[string][]byte)}
}

func (f *fakeStorage) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	if f.fail {
		return "", errors.New("connection refused")
	}
	f.uploads[key] = data
	return "http://localhost:9000/manual/" + key, nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	delete(f.uploads, key)
	return nil
}

func pngPayload(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func dataURI(data []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
}

func newTestService() (upload.Service, *fakeStorage) {
	store := newFakeStorage()
	return NewUploadService(store, storage.NewImageProcessor()), store
}

func TestUploadDataURI(t *testing.T) {
	svc, store := newTestService()

	result, err := svc.Upload(context.Background(), dataURI(pngPayload(t, 640, 480)))
	require.NoError(t, err)

	assert.Equal(t, 640, result.Width)
	assert.Equal(t, 480, result.Height)
	assert.NotEmpty(t, result.PublicID)
	assert.Contains(t, result.URL, result.PublicID)
	assert.Contains(t, result.URL, ".png")

	// Original plus thumbnail
	assert.Len(t, store.uploads, 2)
	assert.Contains(t, result.ThumbnailURL, "_thumb.jpg")
}

// Payloads arriving without the data-URI envelope are still plain
// base64 and must decode the same way.
func TestUploadBareBase64(t *testing.T) {
	svc, _ := newTestService()

	encoded := base64.StdEncoding.EncodeToString(pngPayload(t, 10, 10))
	result, err := svc.Upload(context.Background(), encoded)
	require.NoError(t, err)
	assert.Equal(t, 10, result.Width)
}

func TestUploadMissingImage(t *testing.T) {
	svc, store := newTestService()

	for _, payload := range []string{"", "   "} {
		_, err := svc.Upload(context.Background(), payload)
		assert.ErrorIs(t, err, upload.ErrNoImage)
	}
	assert.Empty(t, store.uploads, "storage must not be contacted")
}

func TestUploadRejectsNonImage(t *testing.T) {
	svc, store := newTestService()

	tests := []struct {
		name    string
		payload string
	}{
		{"not base64", "data:image/png;base64,@@@not-base64@@@"},
		{"base64 of text", base64.StdEncoding.EncodeToString([]byte("hello world"))},
		{"truncated image", dataURI(pngPayload(t, 5, 5)[:8])},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upload(context.Background(), tt.payload)
			assert.ErrorIs(t, err, upload.ErrInvalidImage)
		})
	}

	assert.Empty(t, store.uploads, "storage must not be contacted for bad payloads")
}

func TestUploadUpstreamFailure(t *testing.T) {
	svc, store := newTestService()
	store.fail = true

	_, err := svc.Upload(context.Background(), dataURI(pngPayload(t, 10, 10)))
	require.Error(t, err)
	assert.NotErrorIs(t, err, upload.ErrNoImage)
	assert.NotErrorIs(t, err, upload.ErrInvalidImage)
	assert.Equal(t, 500, upload.ToHTTPStatus(err))
}

func TestUploadJPEGExtension(t *testing.T) {
	svc, _ := newTestService()

	// Encode a real JPEG so the detected format drives the extension.
	img := image.NewRGBA(image.Rect(0, 0, 12, 12))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))

	uri := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
	result, err := svc.Upload(context.Background(), uri)
	require.NoError(t, err)
	assert.True(t, strings.Contains(result.URL, ".jpg"), "url %q should use .jpg", result.URL)
}
