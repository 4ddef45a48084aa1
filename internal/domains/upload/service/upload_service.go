package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"manual-backend/internal/domains/upload"
	"manual-backend/internal/infrastructure/storage"
	"manual-backend/pkg/logger"
)

// dataURIPrefix matches the "data:image/png;base64," envelope the
// editor wraps around the payload.
var dataURIPrefix = regexp.MustCompile(`^data:image/\w+;base64,`)

type uploadService struct {
	storage   storage.ObjectStorage
	processor *storage.ImageProcessor
}

func NewUploadService(store storage.ObjectStorage, processor *storage.ImageProcessor) upload.Service {
	return &uploadService{
		storage:   store,
		processor: processor,
	}
}

// Upload decodes the transport encoding, validates that the bytes are
// a real image, stores the original plus a thumbnail, and returns the
// stable public URL with metadata.
func (s *uploadService) Upload(ctx context.Context, dataURI string) (*upload.Result, error) {
	dataURI = strings.TrimSpace(dataURI)
	if dataURI == "" {
		return nil, upload.ErrNoImage
	}

	encoded := dataURIPrefix.ReplaceAllString(dataURI, "")
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, upload.ErrInvalidImage
	}

	format, err := s.processor.ValidateImage(data)
	if err != nil {
		logger.Warn("upload rejected", map[string]interface{}{"error": err.Error()})
		return nil, upload.ErrInvalidImage
	}

	width, height, err := s.processor.Dimensions(data)
	if err != nil {
		return nil, upload.ErrInvalidImage
	}

	ext := format
	if format == "jpeg" {
		ext = "jpg"
	}

	publicID := uuid.New().String()
	key := fmt.Sprintf("manual/%s.%s", publicID, ext)

	url, err := s.storage.Upload(ctx, key, data, "image/"+format)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	result := &upload.Result{
		URL:      url,
		PublicID: publicID,
		Width:    width,
		Height:   height,
	}

	// The thumbnail is a nicety for listing views; a failure here
	// must not fail the upload the editor is waiting on.
	if thumb, err := s.processor.Thumbnail(data); err == nil {
		thumbKey := fmt.Sprintf("manual/%s_thumb.jpg", publicID)
		if thumbURL, err := s.storage.Upload(ctx, thumbKey, thumb, "image/jpeg"); err == nil {
			result.ThumbnailURL = thumbURL
		} else {
			logger.Error("thumbnail upload failed", err)
		}
	} else {
		logger.Error("thumbnail generation failed", err)
	}

	logger.Info("Image uploaded", map[string]interface{}{
		"publicId": publicID,
		"format":   format,
		"width":    width,
		"height":   height,
	})

	return result, nil
}
