package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manual-backend/internal/domains/content"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubService returns canned values; each field covers one method.
type stubService struct {
	entity  *content.Content
	items   []content.Content
	err     error
	lastReq interface{}
}

func (s *stubService) Create(_ context.Context, req *content.CreateContentRequest) (*content.Content, error) {
	s.lastReq = req
	return s.entity, s.err
}

func (s *stubService) GetByID(_ context.Context, _ uuid.UUID) (*content.Content, error) {
	return s.entity, s.err
}

func (s *stubService) GetBySlug(_ context.Context, _ string) (*content.Content, error) {
	return s.entity, s.err
}

func (s *stubService) List(_ context.Context, filter content.Filter) ([]content.Content, error) {
	s.lastReq = filter
	return s.items, s.err
}

func (s *stubService) Update(_ context.Context, _ uuid.UUID, req *content.UpdateContentRequest) (*content.Content, error) {
	s.lastReq = req
	return s.entity, s.err
}

func (s *stubService) Delete(_ context.Context, _ uuid.UUID) error {
	return s.err
}

func (s *stubService) TogglePublish(_ context.Context, _ uuid.UUID) (*content.Content, error) {
	return s.entity, s.err
}

func setupRouter(svc content.Service) *gin.Engine {
	h := NewContentHandler(svc, true)

	r := gin.New()
	api := r.Group("/api/content")
	api.GET("", h.List)
	api.GET("/slug/:slug", h.GetBySlug)
	api.GET("/:id", h.GetByID)
	api.POST("", h.Create)
	api.PUT("/:id", h.Update)
	api.DELETE("/:id", h.Delete)
	api.PATCH("/:id/toggle-publish", h.TogglePublish)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func sampleContent() *content.Content {
	return &content.Content{
		ID:          uuid.New(),
		Title:       "FAQ",
		Slug:        "faq",
		Body:        "<p>q</p>",
		Category:    "FAQ",
		Order:       5,
		IsPublished: false,
	}
}

func TestCreateReturns201(t *testing.T) {
	svc := &stubService{entity: sampleContent()}
	r := setupRouter(svc)

	w, envelope := doJSON(t, r, http.MethodPost, "/api/content", gin.H{
		"title":   "FAQ",
		"content": "<p>q</p>",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, envelope["success"])
	assert.Equal(t, "Content created successfully", envelope["message"])

	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "faq", data["slug"])
	assert.Equal(t, false, data["isPublished"])
}

func TestCreateValidationFailure(t *testing.T) {
	svc := &stubService{}
	r := setupRouter(svc)

	// Missing content field: ozzo rejects before the service runs.
	w, envelope := doJSON(t, r, http.MethodPost, "/api/content", gin.H{"title": "FAQ"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, envelope["success"])
	assert.Contains(t, envelope["message"], "content")
	assert.Nil(t, svc.lastReq, "service must not be called")
}

func TestCreateDuplicateIs400(t *testing.T) {
	svc := &stubService{err: content.ErrDuplicateSlug}
	r := setupRouter(svc)

	w, envelope := doJSON(t, r, http.MethodPost, "/api/content", gin.H{
		"title":   "FAQ",
		"content": "<p>q</p>",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "A content with this title already exists", envelope["message"])
}

func TestGetByIDInvalidUUID(t *testing.T) {
	r := setupRouter(&stubService{})

	w, envelope := doJSON(t, r, http.MethodGet, "/api/content/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, envelope["success"])
}

func TestGetBySlugNotFound(t *testing.T) {
	r := setupRouter(&stubService{err: content.ErrContentNotFound})

	w, envelope := doJSON(t, r, http.MethodGet, "/api/content/slug/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Content not found", envelope["message"])
}

func TestListEnvelope(t *testing.T) {
	svc := &stubService{items: []content.Content{*sampleContent(), *sampleContent()}}
	r := setupRouter(svc)

	w, envelope := doJSON(t, r, http.MethodGet, "/api/content", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, envelope["success"])
	assert.Equal(t, float64(2), envelope["count"])
	assert.Len(t, envelope["data"], 2)
}

func TestListPublishedQuery(t *testing.T) {
	tests := []struct {
		query string
		want  *bool
	}{
		{"?published=true", boolPtr(true)},
		{"?published=false", boolPtr(false)},
		{"", nil},
		{"?published=banana", nil},
	}

	for _, tt := range tests {
		svc := &stubService{items: []content.Content{}}
		r := setupRouter(svc)

		w, _ := doJSON(t, r, http.MethodGet, "/api/content"+tt.query, nil)
		require.Equal(t, http.StatusOK, w.Code)

		filter := svc.lastReq.(content.Filter)
		if tt.want == nil {
			assert.Nil(t, filter.IsPublished, "query %q", tt.query)
		} else {
			require.NotNil(t, filter.IsPublished, "query %q", tt.query)
			assert.Equal(t, *tt.want, *filter.IsPublished)
		}
	}
}

func TestListFailureIs500(t *testing.T) {
	r := setupRouter(&stubService{err: errors.New("connection lost")})

	w, envelope := doJSON(t, r, http.MethodGet, "/api/content", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Server Error", envelope["message"])
	// devMode handler exposes detail
	assert.Equal(t, "connection lost", envelope["error"])
}

func TestDeleteSuccess(t *testing.T) {
	r := setupRouter(&stubService{})

	w, envelope := doJSON(t, r, http.MethodDelete, "/api/content/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Content deleted successfully", envelope["message"])
}

func TestDeleteNotFound(t *testing.T) {
	r := setupRouter(&stubService{err: content.ErrContentNotFound})

	w, _ := doJSON(t, r, http.MethodDelete, "/api/content/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTogglePublishMessages(t *testing.T) {
	published := sampleContent()
	published.IsPublished = true

	tests := []struct {
		name   string
		entity *content.Content
		want   string
	}{
		{"published", published, "Content published successfully"},
		{"unpublished", sampleContent(), "Content unpublished successfully"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(&stubService{entity: tt.entity})

			w, envelope := doJSON(t, r, http.MethodPatch, "/api/content/"+uuid.NewString()+"/toggle-publish", nil)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, envelope["message"])
		})
	}
}

func TestUpdateNotFound(t *testing.T) {
	r := setupRouter(&stubService{err: content.ErrContentNotFound})

	w, _ := doJSON(t, r, http.MethodPut, "/api/content/"+uuid.NewString(), gin.H{"title": "X"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func boolPtr(b bool) *bool { return &b }
