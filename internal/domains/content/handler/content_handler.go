package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"manual-backend/internal/domains/content"
	"manual-backend/internal/shared/response"
)

type ContentHandler struct {
	service content.Service
	devMode bool // expose error detail outside production
}

func NewContentHandler(svc content.Service, devMode bool) *ContentHandler {
	return &ContentHandler{
		service: svc,
		devMode: devMode,
	}
}

// serverError returns a generic 500; the underlying detail is only
// attached in development.
func (h *ContentHandler) serverError(c *gin.Context, err error) {
	if h.devMode {
		response.ErrorWithDetail(c, http.StatusInternalServerError, "Server Error", err.Error())
		return
	}
	response.InternalServerError(c, "Server Error")
}

// handleError maps a domain error onto the envelope.
func (h *ContentHandler) handleError(c *gin.Context, err error) {
	status := content.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		h.serverError(c, err)
		return
	}
	response.Error(c, status, err.Error())
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /api/content?published=true|false
// ════════════════════════════════════════════════════════════════

func (h *ContentHandler) List(c *gin.Context) {
	filter := content.Filter{}

	// Absent or malformed values mean "no filter".
	switch c.Query("published") {
	case "true":
		published := true
		filter.IsPublished = &published
	case "false":
		published := false
		filter.IsPublished = &published
	}

	items, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.serverError(c, err)
		return
	}

	response.SuccessWithCount(c, http.StatusOK, len(items), items)
}

// ════════════════════════════════════════════════════════════════
// READ: GET /api/content/:id
// ════════════════════════════════════════════════════════════════

func (h *ContentHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid content id")
		return
	}

	entity, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, entity)
}

// ════════════════════════════════════════════════════════════════
// READ: GET /api/content/slug/:slug
// ════════════════════════════════════════════════════════════════

func (h *ContentHandler) GetBySlug(c *gin.Context) {
	entity, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, entity)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/content
// ════════════════════════════════════════════════════════════════

func (h *ContentHandler) Create(c *gin.Context) {
	var req content.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, "Content created successfully", created)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /api/content/:id
// ════════════════════════════════════════════════════════════════

func (h *ContentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid content id")
		return
	}

	var req content.UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "Content updated successfully", updated)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /api/content/:id
// ════════════════════════════════════════════════════════════════

func (h *ContentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid content id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Content deleted successfully")
}

// ════════════════════════════════════════════════════════════════
// TOGGLE: PATCH /api/content/:id/toggle-publish
// ════════════════════════════════════════════════════════════════

func (h *ContentHandler) TogglePublish(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid content id")
		return
	}

	entity, err := h.service.TogglePublish(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	message := "Content unpublished successfully"
	if entity.IsPublished {
		message = "Content published successfully"
	}

	response.SuccessWithMessage(c, http.StatusOK, message, entity)
}
