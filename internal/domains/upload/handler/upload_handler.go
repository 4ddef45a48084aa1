package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"manual-backend/internal/domains/upload"
	"manual-backend/internal/shared/response"
)

type UploadHandler struct {
	service upload.Service
	devMode bool
}

func NewUploadHandler(svc upload.Service, devMode bool) *UploadHandler {
	return &UploadHandler{
		service: svc,
		devMode: devMode,
	}
}

// ════════════════════════════════════════════════════════════════
// UPLOAD: POST /api/upload
// ════════════════════════════════════════════════════════════════

func (h *UploadHandler) Upload(c *gin.Context) {
	var req upload.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "No image provided")
		return
	}

	result, err := h.service.Upload(c.Request.Context(), req.Image)
	if err != nil {
		status := upload.ToHTTPStatus(err)
		if status == http.StatusInternalServerError {
			if h.devMode {
				response.ErrorWithDetail(c, status, "Failed to upload image", err.Error())
			} else {
				response.Error(c, status, "Failed to upload image")
			}
			return
		}
		response.Error(c, status, err.Error())
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "Image uploaded successfully", result)
}
