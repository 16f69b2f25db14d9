package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtrail/internal/service"
)

// ExtractHandler handles screenshot data extraction endpoints.
type ExtractHandler struct {
	extractService service.ExtractService
}

// NewExtractHandler creates a new ExtractHandler.
func NewExtractHandler(extractService service.ExtractService) *ExtractHandler {
	return &ExtractHandler{extractService: extractService}
}

type extractRequest struct {
	ImageURL string `json:"image_url" binding:"required"`
}

// Extract handles POST /api/v1/extract. Extraction always yields a record,
// falling back to a manual-entry default when no stage can read the image.
func (h *ExtractHandler) Extract(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "image_url field is required")
		return
	}

	data := h.extractService.ExtractFromImage(c.Request.Context(), req.ImageURL)
	RespondOK(c, data)
}
