package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtrail/internal/service"
)

// ScreenshotHandler handles screenshot upload endpoints.
type ScreenshotHandler struct {
	screenshotService service.ScreenshotService
}

// NewScreenshotHandler creates a new ScreenshotHandler.
func NewScreenshotHandler(screenshotService service.ScreenshotService) *ScreenshotHandler {
	return &ScreenshotHandler{screenshotService: screenshotService}
}

// Upload handles POST /api/v1/screenshots
func (h *ScreenshotHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	shot, err := h.screenshotService.Upload(c.Request.Context(), service.ScreenshotUploadInput{
		File:   file,
		Header: header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, shot)
}

// Delete handles DELETE /api/v1/screenshots?key=...
// Keys contain slashes, so the object key travels as a query parameter.
func (h *ScreenshotHandler) Delete(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		RespondError(c, http.StatusBadRequest, "MISSING_KEY", "key query parameter is required")
		return
	}

	if err := h.screenshotService.Delete(c.Request.Context(), key); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "screenshot deleted"})
}
