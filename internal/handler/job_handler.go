package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jobtrail/internal/export"
	"jobtrail/internal/service"
)

// JobHandler handles job application CRUD endpoints.
type JobHandler struct {
	jobService service.JobService
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobService service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

type createJobRequest struct {
	Company     string `json:"company" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Status      string `json:"status"`
	AppliedDate string `json:"applied_date"`
	Notes       string `json:"notes"`
	ImageURL    string `json:"image_url"`
}

type updateJobRequest struct {
	Company     *string `json:"company"`
	Title       *string `json:"title"`
	Status      *string `json:"status"`
	AppliedDate *string `json:"applied_date"`
	Notes       *string `json:"notes"`
	ImageURL    *string `json:"image_url"`
}

// Create handles POST /api/v1/jobs
func (h *JobHandler) Create(c *gin.Context) {
	var req createJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), service.JobCreateInput{
		Company:     req.Company,
		Title:       req.Title,
		Status:      req.Status,
		AppliedDate: req.AppliedDate,
		Notes:       req.Notes,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, job)
}

// List handles GET /api/v1/jobs
func (h *JobHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	jobs, total, err := h.jobService.List(c.Request.Context(), c.Query("status"), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, jobs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/jobs/:id
func (h *JobHandler) GetByID(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid job ID")
		return
	}

	job, err := h.jobService.GetByID(c.Request.Context(), jobID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, job)
}

// Update handles PUT /api/v1/jobs/:id
func (h *JobHandler) Update(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid job ID")
		return
	}

	var req updateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	job, err := h.jobService.Update(c.Request.Context(), jobID, service.JobUpdateInput{
		Company:     req.Company,
		Title:       req.Title,
		Status:      req.Status,
		AppliedDate: req.AppliedDate,
		Notes:       req.Notes,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, job)
}

// Delete handles DELETE /api/v1/jobs/:id
func (h *JobHandler) Delete(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid job ID")
		return
	}

	if err := h.jobService.Delete(c.Request.Context(), jobID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "job deleted"})
}

// Stats handles GET /api/v1/jobs/stats
func (h *JobHandler) Stats(c *gin.Context) {
	stats, err := h.jobService.GetStats(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, stats)
}

// Export handles GET /api/v1/jobs/export?format=csv|xlsx
func (h *JobHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be csv or xlsx")
		return
	}

	jobs, err := h.jobService.ListAll(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename("jobs", format)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if format == "xlsx" {
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Status(http.StatusOK)
		if err := export.WriteXLSX(c.Writer, jobs); err != nil {
			_ = c.Error(err)
		}
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)
	if _, err := c.Writer.Write(export.BOM); err != nil {
		return
	}
	w := export.NewCSVWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		_ = c.Error(err)
		return
	}
	if err := w.WriteJobs(jobs); err != nil {
		_ = c.Error(err)
		return
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = c.Error(err)
	}
}
