package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jobtrail/internal/domain"
	"jobtrail/internal/handler"
	"jobtrail/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newJobHandler() (*handler.JobHandler, *mocks.MockJobService) {
	mockSvc := new(mocks.MockJobService)
	return handler.NewJobHandler(mockSvc), mockSvc
}

func jsonRequest(method, url string, body interface{}) *http.Request {
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(method, url, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestJobHandler_Create_Success(t *testing.T) {
	h, mockSvc := newJobHandler()

	created := &domain.Job{ID: uuid.New(), Company: "Ramp", Title: "Engineer", Status: domain.StatusApplied}
	mockSvc.On("Create", mock.Anything, mock.Anything).Return(created, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/api/v1/jobs", gin.H{
		"company": "Ramp",
		"title":   "Engineer",
	})

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestJobHandler_Create_MissingFields(t *testing.T) {
	h, _ := newJobHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/api/v1/jobs", gin.H{"company": "Ramp"})

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJobHandler_Create_ValidationError(t *testing.T) {
	h, mockSvc := newJobHandler()
	mockSvc.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrValidation)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/api/v1/jobs", gin.H{
		"company":      "Ramp",
		"title":        "Engineer",
		"applied_date": "14/03/2024",
	})

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestJobHandler_GetByID_InvalidID(t *testing.T) {
	h, _ := newJobHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/jobs/not-a-uuid", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	h.GetByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJobHandler_GetByID_NotFound(t *testing.T) {
	h, mockSvc := newJobHandler()

	jobID := uuid.New()
	mockSvc.On("GetByID", mock.Anything, jobID).Return(nil, domain.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/jobs/"+jobID.String(), http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: jobID.String()}}

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestJobHandler_List_Pagination(t *testing.T) {
	h, mockSvc := newJobHandler()

	mockSvc.On("List", mock.Anything, "", 0, 20).
		Return([]domain.Job{{Company: "Ramp"}, {Company: "Stripe"}}, 2, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/jobs", http.NoBody)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 2, resp.Meta.Total)
	assert.Equal(t, 20, resp.Meta.Limit)
}

func TestJobHandler_List_LimitClamped(t *testing.T) {
	h, mockSvc := newJobHandler()

	mockSvc.On("List", mock.Anything, "interview", 0, 20).Return([]domain.Job{}, 0, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/jobs?limit=500&status=interview", http.NoBody)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestJobHandler_Update_Success(t *testing.T) {
	h, mockSvc := newJobHandler()

	jobID := uuid.New()
	updated := &domain.Job{ID: jobID, Company: "Ramp", Title: "Engineer", Status: domain.StatusOffer}
	mockSvc.On("Update", mock.Anything, jobID, mock.Anything).Return(updated, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPut, "/api/v1/jobs/"+jobID.String(), gin.H{"status": "offer"})
	c.Params = gin.Params{{Key: "id", Value: jobID.String()}}

	h.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestJobHandler_Delete_Success(t *testing.T) {
	h, mockSvc := newJobHandler()

	jobID := uuid.New()
	mockSvc.On("Delete", mock.Anything, jobID).Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/jobs/"+jobID.String(), http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: jobID.String()}}

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestJobHandler_Stats(t *testing.T) {
	h, mockSvc := newJobHandler()

	mockSvc.On("GetStats", mock.Anything).
		Return(&domain.Stats{TotalJobs: 3, Applied: 1, Interviews: 1, Offers: 1}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/jobs/stats", http.NoBody)

	h.Stats(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestJobHandler_Export_CSV(t *testing.T) {
	h, mockSvc := newJobHandler()

	mockSvc.On("ListAll", mock.Anything).Return([]domain.Job{
		{Company: "Ramp", Title: "Engineer", Status: domain.StatusApplied, AppliedDate: "2024-03-14"},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/jobs/export?format=csv", http.NoBody)

	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Body.String(), "Ramp")
}

func TestJobHandler_Export_InvalidFormat(t *testing.T) {
	h, _ := newJobHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/jobs/export?format=pdf", http.NoBody)

	h.Export(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
