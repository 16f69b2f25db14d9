package handler_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jobtrail/internal/domain"
	"jobtrail/internal/handler"
	"jobtrail/mocks"
)

func multipartRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/screenshots", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestScreenshotHandler_Upload_Success(t *testing.T) {
	mockSvc := new(mocks.MockScreenshotService)
	h := handler.NewScreenshotHandler(mockSvc)

	shot := &domain.Screenshot{
		Key:         "screenshots/abc.png",
		ContentType: "image/png",
		Size:        16,
		URL:         "https://s3/presigned",
	}
	mockSvc.On("Upload", mock.Anything, mock.Anything).Return(shot, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartRequest(t, "file", "shot.png", []byte("\x89PNG\r\n\x1a\nfakedata"))

	h.Upload(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestScreenshotHandler_Upload_MissingFile(t *testing.T) {
	h := handler.NewScreenshotHandler(new(mocks.MockScreenshotService))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartRequest(t, "attachment", "shot.png", []byte("x"))

	h.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScreenshotHandler_Upload_Unsupported(t *testing.T) {
	mockSvc := new(mocks.MockScreenshotService)
	mockSvc.On("Upload", mock.Anything, mock.Anything).Return(nil, domain.ErrUnsupportedFileType)
	h := handler.NewScreenshotHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartRequest(t, "file", "resume.pdf", []byte("%PDF-1.4"))

	h.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScreenshotHandler_Delete_Success(t *testing.T) {
	mockSvc := new(mocks.MockScreenshotService)
	mockSvc.On("Delete", mock.Anything, "screenshots/abc.png").Return(nil)
	h := handler.NewScreenshotHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete,
		"/api/v1/screenshots?key=screenshots%2Fabc.png", http.NoBody)

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestScreenshotHandler_Delete_MissingKey(t *testing.T) {
	h := handler.NewScreenshotHandler(new(mocks.MockScreenshotService))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/screenshots", http.NoBody)

	h.Delete(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
