package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"skillhive/parsers"
	"skillhive/services"
)

func newCVTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	analyzer := services.NewCVAnalyzer(
		parsers.NewDocumentExtractor(),
		parsers.NewProfileParser(),
		services.NewRecommendationService(),
		zerolog.Nop(),
	)
	controller := NewCVController(analyzer, services.NewDocxService(), nil, zerolog.Nop())

	r := gin.New()
	r.POST("/api/cv/analyze", controller.Analyze)
	r.POST("/api/cv/download", controller.DownloadDocx)
	return r
}

func multipartCV(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("cv", filename)
	assert.NoError(t, err)
	_, err = part.Write([]byte(content))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func TestAnalyzeEndpoint_TextUpload(t *testing.T) {
	router := newCVTestRouter()

	cv := "Jane Smith\njane@example.com\n\nSkills\nVue, PHP\n"
	body, contentType := multipartCV(t, "cv.txt", cv)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/cv/analyze", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result services.AnalysisResult
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)
	if assert.NotNil(t, result.Profile) {
		assert.Equal(t, "Jane Smith", result.Profile.PersonalInfo.Name)
		assert.Equal(t, []string{"Vue", "PHP"}, result.Profile.Skills)
	}
	assert.NotEmpty(t, result.Recommendations)
}

func TestAnalyzeEndpoint_MissingFile(t *testing.T) {
	router := newCVTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/cv/analyze", bytes.NewBufferString(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result services.AnalysisResult
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "valid PDF")
}

func TestAnalyzeEndpoint_UnsupportedExtension(t *testing.T) {
	router := newCVTestRouter()

	body, contentType := multipartCV(t, "cv.png", "not really an image")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/cv/analyze", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result services.AnalysisResult
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.Success)
}

func TestDownloadEndpoint(t *testing.T) {
	router := newCVTestRouter()

	payload := map[string]interface{}{
		"profile": parsers.Profile{
			PersonalInfo: parsers.PersonalInfo{Name: "Jane Smith"},
			Skills:       []string{"Vue"},
		},
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/cv/download", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, parsers.MediaTypeDocx, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "jane_smith_cv.docx")
	assert.NotZero(t, w.Body.Len())
}

func TestMediaTypeFor(t *testing.T) {
	assert.Equal(t, parsers.MediaTypePDF, mediaTypeFor("cv.PDF", ""))
	assert.Equal(t, parsers.MediaTypeDocx, mediaTypeFor("cv.docx", ""))
	assert.Equal(t, parsers.MediaTypeText, mediaTypeFor("cv.txt", "application/octet-stream"))
	assert.Equal(t, "text/plain", mediaTypeFor("cv", "text/plain; charset=utf-8"))
}
