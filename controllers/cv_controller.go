package controllers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"skillhive/parsers"
	"skillhive/services"
	"skillhive/utils"
)

// maxCVSize caps uploaded CV files at 10MB.
const maxCVSize = 10 << 20

type CVController struct {
	analyzer    *services.CVAnalyzer
	docxService *services.DocxService
	s3Service   *services.S3Service
	logger      zerolog.Logger
}

// NewCVController wires the analysis pipeline into HTTP. s3Service may be
// nil when archiving is not configured.
func NewCVController(analyzer *services.CVAnalyzer, docxService *services.DocxService, s3Service *services.S3Service, logger zerolog.Logger) *CVController {
	return &CVController{
		analyzer:    analyzer,
		docxService: docxService,
		s3Service:   s3Service,
		logger:      logger,
	}
}

// Analyze accepts a multipart CV upload, runs the extraction pipeline and
// returns the profile plus job recommendations. The pipeline reports its
// own failures inside the envelope, so the endpoint answers 200 for any
// readable upload.
func (c *CVController) Analyze(ctx *gin.Context) {
	file, header, err := ctx.Request.FormFile("cv")
	if err != nil {
		ctx.JSON(http.StatusOK, services.AnalysisResult{
			Success: false,
			Error:   services.ErrInvalidInput.Error(),
		})
		return
	}
	defer file.Close()

	if header.Size > maxCVSize {
		utils.BadRequestError(ctx, "File too large", fmt.Errorf("limit is %d bytes", int64(maxCVSize)))
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxCVSize))
	if err != nil {
		utils.InternalServerError(ctx, "Failed to read upload", nil)
		return
	}

	mediaType := mediaTypeFor(header.Filename, header.Header.Get("Content-Type"))

	result := c.analyzer.Analyze(ctx.Request.Context(), data, mediaType)

	if result.Success && c.s3Service != nil {
		if key, err := c.s3Service.UploadCV(data, header.Filename, mediaType); err != nil {
			c.logger.Warn().Err(err).Msg("cv archive upload failed")
		} else {
			c.logger.Info().Str("key", key).Msg("cv archived")
		}
	}

	ctx.JSON(http.StatusOK, result)
}

type DownloadCVRequest struct {
	Profile parsers.Profile `json:"profile" binding:"required"`
}

// DownloadDocx renders a profile back into a DOCX CV.
func (c *CVController) DownloadDocx(ctx *gin.Context) {
	var req DownloadCVRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(ctx, "Invalid profile data", err)
		return
	}

	var buf bytes.Buffer
	if err := c.docxService.WriteCV(&req.Profile, &buf); err != nil {
		utils.InternalServerError(ctx, "Failed to generate document", nil)
		return
	}

	filename := "cv.docx"
	if name := strings.TrimSpace(req.Profile.PersonalInfo.Name); name != "" {
		filename = strings.ReplaceAll(strings.ToLower(name), " ", "_") + "_cv.docx"
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, parsers.MediaTypeDocx, buf.Bytes())
}

// mediaTypeFor normalizes the upload's media type, trusting the file
// extension over a generic Content-Type from the browser.
func mediaTypeFor(filename, contentType string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return parsers.MediaTypePDF
	case ".docx":
		return parsers.MediaTypeDocx
	case ".txt":
		return parsers.MediaTypeText
	}

	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.TrimSpace(contentType)
}
