package parsers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"baliance.com/gooxml/document"
	"github.com/dslipak/pdf"
	"golang.org/x/text/unicode/norm"
)

// Media types accepted by the extractor.
const (
	MediaTypePDF  = "application/pdf"
	MediaTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MediaTypeText = "text/plain"
)

var (
	// ErrEmptyDocument means the document decoded fine but produced no text,
	// which usually signals a scanned or image-only file.
	ErrEmptyDocument = errors.New("no text could be extracted from the document")

	// ErrExtractionFailed wraps lower-level decode errors.
	ErrExtractionFailed = errors.New("could not read document")
)

// DocumentExtractor converts an uploaded document into plain text.
// Pages are joined with a newline; the text fragments within a page are
// joined with a single space.
type DocumentExtractor struct{}

// NewDocumentExtractor creates a new document text extractor.
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// Supported reports whether the extractor can handle the given media type.
func (e *DocumentExtractor) Supported(mediaType string) bool {
	switch mediaType {
	case MediaTypePDF, MediaTypeDocx, MediaTypeText:
		return true
	}
	return false
}

// ExtractText extracts the text content of a document. It fails with
// ErrEmptyDocument when the document contains no usable text and with an
// error wrapping ErrExtractionFailed on any decode failure.
func (e *DocumentExtractor) ExtractText(ctx context.Context, data []byte, mediaType string) (string, error) {
	var (
		text string
		err  error
	)

	switch mediaType {
	case MediaTypePDF:
		text, err = e.extractPDF(ctx, data)
	case MediaTypeDocx:
		text, err = e.extractDocx(ctx, data)
	case MediaTypeText:
		text = string(data)
	default:
		return "", fmt.Errorf("unsupported media type: %s", mediaType)
	}
	if err != nil {
		return "", err
	}

	text = norm.NFC.String(text)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyDocument
	}

	return text, nil
}

// extractPDF walks the PDF pages in order and concatenates their text.
func (e *DocumentExtractor) extractPDF(ctx context.Context, data []byte) (text string, err error) {
	// The pdf package panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrExtractionFailed, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		content := page.Content()
		fragments := make([]string, 0, len(content.Text))
		for _, fragment := range content.Text {
			fragments = append(fragments, fragment.S)
		}

		sb.WriteString(strings.Join(fragments, " "))
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// extractDocx reads paragraph runs from a DOCX document.
func (e *DocumentExtractor) extractDocx(ctx context.Context, data []byte) (string, error) {
	doc, err := document.Read(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	var sb strings.Builder
	for _, para := range doc.Paragraphs() {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		for _, run := range para.Runs() {
			sb.WriteString(run.Text())
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
