package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"skillhive/parsers"
)

// stubExtractor returns canned text or an error.
type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) Supported(mediaType string) bool {
	return mediaType == parsers.MediaTypeText
}

func (s *stubExtractor) ExtractText(ctx context.Context, data []byte, mediaType string) (string, error) {
	return s.text, s.err
}

// panicExtractor simulates a bug in a downstream stage.
type panicExtractor struct{}

func (panicExtractor) Supported(string) bool { return true }

func (panicExtractor) ExtractText(context.Context, []byte, string) (string, error) {
	panic("boom")
}

func newTestAnalyzer(extractor TextExtractor) *CVAnalyzer {
	return NewCVAnalyzer(extractor, parsers.NewProfileParser(), NewRecommendationService(), zerolog.Nop())
}

func TestAnalyze_Success(t *testing.T) {
	extractor := &stubExtractor{text: "Jane Smith\njane@example.com\n\nSkills\nVue, PHP\n"}
	analyzer := newTestAnalyzer(extractor)

	result := analyzer.Analyze(context.Background(), []byte("upload"), parsers.MediaTypeText)

	assert.True(t, result.Success)
	assert.Empty(t, result.Error)
	if assert.NotNil(t, result.Profile) {
		assert.Equal(t, "Jane Smith", result.Profile.PersonalInfo.Name)
		assert.Equal(t, []string{"Vue", "PHP"}, result.Profile.Skills)
		// Both skills match the technical table; the soft table matches
		// nothing, so soft skills fall back to the positional split.
		assert.Equal(t, []string{"Vue", "PHP"}, result.Profile.TechnicalSkills)
		assert.Equal(t, []string{"PHP"}, result.Profile.SoftSkills)
	}
	assert.Len(t, result.Recommendations, 2)
}

func TestAnalyze_EmptyUpload(t *testing.T) {
	analyzer := newTestAnalyzer(&stubExtractor{})

	result := analyzer.Analyze(context.Background(), nil, parsers.MediaTypeText)

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "valid PDF")
	assert.Nil(t, result.Profile)
	assert.Nil(t, result.Recommendations)
}

func TestAnalyze_UnsupportedType(t *testing.T) {
	analyzer := newTestAnalyzer(&stubExtractor{})

	result := analyzer.Analyze(context.Background(), []byte("upload"), "image/png")

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "image/png")
}

func TestAnalyze_ExtractionFailure(t *testing.T) {
	extractor := &stubExtractor{err: errors.New("corrupt file")}
	analyzer := newTestAnalyzer(extractor)

	result := analyzer.Analyze(context.Background(), []byte("upload"), parsers.MediaTypeText)

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "corrupt file")
}

func TestAnalyze_RecoversFromPanic(t *testing.T) {
	analyzer := newTestAnalyzer(panicExtractor{})

	result := analyzer.Analyze(context.Background(), []byte("upload"), parsers.MediaTypeText)

	assert.False(t, result.Success)
	assert.Equal(t, "failed to analyze CV", result.Error)
}

func TestAnalyze_UnparseableTextStillSucceeds(t *testing.T) {
	extractor := &stubExtractor{text: "plain unstructured notes with no headers at all"}
	analyzer := newTestAnalyzer(extractor)

	result := analyzer.Analyze(context.Background(), []byte("upload"), parsers.MediaTypeText)

	assert.True(t, result.Success)
	assert.NotNil(t, result.Profile)
	// Even an empty profile yields the generic recommendation.
	assert.Len(t, result.Recommendations, 1)
	assert.Equal(t, "Professional", result.Recommendations[0].Title)
}
