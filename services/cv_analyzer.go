package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"skillhive/parsers"
)

// ErrInvalidInput means the document is missing or its media type is not
// a supported text-bearing format. Detected before extraction.
var ErrInvalidInput = errors.New("please upload a valid PDF, DOCX or text file")

// AnalysisResult is the envelope returned to the UI layer. Exactly one of
// (Profile, Recommendations) or Error is populated, gated by Success.
type AnalysisResult struct {
	Success         bool                `json:"success"`
	Profile         *parsers.Profile    `json:"profile"`
	Recommendations []JobRecommendation `json:"recommendations"`
	Error           string              `json:"error,omitempty"`
}

// TextExtractor turns raw document bytes into plain text.
type TextExtractor interface {
	Supported(mediaType string) bool
	ExtractText(ctx context.Context, data []byte, mediaType string) (string, error)
}

// CVAnalyzer sequences the CV analysis pipeline: extract text, parse a
// profile, classify skills, generate recommendations. Dependencies are
// injected so tests can substitute stubs.
type CVAnalyzer struct {
	extractor   TextExtractor
	parser      *parsers.ProfileParser
	recommender *RecommendationService
	logger      zerolog.Logger
}

// NewCVAnalyzer creates an analyzer from its components.
func NewCVAnalyzer(extractor TextExtractor, parser *parsers.ProfileParser, recommender *RecommendationService, logger zerolog.Logger) *CVAnalyzer {
	return &CVAnalyzer{
		extractor:   extractor,
		parser:      parser,
		recommender: recommender,
		logger:      logger,
	}
}

// Analyze runs the pipeline on one document and always returns a result
// envelope. Only missing/unsupported input and extraction failures
// produce Success=false; parsing and recommendation are total and at
// worst degrade to empty fields.
func (a *CVAnalyzer) Analyze(ctx context.Context, data []byte, mediaType string) (result AnalysisResult) {
	// The later stages promise not to fail, but a parser bug must never
	// take down the request.
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error().Interface("panic", r).Msg("cv analysis panicked")
			result = a.failure(fmt.Errorf("failed to analyze CV"))
		}
	}()

	if len(data) == 0 {
		return a.failure(fmt.Errorf("%w: no file provided", ErrInvalidInput))
	}
	if !a.extractor.Supported(mediaType) {
		return a.failure(fmt.Errorf("%w: unsupported type %q", ErrInvalidInput, mediaType))
	}

	text, err := a.extractor.ExtractText(ctx, data, mediaType)
	if err != nil {
		a.logger.Warn().Err(err).Str("media_type", mediaType).Msg("text extraction failed")
		return a.failure(err)
	}

	a.logger.Debug().Int("text_length", len(text)).Msg("extracted document text")

	profile := a.parser.Parse(text)

	classification := parsers.ClassifySkills(profile.Skills)
	profile.TechnicalSkills = classification.Technical
	profile.SoftSkills = classification.Soft

	recommendations := a.recommender.Recommend(profile)

	a.logger.Info().
		Int("skills", len(profile.Skills)).
		Int("experience", len(profile.Experience)).
		Int("recommendations", len(recommendations)).
		Msg("cv analysis complete")

	return AnalysisResult{
		Success:         true,
		Profile:         profile,
		Recommendations: recommendations,
	}
}

func (a *CVAnalyzer) failure(err error) AnalysisResult {
	return AnalysisResult{
		Success: false,
		Error:   err.Error(),
	}
}
