package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"skillhive/parsers"
)

// stubGenerator returns one canned response per call, in order. Calls
// past the end return an error.
type stubGenerator struct {
	responses []string
	errs      []error
	calls     int
}

func (s *stubGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return "", s.errs[i]
	}
	if i < len(s.responses) {
		return s.responses[i], nil
	}
	return "", errors.New("generator exhausted")
}

func newTestQuizService(g ContentGenerator) *QuizService {
	return NewQuizService(g, zerolog.Nop())
}

func TestQuizTopics_FromSkills(t *testing.T) {
	s := newTestQuizService(nil)
	profile := &parsers.Profile{Skills: []string{"React", "Cooking", "JavaScript"}}

	topics := s.QuizTopics(profile, nil)
	assert.Equal(t, []string{"React", "JavaScript"}, topics)
}

func TestQuizTopics_CapAtFive(t *testing.T) {
	s := newTestQuizService(nil)
	profile := &parsers.Profile{
		Skills: []string{"React", "Python", "Java", "CSS", "HTML", "DevOps", "Security"},
	}

	topics := s.QuizTopics(profile, nil)
	assert.Len(t, topics, 5)
	assert.Equal(t, []string{"React", "Python", "Java", "CSS", "HTML"}, topics)
}

func TestQuizTopics_Deduplicates(t *testing.T) {
	s := newTestQuizService(nil)
	profile := &parsers.Profile{
		Skills:          []string{"React", "react"},
		TechnicalSkills: []string{"REACT"},
	}

	topics := s.QuizTopics(profile, []string{"React"})
	assert.Equal(t, []string{"React"}, topics)
}

func TestQuizTopics_DefaultsWhenNothingQuizzable(t *testing.T) {
	s := newTestQuizService(nil)
	profile := &parsers.Profile{Skills: []string{"Cooking", "Chess"}}

	topics := s.QuizTopics(profile, nil)
	assert.Equal(t, []string{"Web Development", "JavaScript", "Software Engineering"}, topics)
}

const validQuizJSON = `{"React":[{"question":"What is JSX?","options":["A","B","C","D"],"correctAnswer":1}]}`

func TestGenerateQuiz_CVQuizSucceeds(t *testing.T) {
	g := &stubGenerator{responses: []string{validQuizJSON}}
	s := newTestQuizService(g)
	profile := &parsers.Profile{Skills: []string{"React"}}

	quiz := s.GenerateQuiz(context.Background(), profile, nil)

	assert.Equal(t, 1, g.calls)
	if assert.Contains(t, quiz, "React") {
		assert.Len(t, quiz["React"], 1)
		assert.Equal(t, "What is JSX?", quiz["React"][0].Question)
	}
}

func TestGenerateQuiz_FallsBackToTopicQuiz(t *testing.T) {
	topicJSON := `[{"question":"Q1","options":["A","B","C","D"],"correctAnswer":2}]`
	g := &stubGenerator{
		responses: []string{"not json", topicJSON},
	}
	s := newTestQuizService(g)
	profile := &parsers.Profile{Skills: []string{"React"}}

	quiz := s.GenerateQuiz(context.Background(), profile, nil)

	if assert.Contains(t, quiz, "React") {
		assert.Equal(t, 2, quiz["React"][0].CorrectAnswer)
	}
}

func TestGenerateQuiz_FallsBackToDefaults(t *testing.T) {
	g := &stubGenerator{
		errs: []error{
			errors.New("unreachable"), errors.New("unreachable"),
			errors.New("unreachable"), errors.New("unreachable"),
		},
	}
	s := newTestQuizService(g)
	profile := &parsers.Profile{Skills: []string{"React"}}

	quiz := s.GenerateQuiz(context.Background(), profile, nil)

	assert.Contains(t, quiz, "Web Development")
	assert.Contains(t, quiz, "JavaScript")
	assert.Contains(t, quiz, "Software Engineering")
}

func TestGenerateCVQuiz_RejectsWrongOptionCount(t *testing.T) {
	g := &stubGenerator{
		responses: []string{`{"React":[{"question":"Q","options":["A","B"],"correctAnswer":1}]}`},
	}
	s := newTestQuizService(g)

	_, err := s.GenerateCVQuiz(context.Background(), &parsers.Profile{}, []string{"React"})
	assert.ErrorIs(t, err, ErrInvalidQuizPayload)
}

func TestGenerateCVQuiz_RejectsAnswerOutOfRange(t *testing.T) {
	g := &stubGenerator{
		responses: []string{`{"React":[{"question":"Q","options":["A","B","C","D"],"correctAnswer":5}]}`},
	}
	s := newTestQuizService(g)

	_, err := s.GenerateCVQuiz(context.Background(), &parsers.Profile{}, []string{"React"})
	assert.ErrorIs(t, err, ErrInvalidQuizPayload)
}

func TestGenerateTopicQuiz_Valid(t *testing.T) {
	g := &stubGenerator{
		responses: []string{`[{"question":"Q1","options":["A","B","C","D"],"correctAnswer":4}]`},
	}
	s := newTestQuizService(g)

	questions, err := s.GenerateTopicQuiz(context.Background(), "React")
	assert.NoError(t, err)
	assert.Len(t, questions, 1)
	assert.Equal(t, 4, questions[0].CorrectAnswer)
}
