package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"skillhive/parsers"
)

// ErrInvalidQuizPayload means the generative collaborator returned JSON
// that does not match the expected quiz shape.
var ErrInvalidQuizPayload = errors.New("quiz payload failed validation")

// QuizQuestion is one multiple-choice question. CorrectAnswer is 1-based.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// Quiz maps topic names to their questions.
type Quiz map[string][]QuizQuestion

// ContentGenerator is the narrow contract the quiz service needs from the
// generative-text collaborator.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// defaultQuizTopics are used when a profile yields no quizzable topics.
var defaultQuizTopics = []string{"Web Development", "JavaScript", "Software Engineering"}

// defaultQuestions back the final fallback so the quiz endpoint is total
// even when the collaborator is unreachable.
var defaultQuestions = Quiz{
	"Web Development": {
		{
			Question:      "Which HTTP method is idempotent by definition?",
			Options:       []string{"POST", "PUT", "PATCH", "CONNECT"},
			CorrectAnswer: 2,
		},
		{
			Question:      "What does the 'C' in CSS stand for?",
			Options:       []string{"Cascading", "Computed", "Compiled", "Concurrent"},
			CorrectAnswer: 1,
		},
	},
	"JavaScript": {
		{
			Question:      "Which keyword declares a block-scoped variable in JavaScript?",
			Options:       []string{"var", "let", "def", "dim"},
			CorrectAnswer: 2,
		},
		{
			Question:      "What is the result of typeof null?",
			Options:       []string{"'null'", "'undefined'", "'object'", "'number'"},
			CorrectAnswer: 3,
		},
	},
	"Software Engineering": {
		{
			Question:      "Which practice merges every developer's work into a shared mainline several times a day?",
			Options:       []string{"Pair programming", "Continuous integration", "Code freeze", "Waterfall"},
			CorrectAnswer: 2,
		},
	},
}

// QuizService produces personalized and generic quizzes.
type QuizService struct {
	generator ContentGenerator
	logger    zerolog.Logger
}

// NewQuizService creates a quiz service backed by a content generator.
func NewQuizService(generator ContentGenerator, logger zerolog.Logger) *QuizService {
	return &QuizService{generator: generator, logger: logger}
}

// QuizTopics derives up to 5 quizzable topics from a profile's skills,
// technical skills and the required skills of its recommendations. When
// nothing matches the quizzable-technology table it substitutes the fixed
// default topics.
func (s *QuizService) QuizTopics(profile *parsers.Profile, requiredSkills []string) []string {
	seen := map[string]bool{}
	topics := []string{}

	all := make([]string, 0, len(profile.Skills)+len(profile.TechnicalSkills)+len(requiredSkills))
	all = append(all, profile.Skills...)
	all = append(all, profile.TechnicalSkills...)
	all = append(all, requiredSkills...)

	for _, skill := range all {
		key := strings.ToLower(skill)
		if seen[key] {
			continue
		}
		seen[key] = true

		if parsers.MatchesCategory(skill, parsers.CategoryQuizTopic) {
			topics = append(topics, skill)
			if len(topics) == 5 {
				return topics
			}
		}
	}

	if len(topics) == 0 {
		return append([]string{}, defaultQuizTopics...)
	}
	return topics
}

// GenerateQuiz returns a quiz for the profile. It tries the personalized
// CV-based quiz first, falls back to per-topic generic generation, and
// finally to the built-in default questions, so it always returns a
// usable quiz.
func (s *QuizService) GenerateQuiz(ctx context.Context, profile *parsers.Profile, requiredSkills []string) Quiz {
	topics := s.QuizTopics(profile, requiredSkills)

	quiz, err := s.GenerateCVQuiz(ctx, profile, topics)
	if err == nil {
		return quiz
	}
	s.logger.Warn().Err(err).Msg("cv-based quiz generation failed, falling back to topic quiz")

	fallback := Quiz{}
	for _, topic := range topics {
		questions, err := s.GenerateTopicQuiz(ctx, topic)
		if err != nil {
			s.logger.Warn().Err(err).Str("topic", topic).Msg("topic quiz generation failed")
			continue
		}
		fallback[topic] = questions
	}
	if len(fallback) > 0 {
		return fallback
	}

	s.logger.Warn().Msg("quiz collaborator unavailable, serving default questions")
	return defaultQuestions
}

// GenerateCVQuiz asks the collaborator for questions tailored to the
// candidate's profile, grouped by topic.
func (s *QuizService) GenerateCVQuiz(ctx context.Context, profile *parsers.Profile, topics []string) (Quiz, error) {
	experience := make([]string, 0, len(profile.Experience))
	for _, exp := range profile.Experience {
		experience = append(experience, fmt.Sprintf("%s at %s", exp.Title, exp.Company))
	}

	prompt := fmt.Sprintf(`I have a candidate with the following profile:

Skills: %s
Technical Skills: %s
Experience: %s

Based on this profile, generate a quiz with 3-5 multiple choice questions for EACH of these topics: %s

Each question should:
1. Be relevant to the candidate's background and skill level
2. Test both fundamental and advanced concepts
3. Have 4 options (labeled 1, 2, 3, 4)
4. Include the correct answer (as a number 1-4)

Format the response as a JSON object where keys are topic names and values are arrays of question objects.
Each question object should have properties: "question", "options" (array of 4 strings), and "correctAnswer" (number 1-4).`,
		strings.Join(profile.Skills, ", "),
		strings.Join(profile.TechnicalSkills, ", "),
		strings.Join(experience, ", "),
		strings.Join(topics, ", "))

	raw, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var quiz Quiz
	if err := json.Unmarshal([]byte(raw), &quiz); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuizPayload, err)
	}
	for topic, questions := range quiz {
		if err := validateQuestions(questions); err != nil {
			return nil, fmt.Errorf("%w: topic %q: %v", ErrInvalidQuizPayload, topic, err)
		}
	}
	if len(quiz) == 0 {
		return nil, fmt.Errorf("%w: empty quiz", ErrInvalidQuizPayload)
	}

	return quiz, nil
}

// GenerateTopicQuiz asks the collaborator for 5 generic questions about a
// single topic.
func (s *QuizService) GenerateTopicQuiz(ctx context.Context, topic string) ([]QuizQuestion, error) {
	prompt := fmt.Sprintf(`Generate 5 multiple choice questions about %s. Each question should have 4 options (A, B, C, D) and indicate the correct answer. Format the response as a JSON array of objects, where each object has properties: "question", "options" (array of 4 strings), and "correctAnswer" (index 1-4 representing A, B, C, or D).`, topic)

	raw, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var questions []QuizQuestion
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuizPayload, err)
	}
	if err := validateQuestions(questions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuizPayload, err)
	}

	return questions, nil
}

// validateQuestions enforces the quiz shape at the collaborator boundary:
// non-empty question text, exactly 4 options, answer within 1..4.
func validateQuestions(questions []QuizQuestion) error {
	if len(questions) == 0 {
		return fmt.Errorf("no questions")
	}
	for i, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			return fmt.Errorf("question %d has empty text", i)
		}
		if len(q.Options) != 4 {
			return fmt.Errorf("question %d has %d options, want 4", i, len(q.Options))
		}
		if q.CorrectAnswer < 1 || q.CorrectAnswer > 4 {
			return fmt.Errorf("question %d has answer %d out of range", i, q.CorrectAnswer)
		}
	}
	return nil
}
