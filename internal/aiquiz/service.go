package aiquiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/config"
)

var (
	ErrEmptyTopic            = errors.New("topic must not be empty")
	ErrMalformedQuizResponse = errors.New("malformed quiz response")
)

// TextGenerator is the failover executor's calling contract.
type TextGenerator interface {
	Generate(ctx context.Context, prompt, systemInstruction string) (string, error)
}

type QuizService interface {
	Generate(ctx context.Context, topic, documentContext string) ([]Question, error)
}

type quizService struct {
	generator TextGenerator
}

func NewService(generator TextGenerator) QuizService {
	return &quizService{generator: generator}
}

// Generate produces 10 multiple-choice items on the topic. Any generation or
// parsing failure degrades to a single synthetic item referencing the topic:
// the caller always gets a non-empty, well-formed quiz. The failure itself is
// logged so prompt or provider regressions stay observable.
func (s *quizService) Generate(ctx context.Context, topic, documentContext string) ([]Question, error) {
	log := config.WithContext(ctx)

	if strings.TrimSpace(topic) == "" {
		return nil, ErrEmptyTopic
	}

	prompt := BuildPrompt(topic, documentContext)

	raw, err := s.generator.Generate(ctx, prompt, systemInstruction)
	if err != nil {
		log.WithError(err).Warnf("quiz generation failed for topic %q, serving fallback", topic)
		return fallbackQuiz(topic), nil
	}

	questions, err := parseQuestions(raw)
	if err != nil {
		log.WithError(err).Warnf("quiz response unparseable for topic %q, serving fallback", topic)
		return fallbackQuiz(topic), nil
	}

	return questions, nil
}

// parseQuestions strips markdown fences the model was told not to emit (it
// sometimes does anyway) and validates the fixed shape.
func parseQuestions(raw string) ([]Question, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.ReplaceAll(clean, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)

	var questions []Question
	if err := json.Unmarshal([]byte(clean), &questions); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedQuizResponse, err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: empty question list", ErrMalformedQuizResponse)
	}

	for i, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			return nil, fmt.Errorf("%w: question %d has no text", ErrMalformedQuizResponse, i)
		}
		if len(q.Options) != 4 {
			return nil, fmt.Errorf("%w: question %d has %d options, want 4", ErrMalformedQuizResponse, i, len(q.Options))
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer > 3 {
			return nil, fmt.Errorf("%w: question %d has correctAnswer %d out of range", ErrMalformedQuizResponse, i, q.CorrectAnswer)
		}
	}

	return questions, nil
}

func fallbackQuiz(topic string) []Question {
	return []Question{
		{
			Question:      fmt.Sprintf("(Fallback) What is the main concept of %s?", topic),
			Options:       []string{"Option A", "Option B", "Option C", "Option D"},
			CorrectAnswer: 0,
		},
	}
}
