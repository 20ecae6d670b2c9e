package quiz

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/config"
)

var ErrInvalidResult = errors.New("invalid quiz result")

type QuizService interface {
	SaveResult(ctx context.Context, userID string, req SaveResultRequest) (*QuizResult, error)
	History(ctx context.Context, userID string) ([]*QuizResult, error)
}

type quizService struct {
	repo QuizResultRepository
}

func NewService(repo QuizResultRepository) QuizService {
	return &quizService{repo: repo}
}

func (s *quizService) SaveResult(ctx context.Context, userID string, req SaveResultRequest) (*QuizResult, error) {
	log := config.WithContext(ctx)

	if strings.TrimSpace(req.Topic) == "" || req.TotalQuestions <= 0 || req.Score < 0 || req.Score > req.TotalQuestions {
		return nil, ErrInvalidResult
	}

	result := &QuizResult{
		ID:             uuid.New(),
		UserID:         uuid.MustParse(userID),
		Topic:          req.Topic,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
	}

	if err := s.repo.Create(result); err != nil {
		log.WithError(err).Error("failed to save quiz result")
		return nil, err
	}

	return result, nil
}

func (s *quizService) History(ctx context.Context, userID string) ([]*QuizResult, error) {
	results, err := s.repo.ListByUser(userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("failed to list quiz results")
		return nil, err
	}
	return results, nil
}
