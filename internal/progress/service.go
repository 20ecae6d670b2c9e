package progress

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/config"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/course"
)

var ErrCourseNotFound = errors.New("course not found")

type ProgressService interface {
	CompleteLesson(ctx context.Context, userID, courseID string) (*Progress, error)
	ListByUser(ctx context.Context, userID string) ([]*Progress, error)
}

type progressService struct {
	repo    ProgressRepository
	courses course.CourseRepository
}

func NewService(repo ProgressRepository, courses course.CourseRepository) ProgressService {
	return &progressService{
		repo:    repo,
		courses: courses,
	}
}

// CompleteLesson advances the user one lesson in the course, capped at the
// course's lesson count. Crossing the cap marks the course completed.
func (s *progressService) CompleteLesson(ctx context.Context, userID, courseID string) (*Progress, error) {
	log := config.WithContext(ctx)

	c, err := s.courses.GetByID(courseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCourseNotFound
	}

	p, err := s.repo.GetByUserAndCourse(userID, courseID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = &Progress{
			ID:       uuid.New(),
			UserID:   uuid.MustParse(userID),
			CourseID: c.ID,
		}
	}

	if p.CompletedLessons < c.TotalLessons {
		p.CompletedLessons++
	}
	p.IsCompleted = c.TotalLessons > 0 && p.CompletedLessons >= c.TotalLessons

	if err := s.repo.Save(p); err != nil {
		log.WithError(err).Error("failed to save progress")
		return nil, err
	}
	return p, nil
}

func (s *progressService) ListByUser(ctx context.Context, userID string) ([]*Progress, error) {
	return s.repo.ListByUser(userID)
}
