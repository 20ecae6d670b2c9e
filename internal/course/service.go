package course

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/config"
)

var (
	ErrInvalidCourse  = errors.New("invalid course data")
	ErrCourseNotFound = errors.New("course not found")
)

type CourseService interface {
	Create(ctx context.Context, req CreateCourseRequest) (*Course, error)
	Get(ctx context.Context, id string) (*Course, error)
	List(ctx context.Context) ([]*Course, error)
	Delete(ctx context.Context, id string) error
}

type courseService struct {
	repo CourseRepository
}

func NewService(repo CourseRepository) CourseService {
	return &courseService{repo: repo}
}

func (s *courseService) Create(ctx context.Context, req CreateCourseRequest) (*Course, error) {
	log := config.WithContext(ctx)

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, ErrInvalidCourse
	}

	image := req.Image
	if image == "" {
		image = defaultImage
	}

	lessonsJSON, err := json.Marshal(req.Lessons)
	if err != nil {
		return nil, fmt.Errorf("marshal lessons: %w", err)
	}

	c := &Course{
		ID:           uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		Image:        image,
		Lessons:      datatypes.JSON(lessonsJSON),
		TotalLessons: len(req.Lessons),
	}

	if err := s.repo.Create(c); err != nil {
		log.WithError(err).Error("failed to create course")
		return nil, err
	}

	log.Infof("created course %s (%d lessons)", c.Title, c.TotalLessons)
	return c, nil
}

func (s *courseService) Get(ctx context.Context, id string) (*Course, error) {
	c, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCourseNotFound
	}
	return c, nil
}

func (s *courseService) List(ctx context.Context) ([]*Course, error) {
	return s.repo.ListAll()
}

func (s *courseService) Delete(ctx context.Context, id string) error {
	log := config.WithContext(ctx)
	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("failed to delete course")
		return err
	}
	return nil
}
