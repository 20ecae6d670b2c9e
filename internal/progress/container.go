package progress

import (
	"gorm.io/gorm"

	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/course"
)

type ProgressContainer struct {
	Handler *Handler
	Repo    ProgressRepository
	Service ProgressService
}

func NewProgressContainer(db *gorm.DB, courses course.CourseRepository) *ProgressContainer {
	repo := NewRepository(db)
	service := NewService(repo, courses)
	handler := NewHandler(service)

	return &ProgressContainer{
		Handler: handler,
		Repo:    repo,
		Service: service,
	}
}
