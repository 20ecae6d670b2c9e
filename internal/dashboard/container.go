package dashboard

import (
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/course"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/progress"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/user"
)

type DashboardContainer struct {
	Handler *Handler
	Service DashboardService
}

func NewDashboardContainer(courses course.CourseRepository, progressRepo progress.ProgressRepository, users user.UserRepository) *DashboardContainer {
	service := NewService(courses, progressRepo, users)
	handler := NewHandler(service)

	return &DashboardContainer{
		Handler: handler,
		Service: service,
	}
}
