package course

import "gorm.io/gorm"

type CourseContainer struct {
	Handler *Handler
	Repo    CourseRepository
	Service CourseService
}

func NewCourseContainer(db *gorm.DB) *CourseContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &CourseContainer{
		Handler: handler,
		Repo:    repo,
		Service: service,
	}
}
