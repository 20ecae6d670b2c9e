package user

import (
	"gorm.io/gorm"

	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/mail"
)

type UserContainer struct {
	Handler *Handler
	Repo    UserRepository
	Service UserService
}

func NewUserContainer(db *gorm.DB, mailer mail.Service) *UserContainer {
	repo := NewRepository(db)
	service := NewService(repo, mailer)
	handler := NewHandler(service)

	return &UserContainer{
		Handler: handler,
		Repo:    repo,
		Service: service,
	}
}
