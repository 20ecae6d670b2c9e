package chat

import "gorm.io/gorm"

type ChatContainer struct {
	Handler *Handler
	Service ChatService
}

func NewChatContainer(db *gorm.DB, generator TextGenerator) *ChatContainer {
	repo := NewRepository(db)
	service := NewService(repo, generator)
	handler := NewHandler(service)

	return &ChatContainer{
		Handler: handler,
		Service: service,
	}
}
