package aiquiz

type AIQuizContainer struct {
	Handler *Handler
	Service QuizService
}

func NewAIQuizContainer(generator TextGenerator) *AIQuizContainer {
	service := NewService(generator)
	handler := NewHandler(service)

	return &AIQuizContainer{
		Handler: handler,
		Service: service,
	}
}
