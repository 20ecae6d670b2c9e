package aiquiz

// Question is one generated multiple-choice item. Produced transiently per
// call; only the numeric result of taking a quiz is persisted (see the quiz
// package).
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

type QuizRequest struct {
	Topic   string `json:"topic"`
	Context string `json:"context,omitempty"`
}

type QuizResponse struct {
	Quiz []Question `json:"quiz"`
}
