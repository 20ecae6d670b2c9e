package quiz

import (
	"time"

	"github.com/google/uuid"
)

// QuizResult is the only persisted outcome of a generated quiz: the user's
// score against it. Quiz content itself is transient.
type QuizResult struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Topic          string    `gorm:"type:text;not null" json:"topic"`
	Score          int       `gorm:"not null;default:0" json:"score"`
	TotalQuestions int       `gorm:"not null;default:0" json:"total_questions"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type SaveResultRequest struct {
	Topic          string `json:"topic"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
}
