package quiz

import (
	"gorm.io/gorm"
)

type QuizResultRepository interface {
	Create(result *QuizResult) error
	ListByUser(userID string) ([]*QuizResult, error)
}

type quizResultRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizResultRepository {
	return &quizResultRepository{db: db}
}

func (r *quizResultRepository) Create(result *QuizResult) error {
	return r.db.Create(result).Error
}

func (r *quizResultRepository) ListByUser(userID string) ([]*QuizResult, error) {
	var results []*QuizResult
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
