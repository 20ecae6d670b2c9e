package progress

import (
	"errors"

	"gorm.io/gorm"
)

type ProgressRepository interface {
	GetByUserAndCourse(userID, courseID string) (*Progress, error)
	ListByUser(userID string) ([]*Progress, error)
	Save(p *Progress) error
	CountCompleted() (int64, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) GetByUserAndCourse(userID, courseID string) (*Progress, error) {
	var p Progress
	if err := r.db.First(&p, "user_id = ? AND course_id = ?", userID, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *progressRepository) ListByUser(userID string) ([]*Progress, error) {
	var list []*Progress
	if err := r.db.Where("user_id = ?", userID).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *progressRepository) Save(p *Progress) error {
	return r.db.Save(p).Error
}

func (r *progressRepository) CountCompleted() (int64, error) {
	var count int64
	err := r.db.Model(&Progress{}).Where("is_completed = ?", true).Count(&count).Error
	return count, err
}
