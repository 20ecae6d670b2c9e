package course

import (
	"errors"

	"gorm.io/gorm"
)

type CourseRepository interface {
	Create(c *Course) error
	GetByID(id string) (*Course, error)
	ListAll() ([]*Course, error)
	Delete(id string) error
}

type courseRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(c *Course) error {
	return r.db.Create(c).Error
}

func (r *courseRepository) GetByID(id string) (*Course, error) {
	var c Course
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *courseRepository) ListAll() ([]*Course, error) {
	var courses []*Course
	if err := r.db.Order("created_at ASC").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepository) Delete(id string) error {
	return r.db.Delete(&Course{}, "id = ?", id).Error
}
