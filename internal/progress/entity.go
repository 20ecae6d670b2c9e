package progress

import (
	"time"

	"github.com/google/uuid"
)

// Progress tracks one user's position in one course.
type Progress struct {
	ID               uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index:idx_progress_user_course,unique" json:"user_id"`
	CourseID         uuid.UUID `gorm:"type:uuid;not null;index:idx_progress_user_course,unique" json:"course_id"`
	CompletedLessons int       `gorm:"not null;default:0" json:"completed_lessons"`
	IsCompleted      bool      `gorm:"not null;default:false" json:"is_completed"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
