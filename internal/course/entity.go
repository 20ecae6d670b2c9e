package course

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Lesson is one unit inside a course. Lessons live as a jsonb array on the
// course row; they have no lifecycle of their own.
type Lesson struct {
	Title    string `json:"title"`
	Content  string `json:"content,omitempty"`
	Duration string `json:"duration,omitempty"`
}

type Course struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title       string         `gorm:"type:text;not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Image       string         `gorm:"type:text" json:"image"`
	Lessons     datatypes.JSON `gorm:"type:jsonb" json:"lessons,omitempty"`
	// TotalLessons is derived from the lessons array on every save.
	TotalLessons int       `gorm:"not null;default:0" json:"total_lessons"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

const defaultImage = "bg-gradient-to-br from-blue-500 to-purple-600"

type CreateCourseRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image,omitempty"`
	Lessons     []Lesson `json:"lessons,omitempty"`
}
