package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FirstName   string    `gorm:"type:text;not null" json:"first_name"`
	LastName    string    `gorm:"type:text;not null" json:"last_name"`
	Email       string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	PhoneNumber string    `gorm:"type:text" json:"phone_number,omitempty"`
	Password    string    `gorm:"type:text;not null" json:"-"`
	Role        string    `gorm:"type:text;not null;default:student" json:"role"`
	IsVerified  bool      `gorm:"not null;default:false" json:"is_verified"`

	// OTP is stored AES-GCM encrypted; a leaked row never exposes a live code.
	OTP          string     `gorm:"type:text" json:"-"`
	OTPExpiresAt *time.Time `json:"-"`

	Streak      int        `gorm:"not null;default:0" json:"streak"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
