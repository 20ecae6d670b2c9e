package chat

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser   = "user"
	RoleModel  = "model"
	RoleSystem = "system"
)

// Chat is the single per-user conversation record. Created lazily on the
// first turn, deleted wholesale on clear.
type Chat struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Messages []ChatMessage `gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE" json:"messages,omitempty"`
}

// ChatMessage appends are monotonic: messages are never edited or reordered
// after insertion.
type ChatMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ChatID    uuid.UUID `gorm:"type:uuid;not null;index" json:"chat_id"`
	Role      string    `gorm:"type:text;not null" json:"role"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// MessageDTO is the wire shape for history listings.
type MessageDTO struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
