package chat

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatRepository interface {
	GetByUser(userID string) (*Chat, error)
	CreateForUser(userID string) (*Chat, error)
	ListMessages(chatID string) ([]*ChatMessage, error)
	AppendMessages(messages []*ChatMessage) error
	DeleteByUser(userID string) error
}

type chatRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) GetByUser(userID string) (*Chat, error) {
	var chat Chat
	if err := r.db.First(&chat, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &chat, nil
}

func (r *chatRepository) CreateForUser(userID string) (*Chat, error) {
	chat := &Chat{
		ID:     uuid.New(),
		UserID: uuid.MustParse(userID),
	}
	if err := r.db.Create(chat).Error; err != nil {
		return nil, err
	}
	return chat, nil
}

func (r *chatRepository) ListMessages(chatID string) ([]*ChatMessage, error) {
	var messages []*ChatMessage
	if err := r.db.
		Where("chat_id = ?", chatID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *chatRepository) AppendMessages(messages []*ChatMessage) error {
	if len(messages) == 0 {
		return nil
	}
	return r.db.Create(&messages).Error
}

func (r *chatRepository) DeleteByUser(userID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var chat Chat
		if err := tx.First(&chat, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Delete(&ChatMessage{}, "chat_id = ?", chat.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&chat).Error
	})
}
