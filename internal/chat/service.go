package chat

import (
	"context"
	"errors"
	"strings"

	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/config"
)

var ErrEmptyMessage = errors.New("message must not be empty")

// TextGenerator is the failover executor's calling contract as this service
// needs it.
type TextGenerator interface {
	Generate(ctx context.Context, prompt, systemInstruction string) (string, error)
}

type ChatService interface {
	Respond(ctx context.Context, userID, message, documentContext string) (string, error)
	History(ctx context.Context, userID string) ([]MessageDTO, error)
	Clear(ctx context.Context, userID string) error
}

type chatService struct {
	repo      ChatRepository
	generator TextGenerator
}

func NewService(repo ChatRepository, generator TextGenerator) ChatService {
	return &chatService{
		repo:      repo,
		generator: generator,
	}
}

// Respond runs one chat turn: builds the prompt from the recent history
// window plus optional document grounding, calls the executor, and appends
// the exchange to the user's record. A persistence failure after a
// successful generation still returns the reply; a generation failure never
// mutates history.
func (s *chatService) Respond(ctx context.Context, userID, message, documentContext string) (string, error) {
	log := config.WithContext(ctx)

	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	existing, err := s.repo.GetByUser(userID)
	if err != nil {
		return "", err
	}

	var history []*ChatMessage
	if existing != nil {
		history, err = s.repo.ListMessages(existing.ID.String())
		if err != nil {
			return "", err
		}
	}

	prompt := BuildPrompt(history, message, documentContext)

	reply, err := s.generator.Generate(ctx, prompt, mentorSystemInstruction)
	if err != nil {
		return "", err
	}

	record := existing
	if record == nil {
		record, err = s.repo.CreateForUser(userID)
		if err != nil {
			log.WithError(err).Error("failed to create chat record; reply returned without history")
			return reply, nil
		}
	}

	messages := []*ChatMessage{
		{ChatID: record.ID, Role: RoleUser, Content: message},
		{ChatID: record.ID, Role: RoleModel, Content: reply},
	}
	if err := s.repo.AppendMessages(messages); err != nil {
		// Losing the history write is acceptable degradation; the reply
		// already exists and belongs to the caller.
		log.WithError(err).Error("failed to append chat history")
	}

	return reply, nil
}

func (s *chatService) History(ctx context.Context, userID string) ([]MessageDTO, error) {
	record, err := s.repo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return []MessageDTO{}, nil
	}

	messages, err := s.repo.ListMessages(record.ID.String())
	if err != nil {
		return nil, err
	}

	dtos := make([]MessageDTO, 0, len(messages))
	for _, msg := range messages {
		dtos = append(dtos, MessageDTO{Role: msg.Role, Content: msg.Content})
	}
	return dtos, nil
}

func (s *chatService) Clear(ctx context.Context, userID string) error {
	log := config.WithContext(ctx)
	if err := s.repo.DeleteByUser(userID); err != nil {
		log.WithError(err).Error("failed to clear chat history")
		return err
	}
	return nil
}
