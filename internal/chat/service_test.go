package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
)

type fakeRepo struct {
	chat       *Chat
	messages   []*ChatMessage
	appendErr  error
	createErr  error
	deleteDone bool
}

func (f *fakeRepo) GetByUser(userID string) (*Chat, error) {
	return f.chat, nil
}

func (f *fakeRepo) CreateForUser(userID string) (*Chat, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.chat = &Chat{ID: uuid.New(), UserID: uuid.MustParse(userID)}
	return f.chat, nil
}

func (f *fakeRepo) ListMessages(chatID string) ([]*ChatMessage, error) {
	return f.messages, nil
}

func (f *fakeRepo) AppendMessages(messages []*ChatMessage) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.messages = append(f.messages, messages...)
	return nil
}

func (f *fakeRepo) DeleteByUser(userID string) error {
	f.deleteDone = true
	f.chat = nil
	f.messages = nil
	return nil
}

type capturingGenerator struct {
	lastPrompt string
	lastSystem string
	reply      string
	err        error
}

func (g *capturingGenerator) Generate(ctx context.Context, prompt, system string) (string, error) {
	g.lastPrompt = prompt
	g.lastSystem = system
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

const testUserID = "8a5f6f6e-4f9a-4a31-9c3e-27c86a1f9f01"

func seededRepo(messageCount int) *fakeRepo {
	repo := &fakeRepo{
		chat: &Chat{ID: uuid.New(), UserID: uuid.MustParse(testUserID)},
	}
	for i := 1; i <= messageCount; i++ {
		role := RoleUser
		if i%2 == 0 {
			role = RoleModel
		}
		repo.messages = append(repo.messages, &ChatMessage{
			ChatID:  repo.chat.ID,
			Role:    role,
			Content: fmt.Sprintf("message %d", i),
		})
	}
	return repo
}

func TestRespondHistoryWindow(t *testing.T) {
	repo := seededRepo(10)
	gen := &capturingGenerator{reply: "a reply"}
	svc := NewService(repo, gen)

	if _, err := svc.Respond(context.Background(), testUserID, "what next?", ""); err != nil {
		t.Fatalf("Respond failed: %v", err)
	}

	for i := 5; i <= 10; i++ {
		if !strings.Contains(gen.lastPrompt, fmt.Sprintf("message %d", i)) {
			t.Errorf("prompt should include message %d", i)
		}
	}
	for i := 1; i <= 4; i++ {
		if strings.Contains(gen.lastPrompt, fmt.Sprintf("message %d\n", i)) {
			t.Errorf("prompt must not include message %d (outside the 6-message window)", i)
		}
	}
}

func TestRespondEmptyContextEqualsAbsent(t *testing.T) {
	gen := &capturingGenerator{reply: "ok"}
	svc := NewService(&fakeRepo{}, gen)

	if _, err := svc.Respond(context.Background(), testUserID, "hello", ""); err != nil {
		t.Fatalf("Respond failed: %v", err)
	}
	withoutContext := gen.lastPrompt

	svc2 := NewService(&fakeRepo{}, gen)
	if _, err := svc2.Respond(context.Background(), testUserID, "hello", "   \n\t "); err != nil {
		t.Fatalf("Respond failed: %v", err)
	}

	if gen.lastPrompt != withoutContext {
		t.Errorf("whitespace-only context must behave like no context:\n%q\nvs\n%q", gen.lastPrompt, withoutContext)
	}
	if strings.Contains(gen.lastPrompt, "BEGIN DOCUMENT CONTENT") {
		t.Error("document block must not appear for empty context")
	}
}

func TestRespondDocumentContextComesFirst(t *testing.T) {
	repo := seededRepo(2)
	gen := &capturingGenerator{reply: "ok"}
	svc := NewService(repo, gen)

	if _, err := svc.Respond(context.Background(), testUserID, "summarize", "chapter one text"); err != nil {
		t.Fatalf("Respond failed: %v", err)
	}

	docIdx := strings.Index(gen.lastPrompt, "--- BEGIN DOCUMENT CONTENT ---")
	histIdx := strings.Index(gen.lastPrompt, "PREVIOUS CONVERSATION:")
	questionIdx := strings.Index(gen.lastPrompt, "USER QUESTION: summarize")

	if docIdx != 0 {
		t.Errorf("document block must open the prompt, found at %d", docIdx)
	}
	if histIdx < docIdx || questionIdx < histIdx {
		t.Errorf("prompt order must be document, history, question (got %d, %d, %d)", docIdx, histIdx, questionIdx)
	}
	if !strings.Contains(gen.lastPrompt, "chapter one text") {
		t.Error("document context must be embedded verbatim")
	}
}

func TestRespondAppendsBothMessages(t *testing.T) {
	repo := &fakeRepo{}
	gen := &capturingGenerator{reply: "the answer"}
	svc := NewService(repo, gen)

	if _, err := svc.Respond(context.Background(), testUserID, "a question", ""); err != nil {
		t.Fatalf("Respond failed: %v", err)
	}

	if len(repo.messages) != 2 {
		t.Fatalf("want 2 appended messages, got %d", len(repo.messages))
	}
	if repo.messages[0].Role != RoleUser || repo.messages[0].Content != "a question" {
		t.Errorf("first append should be the user message, got %+v", repo.messages[0])
	}
	if repo.messages[1].Role != RoleModel || repo.messages[1].Content != "the answer" {
		t.Errorf("second append should be the model reply, got %+v", repo.messages[1])
	}
}

func TestRespondGenerationFailureLeavesHistoryUntouched(t *testing.T) {
	repo := seededRepo(4)
	gen := &capturingGenerator{err: errors.New("all providers down")}
	svc := NewService(repo, gen)

	if _, err := svc.Respond(context.Background(), testUserID, "a question", ""); err == nil {
		t.Fatal("Respond should propagate the generation error")
	}
	if len(repo.messages) != 4 {
		t.Errorf("history must not change on generation failure, got %d messages", len(repo.messages))
	}
}

func TestRespondPersistenceFailureStillReturnsReply(t *testing.T) {
	repo := seededRepo(0)
	repo.appendErr = errors.New("db down")
	gen := &capturingGenerator{reply: "still yours"}
	svc := NewService(repo, gen)

	reply, err := svc.Respond(context.Background(), testUserID, "a question", "")
	if err != nil {
		t.Fatalf("a failed history write must not fail the turn: %v", err)
	}
	if reply != "still yours" {
		t.Errorf("want reply %q, got %q", "still yours", reply)
	}
}

func TestRespondRejectsEmptyMessage(t *testing.T) {
	gen := &capturingGenerator{reply: "never"}
	svc := NewService(&fakeRepo{}, gen)

	_, err := svc.Respond(context.Background(), testUserID, "   ", "")
	if !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("want ErrEmptyMessage, got %v", err)
	}
	if gen.lastPrompt != "" {
		t.Error("no generation call may happen for an empty message")
	}
}

func TestHistoryAbsentChat(t *testing.T) {
	svc := NewService(&fakeRepo{}, &capturingGenerator{})

	messages, err := svc.History(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(messages) != 0 {
		t.Errorf("absent chat should yield an empty history, got %d", len(messages))
	}
}

func TestClear(t *testing.T) {
	repo := seededRepo(6)
	svc := NewService(repo, &capturingGenerator{})

	if err := svc.Clear(context.Background(), testUserID); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if !repo.deleteDone {
		t.Error("Clear must delete the chat record")
	}
}
