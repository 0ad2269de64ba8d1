package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"notepad-ai/internal/domain"
	"notepad-ai/internal/llm"
)

func newAssistantFixture(apiKey string, provider *mockProvider) (*AssistantService, *NoteService) {
	notes := NewNoteService(newMockNoteRepo())
	settings := &mockSettingsRepo{apiKey: apiKey}
	return NewAssistantService(settings, notes, provider.factory(), 0, discardLogger), notes
}

func TestAssistantService_Greeting(t *testing.T) {
	service, _ := newAssistantFixture("", &mockProvider{})
	msg := service.Greeting()
	if msg.Text != GreetingText || msg.IsUser {
		t.Errorf("unexpected greeting %+v", msg)
	}
}

func TestAssistantService_MissingKey(t *testing.T) {
	provider := &mockProvider{}
	service, _ := newAssistantFixture("", provider)

	resp, err := service.Chat(context.Background(), &domain.ChatRequest{Message: "hello"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.AssistantMessage.Text != MissingKeyText {
		t.Errorf("expected missing key reply, got %q", resp.AssistantMessage.Text)
	}
	if !resp.UserMessage.IsUser || resp.UserMessage.Text != "hello" {
		t.Errorf("unexpected user message %+v", resp.UserMessage)
	}
	if len(provider.calls) != 0 {
		t.Error("provider must not be called without a key")
	}
}

func TestAssistantService_EmptyMessage(t *testing.T) {
	service, _ := newAssistantFixture("sk", &mockProvider{})
	if _, err := service.Chat(context.Background(), &domain.ChatRequest{Message: "  "}); !errors.Is(err, ErrEmptyMessage) {
		t.Errorf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestAssistantService_Replies(t *testing.T) {
	tests := []struct {
		name     string
		response *llm.CompletionResponse
		err      error
		want     string
	}{
		{"answer", &llm.CompletionResponse{Content: "Use headings."}, nil, "Use headings."},
		{"empty completion", &llm.CompletionResponse{}, nil, NoResponseText},
		{"upstream failure", nil, errUpstream, FailureText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockProvider{response: tt.response, err: tt.err}
			service, _ := newAssistantFixture("sk-user", provider)

			resp, err := service.Chat(context.Background(), &domain.ChatRequest{Message: "tips?"})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if resp.AssistantMessage.Text != tt.want {
				t.Errorf("expected %q, got %q", tt.want, resp.AssistantMessage.Text)
			}
			if resp.AssistantMessage.IsUser {
				t.Error("assistant message flagged as user")
			}
			if len(provider.keys) != 1 || provider.keys[0] != "sk-user" {
				t.Errorf("provider built with keys %v", provider.keys)
			}
		})
	}
}

func TestAssistantService_ActiveNoteContext(t *testing.T) {
	provider := &mockProvider{response: &llm.CompletionResponse{Content: "ok"}}
	service, notes := newAssistantFixture("sk", provider)
	ctx := context.Background()

	note, _ := notes.Create(ctx, domain.NoteTypeNote)
	content := "Draft of the quarterly plan"
	notes.Update(ctx, note.ID, &domain.UpdateNoteRequest{Content: &content})

	if _, err := service.Chat(ctx, &domain.ChatRequest{Message: "summarise", ActiveNoteID: note.ID}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(provider.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(provider.calls))
	}
	msgs := provider.calls[0].Messages
	if len(msgs) != 2 || msgs[0].Role != llm.RoleSystem || msgs[1].Role != llm.RoleUser {
		t.Fatalf("unexpected messages %+v", msgs)
	}
	if !strings.Contains(msgs[0].Content, `working on a note titled "New Note"`) {
		t.Errorf("system prompt missing note context: %q", msgs[0].Content)
	}
	if msgs[1].Content != "Current note content: \"Draft of the quarterly plan\"\n\nUser question: summarise" {
		t.Errorf("unexpected user turn %q", msgs[1].Content)
	}

	if _, err := service.Chat(ctx, &domain.ChatRequest{Message: "x", ActiveNoteID: "missing"}); !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestBuildMessages_NoNote(t *testing.T) {
	msgs := BuildMessages(nil, "what can you do?")
	want := "You are a helpful AI assistant integrated into a notes app. The user is currently not viewing any specific note. Be concise and helpful."
	if msgs[0].Content != want {
		t.Errorf("system prompt = %q", msgs[0].Content)
	}
	if msgs[1].Content != "what can you do?" {
		t.Errorf("user turn = %q", msgs[1].Content)
	}
}
