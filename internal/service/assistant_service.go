package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"notepad-ai/internal/domain"
	"notepad-ai/internal/llm"
	"notepad-ai/internal/repository"
	"notepad-ai/pkg/ids"
)

const (
	GreetingText   = "Hi! I'm your AI assistant. I can help you improve your notes, generate ideas, or answer questions about your content."
	MissingKeyText = "Please set your OpenAI API key in the settings to use AI features."
	NoResponseText = "Sorry, I could not generate a response."
	FailureText    = "Sorry, I couldn't process your request. Please check your API key and try again."
)

type AssistantService struct {
	settingsRepo repository.SettingsRepository
	notes        *NoteService
	providers    llm.Factory
	timeout      time.Duration
	logger       *slog.Logger
	now          func() time.Time
}

func NewAssistantService(settingsRepo repository.SettingsRepository, notes *NoteService, providers llm.Factory, timeout time.Duration, logger *slog.Logger) *AssistantService {
	return &AssistantService{
		settingsRepo: settingsRepo,
		notes:        notes,
		providers:    providers,
		timeout:      timeout,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *AssistantService) Greeting() *domain.Message {
	return s.reply(GreetingText)
}

// Chat answers a question, optionally in the context of the active note.
// Failures of the completion call are reported as a static assistant reply.
func (s *AssistantService) Chat(ctx context.Context, req *domain.ChatRequest) (*domain.ChatResponse, error) {
	text := strings.TrimSpace(req.Message)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	var active *domain.Note
	if req.ActiveNoteID != "" {
		note, err := s.notes.load(ctx, req.ActiveNoteID, "")
		if err != nil {
			return nil, err
		}
		active = note
	}

	resp := &domain.ChatResponse{
		UserMessage: &domain.Message{
			ID:        ids.New(),
			Text:      req.Message,
			IsUser:    true,
			Timestamp: s.now(),
		},
	}

	key, err := s.settingsRepo.APIKey(ctx)
	if err != nil {
		return nil, err
	}
	if key == "" {
		resp.AssistantMessage = s.reply(MissingKeyText)
		return resp, nil
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	completion, err := s.providers(key).Complete(ctx, llm.CompletionRequest{
		Messages: BuildMessages(active, req.Message),
	})
	if err != nil {
		s.logger.WarnContext(ctx, "assistant request failed", "error", err)
		resp.AssistantMessage = s.reply(FailureText)
		return resp, nil
	}

	answer := completion.Content
	if answer == "" {
		answer = NoResponseText
	}
	resp.AssistantMessage = s.reply(answer)
	return resp, nil
}

func (s *AssistantService) reply(text string) *domain.Message {
	return &domain.Message{
		ID:        ids.New(),
		Text:      text,
		IsUser:    false,
		Timestamp: s.now(),
	}
}

// BuildMessages assembles the system prompt and user turn sent upstream.
func BuildMessages(active *domain.Note, question string) []llm.Message {
	situation := "not viewing any specific note"
	user := question
	if active != nil {
		situation = fmt.Sprintf("working on a %s titled \"%s\"", active.Type, active.Title)
		user = fmt.Sprintf("Current note content: \"%s\"\n\nUser question: %s", active.Content, question)
	}

	return []llm.Message{
		{
			Role:    llm.RoleSystem,
			Content: fmt.Sprintf("You are a helpful AI assistant integrated into a notes app. The user is currently %s. Be concise and helpful.", situation),
		},
		{
			Role:    llm.RoleUser,
			Content: user,
		},
	}
}
