package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"

	"notepad-ai/internal/domain"
	"notepad-ai/internal/llm"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// mockNoteRepo stores the collection as JSON so every List hands out fresh
// copies, the same as reading a cookie.
type mockNoteRepo struct {
	data    []byte
	saves   int
	saveErr error
}

func newMockNoteRepo() *mockNoteRepo {
	return &mockNoteRepo{}
}

func (m *mockNoteRepo) List(ctx context.Context) ([]*domain.Note, error) {
	notes := []*domain.Note{}
	if len(m.data) > 0 {
		if err := json.Unmarshal(m.data, &notes); err != nil {
			return nil, err
		}
	}
	return notes, nil
}

func (m *mockNoteRepo) SaveAll(ctx context.Context, notes []*domain.Note) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	data, err := json.Marshal(notes)
	if err != nil {
		return err
	}
	m.data = data
	m.saves++
	return nil
}

func (m *mockNoteRepo) put(notes ...*domain.Note) {
	data, _ := json.Marshal(notes)
	m.data = data
}

type mockUserRepo struct {
	user *domain.User
}

func (m *mockUserRepo) Get(ctx context.Context) (*domain.User, error) { return m.user, nil }
func (m *mockUserRepo) Save(ctx context.Context, user *domain.User) error {
	m.user = user
	return nil
}
func (m *mockUserRepo) Clear(ctx context.Context) error {
	m.user = nil
	return nil
}

type mockSessionRepo struct {
	token string
}

func (m *mockSessionRepo) Token(ctx context.Context) (string, error) { return m.token, nil }
func (m *mockSessionRepo) SaveToken(ctx context.Context, token string) error {
	m.token = token
	return nil
}
func (m *mockSessionRepo) ClearToken(ctx context.Context) error {
	m.token = ""
	return nil
}

type mockSettingsRepo struct {
	apiKey string
	theme  domain.Theme
}

func (m *mockSettingsRepo) APIKey(ctx context.Context) (string, error) { return m.apiKey, nil }
func (m *mockSettingsRepo) SaveAPIKey(ctx context.Context, key string) error {
	m.apiKey = key
	return nil
}
func (m *mockSettingsRepo) ClearAPIKey(ctx context.Context) error {
	m.apiKey = ""
	return nil
}
func (m *mockSettingsRepo) Theme(ctx context.Context) (domain.Theme, error) {
	if m.theme == "" {
		return domain.ThemeLight, nil
	}
	return m.theme, nil
}
func (m *mockSettingsRepo) SaveTheme(ctx context.Context, theme domain.Theme) error {
	m.theme = theme
	return nil
}

// mockProvider records completion calls and returns canned responses.
type mockProvider struct {
	mu       sync.Mutex
	keys     []string
	calls    []llm.CompletionRequest
	response *llm.CompletionResponse
	err      error
}

func (m *mockProvider) factory() llm.Factory {
	return func(apiKey string) llm.Provider {
		m.mu.Lock()
		m.keys = append(m.keys, apiKey)
		m.mu.Unlock()
		return m
	}
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, req)
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

var errUpstream = errors.New("upstream unavailable")
