package repository

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"notepad-ai/internal/domain"
	"notepad-ai/pkg/cookie"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// browser carries cookies between simulated requests the way a browser would.
type browser struct {
	cookies map[string]string
}

func newBrowser() *browser {
	return &browser{cookies: make(map[string]string)}
}

// request returns a context bound to a jar for one request and a function
// that commits the response cookies back into the browser.
func (b *browser) request(t *testing.T) (context.Context, func()) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for name, value := range b.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	rec := httptest.NewRecorder()
	ctx := cookie.WithJar(context.Background(), cookie.NewJar(rec, req, cookie.Options{MaxSize: 8192}))

	return ctx, func() {
		for _, c := range rec.Result().Cookies() {
			if c.MaxAge < 0 {
				delete(b.cookies, c.Name)
				continue
			}
			b.cookies[c.Name] = c.Value
		}
	}
}

func TestNoteRepository_RoundTrip(t *testing.T) {
	b := newBrowser()
	repo := NewNoteRepository(discard)

	created := time.Date(2024, 3, 1, 10, 30, 0, 123000000, time.UTC)
	notes := []*domain.Note{
		{ID: "a1", Title: "Groceries", Content: `[{"id":"t1","text":"milk","completed":false,"createdAt":"2024-03-01T10:30:00Z"}]`, Type: domain.NoteTypeTodo, CreatedAt: created, UpdatedAt: created},
		{ID: "b2", Title: "Thoughts; with, punctuation", Content: "line one\nline two \"quoted\"", Type: domain.NoteTypeNote, CreatedAt: created, UpdatedAt: created.Add(time.Hour)},
	}

	ctx, commit := b.request(t)
	require.NoError(t, repo.SaveAll(ctx, notes))
	commit()

	ctx, _ = b.request(t)
	loaded, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	for i, want := range notes {
		got := loaded[i]
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Title, got.Title)
		assert.Equal(t, want.Content, got.Content)
		assert.Equal(t, want.Type, got.Type)
		assert.True(t, want.CreatedAt.Equal(got.CreatedAt), "createdAt %v != %v", want.CreatedAt, got.CreatedAt)
		assert.True(t, want.UpdatedAt.Equal(got.UpdatedAt), "updatedAt %v != %v", want.UpdatedAt, got.UpdatedAt)
	}
}

func TestNoteRepository_MalformedCookie(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not json", cookie.Escape("{{{")},
		{"wrong shape", cookie.Escape(`{"id":"x"}`)},
		{"bad escape", "%zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBrowser()
			b.cookies[CookieNotes] = tt.value

			ctx, _ := b.request(t)
			notes, err := NewNoteRepository(discard).List(ctx)
			require.NoError(t, err)
			assert.NotNil(t, notes)
			assert.Empty(t, notes)
		})
	}
}

func TestNoteRepository_Empty(t *testing.T) {
	ctx, _ := newBrowser().request(t)
	notes, err := NewNoteRepository(discard).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestNoteRepository_TooLarge(t *testing.T) {
	ctx, _ := newBrowser().request(t)
	notes := []*domain.Note{{ID: "big", Content: strings.Repeat("x", 9000), Type: domain.NoteTypeNote}}

	err := NewNoteRepository(discard).SaveAll(ctx, notes)
	assert.True(t, errors.Is(err, ErrTooLarge), "got %v", err)
}

func TestRepositories_NoJar(t *testing.T) {
	ctx := context.Background()

	_, err := NewNoteRepository(discard).List(ctx)
	assert.ErrorIs(t, err, ErrNoJar)
	_, err = NewUserRepository(discard).Get(ctx)
	assert.ErrorIs(t, err, ErrNoJar)
	_, err = NewSessionRepository().Token(ctx)
	assert.ErrorIs(t, err, ErrNoJar)
	_, err = NewSettingsRepository().Theme(ctx)
	assert.ErrorIs(t, err, ErrNoJar)
}

func TestUserRepository(t *testing.T) {
	b := newBrowser()
	repo := NewUserRepository(discard)

	ctx, commit := b.request(t)
	user, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)

	require.NoError(t, repo.Save(ctx, &domain.User{ID: "u1", Username: "ada", Email: "ada@example.com"}))
	commit()

	ctx, commit = b.request(t)
	user, err = repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "ada@example.com", user.Email)

	require.NoError(t, repo.Clear(ctx))
	commit()
	_, ok := b.cookies[CookieUser]
	assert.False(t, ok)
}

func TestUserRepository_Malformed(t *testing.T) {
	b := newBrowser()
	b.cookies[CookieUser] = cookie.Escape("not-json")

	ctx, _ := b.request(t)
	user, err := NewUserRepository(discard).Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSettingsRepository(t *testing.T) {
	b := newBrowser()
	repo := NewSettingsRepository()

	ctx, commit := b.request(t)
	theme, err := repo.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, theme)

	require.NoError(t, repo.SaveTheme(ctx, domain.ThemeDark))
	require.NoError(t, repo.SaveAPIKey(ctx, "sk-test key"))
	commit()

	ctx, commit = b.request(t)
	theme, _ = repo.Theme(ctx)
	assert.Equal(t, domain.ThemeDark, theme)
	key, _ := repo.APIKey(ctx)
	assert.Equal(t, "sk-test key", key)

	require.NoError(t, repo.ClearAPIKey(ctx))
	commit()
	ctx, _ = b.request(t)
	key, _ = repo.APIKey(ctx)
	assert.Empty(t, key)
}

func TestSessionRepository(t *testing.T) {
	b := newBrowser()
	repo := NewSessionRepository()

	ctx, commit := b.request(t)
	require.NoError(t, repo.SaveToken(ctx, "tok"))
	commit()

	ctx, commit = b.request(t)
	token, _ := repo.Token(ctx)
	assert.Equal(t, "tok", token)

	require.NoError(t, repo.ClearToken(ctx))
	commit()
	ctx, _ = b.request(t)
	token, _ = repo.Token(ctx)
	assert.Empty(t, token)
}
