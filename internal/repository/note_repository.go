package repository

import (
	"context"
	"errors"
	"log/slog"

	"notepad-ai/internal/domain"
	"notepad-ai/pkg/cookie"
)

type NoteRepository interface {
	List(ctx context.Context) ([]*domain.Note, error)
	SaveAll(ctx context.Context, notes []*domain.Note) error
}

type noteRepository struct {
	logger *slog.Logger
}

func NewNoteRepository(logger *slog.Logger) NoteRepository {
	return &noteRepository{logger: logger}
}

// List returns the stored collection. A malformed cookie is discarded and
// reported as an empty collection.
func (r *noteRepository) List(ctx context.Context) ([]*domain.Note, error) {
	jar, err := jarFrom(ctx)
	if err != nil {
		return nil, err
	}

	var notes []*domain.Note
	if err := jar.GetJSON(CookieNotes, &notes); err != nil {
		if !errors.Is(err, cookie.ErrNotFound) {
			r.logger.WarnContext(ctx, "discarding malformed notes cookie", "error", err)
		}
		return []*domain.Note{}, nil
	}

	out := make([]*domain.Note, 0, len(notes))
	for _, n := range notes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *noteRepository) SaveAll(ctx context.Context, notes []*domain.Note) error {
	if notes == nil {
		notes = []*domain.Note{}
	}
	return setJSON(ctx, CookieNotes, notes)
}
