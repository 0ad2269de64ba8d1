package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"notepad-ai/internal/domain"
	"notepad-ai/internal/repository"
	"notepad-ai/pkg/ids"
)

type NoteService struct {
	repo repository.NoteRepository
	now  func() time.Time
}

func NewNoteService(repo repository.NoteRepository) *NoteService {
	return &NoteService{
		repo: repo,
		now:  time.Now,
	}
}

func defaultTitle(t domain.NoteType) string {
	switch t {
	case domain.NoteTypeMindMap:
		return "New Mindmap"
	case domain.NoteTypeTodo:
		return "New Todo"
	}
	return "New Note"
}

// Create prepends a fresh note of the given type to the collection.
func (s *NoteService) Create(ctx context.Context, noteType domain.NoteType) (*domain.NoteResponse, error) {
	if !noteType.Valid() {
		return nil, ErrInvalidNoteType
	}

	notes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	content := ""
	if noteType == domain.NoteTypeTodo {
		content = "[]"
	}

	now := s.now()
	note := &domain.Note{
		ID:        ids.New(),
		Title:     defaultTitle(noteType),
		Content:   content,
		Type:      noteType,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.SaveAll(ctx, append([]*domain.Note{note}, notes...)); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return toNoteResponse(note), nil
}

// List returns notes whose title or content contains query, ignoring case.
func (s *NoteService) List(ctx context.Context, query string) ([]*domain.NoteResponse, error) {
	notes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(query)
	responses := make([]*domain.NoteResponse, 0, len(notes))
	for _, n := range notes {
		if query != "" &&
			!strings.Contains(strings.ToLower(n.Title), query) &&
			!strings.Contains(strings.ToLower(n.Content), query) {
			continue
		}
		responses = append(responses, toNoteResponse(n))
	}

	return responses, nil
}

func (s *NoteService) GetByID(ctx context.Context, noteID string) (*domain.NoteResponse, error) {
	notes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	_, note := findNote(notes, noteID)
	if note == nil {
		return nil, ErrNoteNotFound
	}
	return toNoteResponse(note), nil
}

func (s *NoteService) Update(ctx context.Context, noteID string, req *domain.UpdateNoteRequest) (*domain.NoteResponse, error) {
	note, err := s.mutate(ctx, noteID, "", func(n *domain.Note) error {
		if req.Title != nil {
			n.Title = *req.Title
		}
		if req.Content != nil {
			n.Content = *req.Content
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toNoteResponse(note), nil
}

func (s *NoteService) Delete(ctx context.Context, noteID string) error {
	notes, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	idx, _ := findNote(notes, noteID)
	if idx < 0 {
		return ErrNoteNotFound
	}

	notes = append(notes[:idx], notes[idx+1:]...)
	if err := s.repo.SaveAll(ctx, notes); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}

// load returns the note after checking its type. An empty want skips the check.
func (s *NoteService) load(ctx context.Context, noteID string, want domain.NoteType) (*domain.Note, error) {
	notes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	_, note := findNote(notes, noteID)
	if note == nil {
		return nil, ErrNoteNotFound
	}
	if want != "" && note.Type != want {
		return nil, fmt.Errorf("%w: %s is a %s", ErrWrongNoteType, noteID, note.Type)
	}
	return note, nil
}

// mutate applies fn to the note, bumps updatedAt and writes the collection back.
func (s *NoteService) mutate(ctx context.Context, noteID string, want domain.NoteType, fn func(*domain.Note) error) (*domain.Note, error) {
	notes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	_, note := findNote(notes, noteID)
	if note == nil {
		return nil, ErrNoteNotFound
	}
	if want != "" && note.Type != want {
		return nil, fmt.Errorf("%w: %s is a %s", ErrWrongNoteType, noteID, note.Type)
	}

	if err := fn(note); err != nil {
		return nil, err
	}
	note.UpdatedAt = s.now()

	if err := s.repo.SaveAll(ctx, notes); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	return note, nil
}

func findNote(notes []*domain.Note, id string) (int, *domain.Note) {
	for i, n := range notes {
		if n.ID == id {
			return i, n
		}
	}
	return -1, nil
}

func toNoteResponse(n *domain.Note) *domain.NoteResponse {
	return &domain.NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Type:      n.Type,
		Preview:   preview(n),
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// preview is the one-line summary shown in the note list.
func preview(n *domain.Note) string {
	if n.Type == domain.NoteTypeTodo {
		var items []json.RawMessage
		if err := json.Unmarshal([]byte(n.Content), &items); err != nil {
			return "0 items"
		}
		return fmt.Sprintf("%d items", len(items))
	}
	if n.Content == "" {
		return "No content"
	}
	return n.Content
}
