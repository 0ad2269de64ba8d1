package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"notepad-ai/internal/domain"
	"notepad-ai/pkg/ids"
)

// TodoService edits the item list stored in a todo note's content.
type TodoService struct {
	notes *NoteService
}

func NewTodoService(notes *NoteService) *TodoService {
	return &TodoService{notes: notes}
}

func (s *TodoService) List(ctx context.Context, noteID string) (*domain.TodoListResponse, error) {
	note, err := s.notes.load(ctx, noteID, domain.NoteTypeTodo)
	if err != nil {
		return nil, err
	}

	items := parseTodos(note.Content)
	return &domain.TodoListResponse{
		Items:    items,
		Progress: Progress(items),
	}, nil
}

func (s *TodoService) Add(ctx context.Context, noteID, text string) (*domain.TodoItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyTodo
	}

	item := &domain.TodoItem{
		ID:        ids.New(),
		Text:      text,
		Completed: false,
		CreatedAt: s.notes.now(),
	}

	err := s.edit(ctx, noteID, func(items []*domain.TodoItem) ([]*domain.TodoItem, error) {
		return append(items, item), nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *TodoService) Toggle(ctx context.Context, noteID, itemID string) (*domain.TodoItem, error) {
	var toggled *domain.TodoItem
	err := s.edit(ctx, noteID, func(items []*domain.TodoItem) ([]*domain.TodoItem, error) {
		item := findTodo(items, itemID)
		if item == nil {
			return nil, ErrTodoNotFound
		}
		item.Completed = !item.Completed
		toggled = item
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return toggled, nil
}

func (s *TodoService) Update(ctx context.Context, noteID, itemID string, req *domain.UpdateTodoRequest) (*domain.TodoItem, error) {
	var updated *domain.TodoItem
	err := s.edit(ctx, noteID, func(items []*domain.TodoItem) ([]*domain.TodoItem, error) {
		item := findTodo(items, itemID)
		if item == nil {
			return nil, ErrTodoNotFound
		}
		if req.Text != nil {
			item.Text = *req.Text
		}
		if req.Completed != nil {
			item.Completed = *req.Completed
		}
		updated = item
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *TodoService) Delete(ctx context.Context, noteID, itemID string) error {
	return s.edit(ctx, noteID, func(items []*domain.TodoItem) ([]*domain.TodoItem, error) {
		for i, item := range items {
			if item.ID == itemID {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, ErrTodoNotFound
	})
}

func (s *TodoService) edit(ctx context.Context, noteID string, fn func([]*domain.TodoItem) ([]*domain.TodoItem, error)) error {
	_, err := s.notes.mutate(ctx, noteID, domain.NoteTypeTodo, func(n *domain.Note) error {
		items, err := fn(parseTodos(n.Content))
		if err != nil {
			return err
		}
		data, err := json.Marshal(items)
		if err != nil {
			return fmt.Errorf("failed to encode todo list: %w", err)
		}
		n.Content = string(data)
		return nil
	})
	return err
}

// Progress reports completed/total. The ratio of an empty list is 0.
func Progress(items []*domain.TodoItem) domain.TodoProgress {
	p := domain.TodoProgress{Total: len(items)}
	for _, item := range items {
		if item.Completed {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Ratio = float64(p.Completed) / float64(p.Total)
	}
	return p
}

// parseTodos decodes stored content; malformed content is an empty list.
func parseTodos(content string) []*domain.TodoItem {
	var items []*domain.TodoItem
	if content == "" || json.Unmarshal([]byte(content), &items) != nil {
		return []*domain.TodoItem{}
	}

	out := make([]*domain.TodoItem, 0, len(items))
	for _, item := range items {
		if item != nil {
			out = append(out, item)
		}
	}
	return out
}

func findTodo(items []*domain.TodoItem, id string) *domain.TodoItem {
	for _, item := range items {
		if item.ID == id {
			return item
		}
	}
	return nil
}
