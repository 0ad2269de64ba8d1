package service

import (
	"context"
	"errors"
	"testing"

	"notepad-ai/internal/domain"
)

func newTodoFixture(t *testing.T) (*TodoService, *mockNoteRepo, string) {
	t.Helper()
	repo := newMockNoteRepo()
	notes := NewNoteService(repo)
	note, err := notes.Create(context.Background(), domain.NoteTypeTodo)
	if err != nil {
		t.Fatalf("failed to create todo list: %v", err)
	}
	return NewTodoService(notes), repo, note.ID
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name      string
		completed []bool
		want      domain.TodoProgress
	}{
		{"empty", nil, domain.TodoProgress{Completed: 0, Total: 0, Ratio: 0}},
		{"none done", []bool{false, false}, domain.TodoProgress{Completed: 0, Total: 2, Ratio: 0}},
		{"some done", []bool{true, false, false, true}, domain.TodoProgress{Completed: 2, Total: 4, Ratio: 0.5}},
		{"one of three", []bool{true, false, false}, domain.TodoProgress{Completed: 1, Total: 3, Ratio: 1.0 / 3.0}},
		{"all done", []bool{true, true}, domain.TodoProgress{Completed: 2, Total: 2, Ratio: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var items []*domain.TodoItem
			for _, c := range tt.completed {
				items = append(items, &domain.TodoItem{Completed: c})
			}
			if got := Progress(items); got != tt.want {
				t.Errorf("Progress() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTodoService_Add(t *testing.T) {
	service, _, noteID := newTodoFixture(t)
	ctx := context.Background()

	item, err := service.Add(ctx, noteID, "  buy milk  ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if item.Text != "buy milk" {
		t.Errorf("expected trimmed text, got %q", item.Text)
	}
	if item.Completed {
		t.Error("new items start incomplete")
	}
	if item.CreatedAt.IsZero() {
		t.Error("expected createdAt to be set")
	}

	second, _ := service.Add(ctx, noteID, "walk dog")

	list, _ := service.List(ctx, noteID)
	if len(list.Items) != 2 || list.Items[0].ID != item.ID || list.Items[1].ID != second.ID {
		t.Errorf("expected items appended in order, got %+v", list.Items)
	}
}

func TestTodoService_AddBlank(t *testing.T) {
	service, repo, noteID := newTodoFixture(t)
	saves := repo.saves

	for _, text := range []string{"", "   ", "\t\n"} {
		if _, err := service.Add(context.Background(), noteID, text); !errors.Is(err, ErrEmptyTodo) {
			t.Errorf("Add(%q): expected ErrEmptyTodo, got %v", text, err)
		}
	}
	if repo.saves != saves {
		t.Error("blank items must not be persisted")
	}
}

func TestTodoService_ToggleAndProgress(t *testing.T) {
	service, _, noteID := newTodoFixture(t)
	ctx := context.Background()

	a, _ := service.Add(ctx, noteID, "a")
	service.Add(ctx, noteID, "b")

	toggled, err := service.Toggle(ctx, noteID, a.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !toggled.Completed {
		t.Error("expected item to be completed")
	}

	list, _ := service.List(ctx, noteID)
	if list.Progress.Completed != 1 || list.Progress.Total != 2 || list.Progress.Ratio != 0.5 {
		t.Errorf("unexpected progress %+v", list.Progress)
	}

	toggled, _ = service.Toggle(ctx, noteID, a.ID)
	if toggled.Completed {
		t.Error("second toggle should clear completion")
	}

	if _, err := service.Toggle(ctx, noteID, "missing"); !errors.Is(err, ErrTodoNotFound) {
		t.Errorf("expected ErrTodoNotFound, got %v", err)
	}
}

func TestTodoService_UpdateAndDelete(t *testing.T) {
	service, _, noteID := newTodoFixture(t)
	ctx := context.Background()

	a, _ := service.Add(ctx, noteID, "draft")
	b, _ := service.Add(ctx, noteID, "keep")

	text := "final"
	done := true
	updated, err := service.Update(ctx, noteID, a.ID, &domain.UpdateTodoRequest{Text: &text, Completed: &done})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.Text != "final" || !updated.Completed {
		t.Errorf("unexpected item %+v", updated)
	}

	if err := service.Delete(ctx, noteID, a.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	list, _ := service.List(ctx, noteID)
	if len(list.Items) != 1 || list.Items[0].ID != b.ID {
		t.Errorf("expected only %s to remain, got %+v", b.ID, list.Items)
	}

	if err := service.Delete(ctx, noteID, a.ID); !errors.Is(err, ErrTodoNotFound) {
		t.Errorf("expected ErrTodoNotFound, got %v", err)
	}
}

func TestTodoService_MalformedContent(t *testing.T) {
	repo := newMockNoteRepo()
	repo.put(&domain.Note{ID: "t", Type: domain.NoteTypeTodo, Content: "{{not json"})
	service := NewTodoService(NewNoteService(repo))

	list, err := service.List(context.Background(), "t")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if list.Items == nil || len(list.Items) != 0 {
		t.Errorf("expected empty item list, got %+v", list.Items)
	}
	if list.Progress.Ratio != 0 {
		t.Errorf("expected ratio 0, got %v", list.Progress.Ratio)
	}

	if _, err := service.Add(context.Background(), "t", "recover"); err != nil {
		t.Fatalf("expected malformed list to be replaced, got %v", err)
	}
	list, _ = service.List(context.Background(), "t")
	if len(list.Items) != 1 {
		t.Errorf("expected 1 item after recovery, got %d", len(list.Items))
	}
}

func TestTodoService_WrongNoteType(t *testing.T) {
	notes := NewNoteService(newMockNoteRepo())
	note, _ := notes.Create(context.Background(), domain.NoteTypeNote)
	service := NewTodoService(notes)

	if _, err := service.Add(context.Background(), note.ID, "x"); !errors.Is(err, ErrWrongNoteType) {
		t.Errorf("expected ErrWrongNoteType, got %v", err)
	}
}
