package domain

import "time"

type NoteType string

const (
	NoteTypeNote    NoteType = "note"
	NoteTypeMindMap NoteType = "mindmap"
	NoteTypeTodo    NoteType = "todo"
)

// Valid reports whether t is one of the three supported content types.
func (t NoteType) Valid() bool {
	switch t {
	case NoteTypeNote, NoteTypeMindMap, NoteTypeTodo:
		return true
	}
	return false
}

// Note is a user-authored document. Content holds plain text for
// NoteTypeNote and a JSON array of MindMapNode or TodoItem otherwise.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Type      NoteType  `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateNoteRequest struct {
	Type NoteType `json:"type" validate:"required,oneof=note mindmap todo"`
}

type UpdateNoteRequest struct {
	Title   *string `json:"title" validate:"omitempty,max=200"`
	Content *string `json:"content"`
}

type NoteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Type      NoteType  `json:"type"`
	Preview   string    `json:"preview"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
