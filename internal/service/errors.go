package service

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNoteNotFound     = errors.New("note not found")
	ErrInvalidNoteType  = errors.New("invalid note type")
	ErrWrongNoteType    = errors.New("note has a different type")
	ErrNodeNotFound     = errors.New("mind map node not found")
	ErrRootNode         = errors.New("the root node cannot be deleted")
	ErrTodoNotFound     = errors.New("todo item not found")
	ErrEmptyTodo        = errors.New("todo text must not be empty")
	ErrEmptyMessage     = errors.New("message must not be empty")
	ErrEmptyAPIKey      = errors.New("api key must not be empty")
)
