package domain

import "time"

type TodoItem struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

type AddTodoRequest struct {
	Text string `json:"text" validate:"required,max=500"`
}

type UpdateTodoRequest struct {
	Text      *string `json:"text" validate:"omitempty,max=500"`
	Completed *bool   `json:"completed"`
}

type TodoProgress struct {
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Ratio     float64 `json:"ratio"`
}

type TodoListResponse struct {
	Items    []*TodoItem  `json:"items"`
	Progress TodoProgress `json:"progress"`
}
