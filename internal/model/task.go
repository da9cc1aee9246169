package model

import (
	"database/sql"
	"time"
)

// TaskStatus enumerates the lifecycle states of a task.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
)

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task represents a task row in the database. A task is owned by exactly
// one user and never changes owner.
type Task struct {
	ID          int64
	Title       string
	Description sql.NullString
	DueDate     Date
	Status      TaskStatus
	UserID      int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateTaskRequest represents a task creation request. Status is optional
// and defaults to TODO.
type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	DueDate     Date       `json:"dueDate" validate:"required"`
	Status      TaskStatus `json:"status" validate:"omitempty,oneof=TODO IN_PROGRESS DONE"`
}

// UpdateTaskRequest represents a full overwrite of a task's mutable fields.
type UpdateTaskRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	DueDate     Date       `json:"dueDate" validate:"required"`
	Status      TaskStatus `json:"status" validate:"required,oneof=TODO IN_PROGRESS DONE"`
}

// TaskResponse represents task data for API responses.
type TaskResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     Date       `json:"dueDate"`
	Status      TaskStatus `json:"status"`
	UserID      int64      `json:"userId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TaskToResponse maps a stored task to its transfer shape.
func TaskToResponse(t *Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description.String,
		DueDate:     t.DueDate,
		Status:      t.Status,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// TasksToResponse maps a slice of tasks to transfer shapes.
func TasksToResponse(tasks []Task) []TaskResponse {
	result := make([]TaskResponse, len(tasks))
	for i := range tasks {
		result[i] = TaskToResponse(&tasks[i])
	}
	return result
}
