package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/taskboard/taskboard-go/internal/authz"
	"github.com/taskboard/taskboard-go/internal/model"
	"github.com/taskboard/taskboard-go/internal/repository"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrDueDateRequired = errors.New("due date is required")
	ErrInvalidStatus   = errors.New("invalid task status")
)

// TaskService handles task business logic. Ownership is enforced by the
// store's owner-scoped lookups, so another user's task surfaces as not found
// rather than forbidden.
type TaskService struct {
	tasks TaskStore
	users UserStore
}

// NewTaskService creates a new TaskService.
func NewTaskService(tasks TaskStore, users UserStore) *TaskService {
	return &TaskService{tasks: tasks, users: users}
}

// Create creates a task owned by ownerID. The owner must exist; status
// defaults to TODO when omitted.
func (s *TaskService) Create(ctx context.Context, ownerID int64, req model.CreateTaskRequest) (model.TaskResponse, error) {
	if req.Title == "" {
		return model.TaskResponse{}, ErrTitleRequired
	}
	if req.DueDate.IsZero() {
		return model.TaskResponse{}, ErrDueDateRequired
	}

	status := req.Status
	if status == "" {
		status = model.StatusTodo
	}
	if !status.Valid() {
		return model.TaskResponse{}, ErrInvalidStatus
	}

	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.TaskResponse{}, ErrUserNotFound
		}
		return model.TaskResponse{}, err
	}

	task := &model.Task{
		Title:       req.Title,
		Description: nullString(req.Description),
		DueDate:     req.DueDate,
		Status:      status,
		UserID:      ownerID,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return model.TaskResponse{}, err
	}

	return model.TaskToResponse(task), nil
}

// GetOwned retrieves a task by id for the given caller. A task owned by
// someone else is reported as not found.
func (s *TaskService) GetOwned(ctx context.Context, taskID, callerID int64) (model.TaskResponse, error) {
	task, err := s.tasks.GetOwned(ctx, taskID, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return model.TaskResponse{}, ErrTaskNotFound
		}
		return model.TaskResponse{}, err
	}
	return model.TaskToResponse(task), nil
}

// GetByID retrieves a task by id alone. Unauthenticated, same visibility as
// the public list.
func (s *TaskService) GetByID(ctx context.Context, taskID int64) (model.TaskResponse, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return model.TaskResponse{}, ErrTaskNotFound
		}
		return model.TaskResponse{}, err
	}
	return model.TaskToResponse(task), nil
}

// Update overwrites the mutable fields of a task owned by the caller.
func (s *TaskService) Update(ctx context.Context, taskID, callerID int64, req model.UpdateTaskRequest) (model.TaskResponse, error) {
	if req.Title == "" {
		return model.TaskResponse{}, ErrTitleRequired
	}
	if req.DueDate.IsZero() {
		return model.TaskResponse{}, ErrDueDateRequired
	}
	if !req.Status.Valid() {
		return model.TaskResponse{}, ErrInvalidStatus
	}

	task, err := s.tasks.GetOwned(ctx, taskID, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return model.TaskResponse{}, ErrTaskNotFound
		}
		return model.TaskResponse{}, err
	}

	task.Title = req.Title
	task.Description = nullString(req.Description)
	task.DueDate = req.DueDate
	task.Status = req.Status

	if err := s.tasks.Update(ctx, task); err != nil {
		return model.TaskResponse{}, err
	}

	return model.TaskToResponse(task), nil
}

// Delete permanently removes a task owned by the caller.
func (s *TaskService) Delete(ctx context.Context, taskID, callerID int64) error {
	if err := s.tasks.Delete(ctx, taskID, callerID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return ErrTaskNotFound
		}
		return err
	}
	return nil
}

// List returns every task in the system regardless of owner.
func (s *TaskService) List(ctx context.Context) ([]model.TaskResponse, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	return model.TasksToResponse(tasks), nil
}

// ListForUser returns the tasks owned by userID. Callers may only list their
// own tasks; anyone else is rejected before the store is touched.
func (s *TaskService) ListForUser(ctx context.Context, callerID, userID int64) ([]model.TaskResponse, error) {
	if callerID != userID {
		return nil, authz.ErrForbidden
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	tasks, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return model.TasksToResponse(tasks), nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
