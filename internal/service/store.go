package service

import (
	"context"

	"github.com/taskboard/taskboard-go/internal/model"
)

// UserStore is the persistence surface the services need for users. It is
// satisfied by *repository.UserRepository.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]model.User, error)
	SearchByName(ctx context.Context, fragment string) ([]model.User, error)
}

// TaskStore is the persistence surface the services need for tasks. It is
// satisfied by *repository.TaskRepository.
type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id int64) (*model.Task, error)
	GetOwned(ctx context.Context, id, userID int64) (*model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id, userID int64) error
	List(ctx context.Context) ([]model.Task, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Task, error)
}
