package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/taskboard/taskboard-go/internal/model"
	"github.com/taskboard/taskboard-go/internal/repository"
)

// fakeUserStore is an in-memory UserStore that mirrors the repository's
// contract, including the unique-email conflict signal.
type fakeUserStore struct {
	nextID int64
	users  map[int64]model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{nextID: 1, users: make(map[int64]model.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}

	user.ID = f.nextID
	f.nextID++
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) Update(_ context.Context, user *model.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	for id, u := range f.users {
		if id != user.ID && u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}

	user.UpdatedAt = time.Now().UTC()
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserStore) List(_ context.Context) ([]model.User, error) {
	result := make([]model.User, 0, len(f.users))
	for _, u := range f.users {
		result = append(result, u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeUserStore) SearchByName(_ context.Context, fragment string) ([]model.User, error) {
	needle := strings.ToLower(fragment)
	var result []model.User
	for _, u := range f.users {
		if strings.Contains(strings.ToLower(u.FirstName), needle) ||
			strings.Contains(strings.ToLower(u.LastName), needle) {
			result = append(result, u)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// setAdmin flips the admin flag directly, the way an operator would.
func (f *fakeUserStore) setAdmin(id int64) {
	u := f.users[id]
	u.IsAdmin = true
	f.users[id] = u
}

// fakeTaskStore is an in-memory TaskStore with the same owner-scoped lookup
// behavior as the MySQL repository.
type fakeTaskStore struct {
	nextID int64
	tasks  map[int64]model.Task
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{nextID: 1, tasks: make(map[int64]model.Task)}
}

func (f *fakeTaskStore) Create(_ context.Context, task *model.Task) error {
	task.ID = f.nextID
	f.nextID++
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now
	f.tasks[task.ID] = *task
	return nil
}

func (f *fakeTaskStore) GetByID(_ context.Context, id int64) (*model.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}
	return &t, nil
}

func (f *fakeTaskStore) GetOwned(_ context.Context, id, userID int64) (*model.Task, error) {
	t, ok := f.tasks[id]
	if !ok || t.UserID != userID {
		return nil, repository.ErrTaskNotFound
	}
	return &t, nil
}

func (f *fakeTaskStore) Update(ctx context.Context, task *model.Task) error {
	if _, err := f.GetOwned(ctx, task.ID, task.UserID); err != nil {
		return err
	}

	task.UpdatedAt = time.Now().UTC()
	f.tasks[task.ID] = *task
	return nil
}

func (f *fakeTaskStore) Delete(_ context.Context, id, userID int64) error {
	t, ok := f.tasks[id]
	if !ok || t.UserID != userID {
		return repository.ErrTaskNotFound
	}
	delete(f.tasks, id)
	return nil
}

func (f *fakeTaskStore) List(_ context.Context) ([]model.Task, error) {
	result := make([]model.Task, 0, len(f.tasks))
	for _, t := range f.tasks {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeTaskStore) ListByUser(_ context.Context, userID int64) ([]model.Task, error) {
	var result []model.Task
	for _, t := range f.tasks {
		if t.UserID == userID {
			result = append(result, t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
