package authz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskboard/taskboard-go/internal/model"
	"github.com/taskboard/taskboard-go/internal/repository"
)

type fakeDirectory struct {
	users map[int64]*model.User
}

func (f *fakeDirectory) GetByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return u, nil
}

func newTestPolicy() *Policy {
	return NewPolicy(&fakeDirectory{users: map[int64]*model.User{
		1: {ID: 1, Email: "admin@example.com", IsAdmin: true},
		2: {ID: 2, Email: "user@example.com"},
	}})
}

func TestCanActOnUser_Self(t *testing.T) {
	assert.NoError(t, newTestPolicy().CanActOnUser(context.Background(), 2, 2))
}

func TestCanActOnUser_Admin(t *testing.T) {
	assert.NoError(t, newTestPolicy().CanActOnUser(context.Background(), 1, 2))
}

func TestCanActOnUser_OtherUserDenied(t *testing.T) {
	err := newTestPolicy().CanActOnUser(context.Background(), 2, 1)
	assert.ErrorIs(t, err, ErrForbidden)
}

// A caller whose account no longer exists is denied rather than surfacing a
// lookup error.
func TestCanActOnUser_VanishedCallerDenied(t *testing.T) {
	err := newTestPolicy().CanActOnUser(context.Background(), 99, 2)
	assert.ErrorIs(t, err, ErrForbidden)
}
