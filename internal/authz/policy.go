// Package authz decides whether an authenticated caller may act on a
// resource. Task access needs no policy object here: the repository scopes
// every mutating task lookup by owner, so a foreign task simply does not
// exist from the caller's point of view.
package authz

import (
	"context"
	"errors"

	"github.com/taskboard/taskboard-go/internal/model"
)

var ErrForbidden = errors.New("forbidden")

// UserDirectory is the subset of the user store the policy needs to resolve
// a caller's admin flag.
type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// Policy applies the self-or-admin rule for actions on user records.
type Policy struct {
	users UserDirectory
}

// NewPolicy creates a Policy backed by the given user directory.
func NewPolicy(users UserDirectory) *Policy {
	return &Policy{users: users}
}

// CanActOnUser reports whether the caller may mutate the user record with
// targetID. Allowed when the caller is the target, or when the caller's
// stored record carries the admin flag. The flag is read from the store on
// every check, so demotion takes effect on the next request rather than at
// token expiry.
func (p *Policy) CanActOnUser(ctx context.Context, callerID, targetID int64) error {
	if callerID == targetID {
		return nil
	}

	caller, err := p.users.GetByID(ctx, callerID)
	if err != nil {
		// A caller whose account vanished mid-session gets a denial,
		// not a lookup error.
		return ErrForbidden
	}

	if !caller.IsAdmin {
		return ErrForbidden
	}
	return nil
}
