package service

import (
	"context"
	"errors"

	"github.com/taskboard/taskboard-go/internal/authz"
	"github.com/taskboard/taskboard-go/internal/crypto"
	"github.com/taskboard/taskboard-go/internal/model"
	"github.com/taskboard/taskboard-go/internal/repository"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already exists")
)

// UserService handles user account business logic. Mutations are gated by
// the self-or-admin policy before any store write.
type UserService struct {
	users  UserStore
	hasher *crypto.Hasher
	policy *authz.Policy
}

// NewUserService creates a new UserService.
func NewUserService(users UserStore, hasher *crypto.Hasher, policy *authz.Policy) *UserService {
	return &UserService{users: users, hasher: hasher, policy: policy}
}

// Register creates a new user account. The plaintext password is hashed
// immediately and never stored. The admin flag cannot be set here.
func (s *UserService) Register(ctx context.Context, req model.CreateUserRequest) (model.UserResponse, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return model.UserResponse{}, err
	}

	user := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
		DateOfBirth:  req.DateOfBirth,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.UserResponse{}, ErrEmailTaken
		}
		return model.UserResponse{}, err
	}

	return model.UserToResponse(user), nil
}

// GetByID retrieves a single user.
func (s *UserService) GetByID(ctx context.Context, id int64) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}
	return model.UserToResponse(user), nil
}

// Update overwrites a user's profile fields. The caller must be the target
// user or an admin. Changing the email to one held by a different user fails
// with ErrEmailTaken; the unique index on the email column remains the
// authoritative check.
func (s *UserService) Update(ctx context.Context, callerID, targetID int64, req model.UpdateUserRequest) (model.UserResponse, error) {
	if err := s.policy.CanActOnUser(ctx, callerID, targetID); err != nil {
		return model.UserResponse{}, err
	}

	user, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}

	if req.Email != user.Email {
		if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
			return model.UserResponse{}, ErrEmailTaken
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, err
		}
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email
	if !req.DateOfBirth.IsZero() {
		user.DateOfBirth = req.DateOfBirth
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.UserResponse{}, ErrEmailTaken
		}
		return model.UserResponse{}, err
	}

	return model.UserToResponse(user), nil
}

// Delete permanently removes a user. The caller must be the target user or
// an admin. The user's tasks are removed in the same statement by the
// cascading foreign key.
func (s *UserService) Delete(ctx context.Context, callerID, targetID int64) error {
	if err := s.policy.CanActOnUser(ctx, callerID, targetID); err != nil {
		return err
	}

	if err := s.users.Delete(ctx, targetID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// List returns every user.
func (s *UserService) List(ctx context.Context) ([]model.UserResponse, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	return model.UsersToResponse(users), nil
}

// SearchByName returns users whose first or last name contains the fragment,
// case-insensitively.
func (s *UserService) SearchByName(ctx context.Context, fragment string) ([]model.UserResponse, error) {
	users, err := s.users.SearchByName(ctx, fragment)
	if err != nil {
		return nil, err
	}
	return model.UsersToResponse(users), nil
}
