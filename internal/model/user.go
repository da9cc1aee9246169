package model

import "time"

// User represents a user row in the database. PasswordHash never leaves
// the service layer.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	DateOfBirth  Date
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateUserRequest represents a user registration request.
type CreateUserRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	DateOfBirth Date   `json:"dateOfBirth" validate:"required"`
}

// UpdateUserRequest represents a user profile update request.
type UpdateUserRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	DateOfBirth Date   `json:"dateOfBirth"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents a successful login: the bearer token plus the
// identity it was issued for.
type AuthResponse struct {
	Token  string `json:"token"`
	Type   string `json:"type"`
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
}

// UserResponse represents user data safe for API responses (no credential
// material).
type UserResponse struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	DateOfBirth Date      `json:"dateOfBirth"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UserToResponse maps a stored user to its transfer shape. Each field is
// listed once; the password hash is deliberately absent.
func UserToResponse(u *User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		DateOfBirth: u.DateOfBirth,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// UsersToResponse maps a slice of users to transfer shapes.
func UsersToResponse(users []User) []UserResponse {
	result := make([]UserResponse, len(users))
	for i := range users {
		result[i] = UserToResponse(&users[i])
	}
	return result
}
