package model

import "time"

// DefaultUserLocation is stored when a user registers without a location.
const DefaultUserLocation = "India"

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

// User represents a user in the database.
type User struct {
	ID           int64
	Name         string
	LastName     string
	Email        string
	PasswordHash string
	Location     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateUserRequest represents a user registration request.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest represents a profile update. All fields overwrite the stored values.
type UpdateUserRequest struct {
	Name     string `json:"name"`
	LastName string `json:"lastname"`
	Email    string `json:"email"`
	Location string `json:"location"`
}

// AuthResponse represents an authentication response with a JWT token and user info.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse represents user data safe for API responses (no password digest).
type UserResponse struct {
	ID        int64     `json:"_id"`
	Name      string    `json:"name"`
	LastName  string    `json:"lastname"`
	Email     string    `json:"email"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Response converts a stored user into its public representation.
func (u *User) Response() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		LastName:  u.LastName,
		Email:     u.Email,
		Location:  u.Location,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
