package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jobportal/jobportal-go/internal/crypto"
	"github.com/jobportal/jobportal-go/internal/model"
	"github.com/jobportal/jobportal-go/internal/repository"
)

// UserService handles profile changes for authenticated users.
type UserService struct {
	users  UserStore
	tokens *crypto.TokenIssuer
}

// NewUserService creates a new UserService.
func NewUserService(users UserStore, tokens *crypto.TokenIssuer) *UserService {
	return &UserService{users: users, tokens: tokens}
}

// UpdateProfile overwrites the caller's name, lastname, email and location and
// returns the updated user with a freshly issued token.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req model.UpdateUserRequest) (model.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return model.AuthResponse{}, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrUserNotFound
		}
		return model.AuthResponse{}, err
	}

	email := model.NormalizeEmail(req.Email)
	if email != user.Email {
		other, err := s.users.GetByEmail(ctx, email)
		switch {
		case err == nil && other.ID != user.ID:
			return model.AuthResponse{}, ErrEmailTaken
		case err != nil && !errors.Is(err, repository.ErrUserNotFound):
			return model.AuthResponse{}, err
		}
	}

	user.Name = strings.TrimSpace(req.Name)
	user.LastName = strings.TrimSpace(req.LastName)
	user.Email = email
	user.Location = strings.TrimSpace(req.Location)

	if err := s.users.UpdateProfile(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return model.AuthResponse{}, ErrEmailTaken
		case errors.Is(err, repository.ErrUserNotFound):
			return model.AuthResponse{}, ErrUserNotFound
		}
		return model.AuthResponse{}, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{Token: token, User: user.Response()}, nil
}
