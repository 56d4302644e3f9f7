// Package service contains the business logic orchestrating repositories and
// the session store.
package service

import (
	"context"
	"errors"

	"ladle/internal/models"
	"ladle/internal/observability"
	"ladle/internal/repository"
	"ladle/internal/session"
	"ladle/internal/validation"
)

// AuthService orchestrates signup, login, session checks and logout.
type AuthService struct {
	users    repository.UserRepository
	sessions session.Store
}

// SignupInput carries the signup request fields. Bio and ImageURL are optional.
type SignupInput struct {
	Username string
	Password string
	Bio      string
	ImageURL string
}

func NewAuthService(users repository.UserRepository, sessions session.Store) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

// Signup registers a new account and opens a session for it.
//
// A duplicate username is deliberately not surfaced: the store rolls the write
// back, the conflict is swallowed, and a session is still created for the
// unsaved user (zero ID). Clients depend on this quirk, so it is pinned by
// tests; a later session check against that ID fails because the user never
// resolves.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*models.User, string, error) {
	if in.Username == "" || in.Password == "" {
		return nil, "", models.NewValidationError("username and password required")
	}
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, "", models.NewValidationError(err.Error())
	}
	if err := validation.ValidateProfileField("bio", in.Bio); err != nil {
		return nil, "", models.NewValidationError(err.Error())
	}
	if err := validation.ValidateProfileField("image_url", in.ImageURL); err != nil {
		return nil, "", models.NewValidationError(err.Error())
	}

	user := &models.User{
		Username: in.Username,
		Bio:      in.Bio,
		ImageURL: in.ImageURL,
	}
	if err := user.SetPassword(in.Password); err != nil {
		return nil, "", models.NewInternalError(err)
	}

	if err := s.users.Create(ctx, user); err != nil && !models.IsConflict(err) {
		return nil, "", err
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", models.NewInternalError(err)
	}
	observability.SessionsIssued.Inc()
	return user, token, nil
}

// Login authenticates the credentials and rotates the session. An unknown
// username and a wrong password produce the identical error so callers cannot
// enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	if username == "" || password == "" {
		return nil, "", models.NewValidationError("username and password required")
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if user == nil || !user.Authenticate(password) {
		return nil, "", models.NewUnauthorizedError("Unauthorized")
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", models.NewInternalError(err)
	}
	observability.SessionsIssued.Inc()
	return user, token, nil
}

// CheckSession resolves a token to the full user profile. Both an unbound
// token and a bound ID that no longer resolves yield an unauthorized error.
// A session-store or user-store outage is an internal error, not a 401.
func (s *AuthService) CheckSession(ctx context.Context, token string) (*models.User, error) {
	userID, err := s.sessions.Get(ctx, token)
	if errors.Is(err, session.ErrNoSession) {
		return nil, models.NewUnauthorizedError("Unauthorized")
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if models.IsNotFound(err) {
		return nil, models.NewUnauthorizedError("Unauthorized")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Logout clears the session bound to token. Without an active session it
// fails; clearing is otherwise idempotent at the store level.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if _, err := s.sessions.Get(ctx, token); err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return models.NewUnauthorizedError("Unauthorized")
		}
		return models.NewInternalError(err)
	}
	if err := s.sessions.Clear(ctx, token); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
