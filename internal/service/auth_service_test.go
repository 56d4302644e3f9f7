package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ladle/internal/models"
	"ladle/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a function-field stub of repository.UserRepository.
type userRepoStub struct {
	createFn        func(ctx context.Context, user *models.User) error
	getByUsernameFn func(ctx context.Context, username string) (*models.User, error)
	getByIDFn       func(ctx context.Context, id uint) (*models.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		},
	}
}

func newSessions(t *testing.T) session.Store {
	t.Helper()
	return session.NewMemoryStore(time.Minute)
}

// downSessions is a session.Store whose backing store is unreachable.
type downSessions struct{}

func (downSessions) Create(_ context.Context, _ uint) (string, error) {
	return "", errors.New("dial tcp: connection refused")
}

func (downSessions) Get(_ context.Context, _ string) (uint, error) {
	return 0, errors.New("dial tcp: connection refused")
}

func (downSessions) Clear(_ context.Context, _ string) error {
	return errors.New("dial tcp: connection refused")
}

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func TestAuthService_Signup(t *testing.T) {
	t.Parallel()

	t.Run("success creates user and binds session", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.createFn = func(_ context.Context, u *models.User) error {
			u.ID = 1
			return nil
		}
		sessions := newSessions(t)
		svc := NewAuthService(repo, sessions)

		user, token, err := svc.Signup(context.Background(), SignupInput{
			Username: "chef1",
			Password: "pw123",
			Bio:      "I cook",
		})
		require.NoError(t, err)
		assert.Equal(t, "chef1", user.Username)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "pw123", user.PasswordHash)

		userID, err := sessions.Get(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, uint(1), userID)
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(noopUserRepo(), newSessions(t))

		for _, in := range []SignupInput{
			{Username: "", Password: "pw123"},
			{Username: "chef1", Password: ""},
			{},
		} {
			_, _, err := svc.Signup(context.Background(), in)
			assertErrorCode(t, err, "VALIDATION_ERROR")
		}
	})

	t.Run("field length bounds", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(noopUserRepo(), newSessions(t))

		_, _, err := svc.Signup(context.Background(), SignupInput{
			Username: strings.Repeat("a", 81),
			Password: "pw123",
		})
		assertErrorCode(t, err, "VALIDATION_ERROR")

		_, _, err = svc.Signup(context.Background(), SignupInput{
			Username: "chef1",
			Password: "pw123",
			Bio:      strings.Repeat("x", 256),
		})
		assertErrorCode(t, err, "VALIDATION_ERROR")
	})

	t.Run("duplicate username is swallowed and still opens a session", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.createFn = func(_ context.Context, _ *models.User) error {
			return models.NewConflictError("User")
		}
		sessions := newSessions(t)
		svc := NewAuthService(repo, sessions)

		user, token, err := svc.Signup(context.Background(), SignupInput{
			Username: "chef1",
			Password: "pw123",
		})
		require.NoError(t, err, "the conflict must not surface")
		assert.Zero(t, user.ID, "the user was never persisted")
		require.NotEmpty(t, token, "a session is still created")

		// The dangling session never resolves to a profile.
		_, err = svc.CheckSession(context.Background(), token)
		assertErrorCode(t, err, "UNAUTHORIZED")
	})

	t.Run("non-conflict storage failure propagates", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.createFn = func(_ context.Context, _ *models.User) error {
			return models.NewInternalError(errors.New("connection reset"))
		}
		svc := NewAuthService(repo, newSessions(t))

		_, _, err := svc.Signup(context.Background(), SignupInput{
			Username: "chef1",
			Password: "pw123",
		})
		assertErrorCode(t, err, "INTERNAL_ERROR")
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	withStoredUser := func(t *testing.T) *userRepoStub {
		t.Helper()
		stored := &models.User{ID: 1, Username: "chef1"}
		require.NoError(t, stored.SetPassword("pw123"))
		repo := noopUserRepo()
		repo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
			if username == "chef1" {
				u := *stored
				return &u, nil
			}
			return nil, nil
		}
		repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			if id == 1 {
				u := *stored
				return &u, nil
			}
			return nil, models.NewNotFoundError("User", id)
		}
		return repo
	}

	t.Run("success binds session to the user", func(t *testing.T) {
		t.Parallel()
		sessions := newSessions(t)
		svc := NewAuthService(withStoredUser(t), sessions)

		user, token, err := svc.Login(context.Background(), "chef1", "pw123")
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)

		userID, err := sessions.Get(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, uint(1), userID)
	})

	t.Run("re-login rotates the token", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(withStoredUser(t), newSessions(t))

		_, first, err := svc.Login(context.Background(), "chef1", "pw123")
		require.NoError(t, err)
		_, second, err := svc.Login(context.Background(), "chef1", "pw123")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(withStoredUser(t), newSessions(t))

		_, _, err := svc.Login(context.Background(), "", "pw123")
		assertErrorCode(t, err, "VALIDATION_ERROR")
		_, _, err = svc.Login(context.Background(), "chef1", "")
		assertErrorCode(t, err, "VALIDATION_ERROR")
	})

	t.Run("wrong password and unknown username are indistinguishable", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(withStoredUser(t), newSessions(t))

		_, _, wrongPassword := svc.Login(context.Background(), "chef1", "nope")
		_, _, unknownUser := svc.Login(context.Background(), "nobody", "pw123")

		require.Error(t, wrongPassword)
		require.Error(t, unknownUser)
		assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
		assertErrorCode(t, wrongPassword, "UNAUTHORIZED")
		assertErrorCode(t, unknownUser, "UNAUTHORIZED")
	})
}

func TestAuthService_CheckSession(t *testing.T) {
	t.Parallel()

	t.Run("valid token returns the profile", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "chef1"}, nil
		}
		sessions := newSessions(t)
		svc := NewAuthService(repo, sessions)

		token, err := sessions.Create(context.Background(), 1)
		require.NoError(t, err)

		user, err := svc.CheckSession(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, "chef1", user.Username)
	})

	t.Run("unknown token", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(noopUserRepo(), newSessions(t))

		_, err := svc.CheckSession(context.Background(), "bogus")
		assertErrorCode(t, err, "UNAUTHORIZED")
	})

	t.Run("bound user no longer resolves", func(t *testing.T) {
		t.Parallel()
		sessions := newSessions(t)
		svc := NewAuthService(noopUserRepo(), sessions)

		token, err := sessions.Create(context.Background(), 42)
		require.NoError(t, err)

		_, err = svc.CheckSession(context.Background(), token)
		assertErrorCode(t, err, "UNAUTHORIZED")
	})

	t.Run("session store outage is not a 401", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(noopUserRepo(), downSessions{})

		_, err := svc.CheckSession(context.Background(), "some-token")
		assertErrorCode(t, err, "INTERNAL_ERROR")
	})

	t.Run("user store outage propagates", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByIDFn = func(_ context.Context, _ uint) (*models.User, error) {
			return nil, models.NewInternalError(errors.New("db down"))
		}
		sessions := newSessions(t)
		svc := NewAuthService(repo, sessions)

		token, err := sessions.Create(context.Background(), 1)
		require.NoError(t, err)

		_, err = svc.CheckSession(context.Background(), token)
		assertErrorCode(t, err, "INTERNAL_ERROR")
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Parallel()

	t.Run("clears the session", func(t *testing.T) {
		t.Parallel()
		sessions := newSessions(t)
		svc := NewAuthService(noopUserRepo(), sessions)

		token, err := sessions.Create(context.Background(), 1)
		require.NoError(t, err)

		require.NoError(t, svc.Logout(context.Background(), token))

		_, err = sessions.Get(context.Background(), token)
		assert.ErrorIs(t, err, session.ErrNoSession)
	})

	t.Run("without an active session", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(noopUserRepo(), newSessions(t))

		err := svc.Logout(context.Background(), "bogus")
		assertErrorCode(t, err, "UNAUTHORIZED")

		err = svc.Logout(context.Background(), "")
		assertErrorCode(t, err, "UNAUTHORIZED")
	})

	t.Run("session store outage is not a 401", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(noopUserRepo(), downSessions{})

		err := svc.Logout(context.Background(), "some-token")
		assertErrorCode(t, err, "INTERNAL_ERROR")
	})

	t.Run("logout then check session fails", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "chef1"}, nil
		}
		sessions := newSessions(t)
		svc := NewAuthService(repo, sessions)

		token, err := sessions.Create(context.Background(), 1)
		require.NoError(t, err)

		require.NoError(t, svc.Logout(context.Background(), token))
		_, err = svc.CheckSession(context.Background(), token)
		assertErrorCode(t, err, "UNAUTHORIZED")
	})
}
