package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ladle/internal/config"
	"ladle/internal/models"
	"ladle/internal/service"
	"ladle/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserRepository is a mock of the repository.UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockRecipeRepository is a mock of the repository.RecipeRepository interface
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) List(ctx context.Context) ([]models.Recipe, error) {
	args := m.Called(ctx)
	switch v := args.Get(0).(type) {
	case nil:
		return nil, args.Error(1)
	case func() []models.Recipe:
		// Late-bound result for tests that accumulate state across calls.
		return v(), args.Error(1)
	default:
		return v.([]models.Recipe), args.Error(1)
	}
}

// downSessionStore is a session.Store whose backing store is unreachable.
type downSessionStore struct{}

func (downSessionStore) Create(_ context.Context, _ uint) (string, error) {
	return "", errors.New("dial tcp: connection refused")
}

func (downSessionStore) Get(_ context.Context, _ string) (uint, error) {
	return 0, errors.New("dial tcp: connection refused")
}

func (downSessionStore) Clear(_ context.Context, _ string) error {
	return errors.New("dial tcp: connection refused")
}

// newTestServer wires a Server over mock repositories and an in-memory
// session store, with routes registered on a bare Fiber app.
func newTestServer(userRepo *MockUserRepository, recipeRepo *MockRecipeRepository) (*fiber.App, *Server) {
	return newTestServerWithSessions(userRepo, recipeRepo, session.NewMemoryStore(time.Minute))
}

func newTestServerWithSessions(userRepo *MockUserRepository, recipeRepo *MockRecipeRepository, sessions session.Store) (*fiber.App, *Server) {
	s := &Server{
		config:   &config.Config{Port: "5555", SessionTTLMinutes: 60, Env: "test"},
		sessions: sessions,
	}
	s.authService = service.NewAuthService(userRepo, sessions)
	s.recipeService = service.NewRecipeService(recipeRepo)

	app := fiber.New()
	app.Post("/signup", s.Signup)
	app.Post("/login", s.Login)
	app.Get("/check_session", s.CheckSession)
	app.Delete("/logout", s.Logout)
	recipes := app.Group("/recipes", s.AuthRequired())
	recipes.Get("/", s.GetRecipes)
	recipes.Post("/", s.CreateRecipe)

	return app, s
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// sessionCookie extracts the session cookie from a response, failing the test
// when it is absent.
func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, ck := range resp.Cookies() {
		if ck.Name == sessionCookieName {
			return ck
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}
