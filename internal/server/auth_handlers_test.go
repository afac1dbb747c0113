package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"fritter/internal/config"
	"fritter/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthTestServer(userRepo *MockUserRepository) *Server {
	return &Server{
		config:   &config.Config{JWTSecret: "test-secret"},
		userRepo: userRepo,
	}
}

func credentialsBody(t *testing.T, username, password string) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(map[string]string{"username": username, "password": password})
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(body)
}

func TestSignup(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		s := newAuthTestServer(userRepo)

		app := fiber.New()
		app.Post("/auth/signup", s.Signup)

		userRepo.On("GetByUsername", mock.Anything, "alice").Return(nil, nil)
		userRepo.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				args.Get(1).(*models.User).ID = 1
			}).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/auth/signup", credentialsBody(t, "alice", "password123"))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		raw, _ := io.ReadAll(resp.Body)
		var body struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.NotEmpty(t, body.Token)
	})

	t.Run("Invalid Username", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		s := newAuthTestServer(userRepo)

		app := fiber.New()
		app.Post("/auth/signup", s.Signup)

		req := httptest.NewRequest(http.MethodPost, "/auth/signup", credentialsBody(t, "not a name", "password123"))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Short Password", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		s := newAuthTestServer(userRepo)

		app := fiber.New()
		app.Post("/auth/signup", s.Signup)

		req := httptest.NewRequest(http.MethodPost, "/auth/signup", credentialsBody(t, "alice", "short"))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Username Taken", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		s := newAuthTestServer(userRepo)

		app := fiber.New()
		app.Post("/auth/signup", s.Signup)

		userRepo.On("GetByUsername", mock.Anything, "alice").
			Return(&models.User{ID: 1, Username: "alice"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/auth/signup", credentialsBody(t, "alice", "password123"))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req, -1)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	alice := &models.User{ID: 1, Username: "alice", Password: string(hashed)}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		s := newAuthTestServer(userRepo)

		app := fiber.New()
		app.Post("/auth/login", s.Login)

		userRepo.On("GetByUsername", mock.Anything, "alice").Return(alice, nil)

		req := httptest.NewRequest(http.MethodPost, "/auth/login", credentialsBody(t, "alice", "password123"))
		req.Header.Set("Content-Type", "application/json")
		resp, testErr := app.Test(req, -1)
		require.NoError(t, testErr)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		s := newAuthTestServer(userRepo)

		app := fiber.New()
		app.Post("/auth/login", s.Login)

		userRepo.On("GetByUsername", mock.Anything, "alice").Return(alice, nil)

		req := httptest.NewRequest(http.MethodPost, "/auth/login", credentialsBody(t, "alice", "wrongpassword"))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req, -1)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Unknown User", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		s := newAuthTestServer(userRepo)

		app := fiber.New()
		app.Post("/auth/login", s.Login)

		userRepo.On("GetByUsername", mock.Anything, "ghost").Return(nil, nil)

		req := httptest.NewRequest(http.MethodPost, "/auth/login", credentialsBody(t, "ghost", "password123"))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestLogout(t *testing.T) {
	userRepo := new(MockUserRepository)
	s := newAuthTestServer(userRepo)

	app := fiber.New()
	app.Post("/auth/logout", s.Logout)

	t.Run("Without Token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("With Token", func(t *testing.T) {
		token, err := s.generateToken(1, "alice")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
