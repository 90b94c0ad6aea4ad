package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"admin_backend/internal/feature/auth/domain/entity"
	"admin_backend/internal/feature/auth/usecase"
	jwtauth "admin_backend/internal/platform/jwt"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	RegisterFunc func(ctx context.Context, in usecase.RegisterInput, meta usecase.ClientMeta) (string, *entity.User, error)
	LoginFunc    func(ctx context.Context, email, password string, meta usecase.ClientMeta) (string, *entity.User, error)
	LogoutFunc   func(ctx context.Context, token string) error
	MeFunc       func(ctx context.Context, token string) (*entity.User, error)
}

func (m *mockAuthUsecase) Register(ctx context.Context, in usecase.RegisterInput, meta usecase.ClientMeta) (string, *entity.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, in, meta)
	}
	return "", nil, errors.New("register failed")
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string, meta usecase.ClientMeta) (string, *entity.User, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password, meta)
	}
	return "", nil, errors.New("login failed")
}

func (m *mockAuthUsecase) Logout(ctx context.Context, token string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, token)
	}
	return errors.New("logout failed")
}

func (m *mockAuthUsecase) Me(ctx context.Context, token string) (*entity.User, error) {
	if m.MeFunc != nil {
		return m.MeFunc(ctx, token)
	}
	return nil, errors.New("me failed")
}

func setupAuthRouter(uc AuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(uc)
	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/logout", h.Logout)
	r.GET("/api/auth/me", h.Me)
	return r
}

func testUser() *entity.User {
	return &entity.User{
		ID:        1,
		Email:     "a@b.com",
		Firstname: "A",
		Lastname:  "B",
		Company:   "ACME",
		IsActive:  true,
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestAuthHandler_Register(t *testing.T) {
	registerOK := func(ctx context.Context, in usecase.RegisterInput, meta usecase.ClientMeta) (string, *entity.User, error) {
		u := testUser()
		u.Email = in.Email
		u.Firstname = in.Firstname
		u.Lastname = in.Lastname
		u.Company = in.Company
		return "new-token", u, nil
	}

	tests := []struct {
		name           string
		requestBody    gin.H
		mockRegister   func(ctx context.Context, in usecase.RegisterInput, meta usecase.ClientMeta) (string, *entity.User, error)
		expectedStatus int
	}{
		{
			name:           "success: user registration",
			requestBody:    gin.H{"firstname": "A", "lastname": "B", "email": "a@b.com", "password": "secret1"},
			mockRegister:   registerOK,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "failure: missing firstname",
			requestBody:    gin.H{"lastname": "B", "email": "a@b.com", "password": "secret1"},
			mockRegister:   nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"firstname": "A", "lastname": "B", "email": "not-an-email", "password": "secret1"},
			mockRegister:   nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: 5-character password",
			requestBody:    gin.H{"firstname": "A", "lastname": "B", "email": "a@b.com", "password": "12345"},
			mockRegister:   nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "success: 6-character password is the lower bound",
			requestBody:    gin.H{"firstname": "A", "lastname": "B", "email": "a@b.com", "password": "123456"},
			mockRegister:   registerOK,
			expectedStatus: http.StatusCreated,
		},
		{
			name:        "failure: duplicate email",
			requestBody: gin.H{"firstname": "A", "lastname": "B", "email": "dup@b.com", "password": "secret1"},
			mockRegister: func(ctx context.Context, in usecase.RegisterInput, meta usecase.ClientMeta) (string, *entity.User, error) {
				return "", nil, usecase.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:        "failure: unexpected error",
			requestBody: gin.H{"firstname": "A", "lastname": "B", "email": "a@b.com", "password": "secret1"},
			mockRegister: func(ctx context.Context, in usecase.RegisterInput, meta usecase.ClientMeta) (string, *entity.User, error) {
				return "", nil, errors.New("bcrypt exploded")
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupAuthRouter(&mockAuthUsecase{RegisterFunc: tt.mockRegister})

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody map[string]any
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))

			if tt.expectedStatus == http.StatusCreated {
				assert.Equal(t, true, responseBody["success"])
				data := responseBody["data"].(map[string]any)
				assert.Equal(t, "new-token", data["token"])
				user := data["user"].(map[string]any)
				assert.Equal(t, tt.requestBody["email"], user["email"])
				// パスワード関連フィールドはレスポンスに含めない
				_, hasHash := user["passwordHash"]
				assert.False(t, hasHash)
				_, hasVerified := user["emailVerified"]
				assert.False(t, hasVerified)
			} else {
				assert.Equal(t, false, responseBody["success"])
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	loginOK := func(ctx context.Context, email, password string, meta usecase.ClientMeta) (string, *entity.User, error) {
		u := testUser()
		return "login-token", u, nil
	}

	tests := []struct {
		name            string
		requestBody     gin.H
		mockLogin       func(ctx context.Context, email, password string, meta usecase.ClientMeta) (string, *entity.User, error)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:           "success: user login",
			requestBody:    gin.H{"email": "a@b.com", "password": "secret1"},
			mockLogin:      loginOK,
			expectedStatus: http.StatusOK,
		},
		{
			name:            "failure: missing password",
			requestBody:     gin.H{"email": "a@b.com"},
			mockLogin:       nil, // Usecase is not called
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "email and password are required",
		},
		{
			name:        "failure: unknown email",
			requestBody: gin.H{"email": "missing@b.com", "password": "secret1"},
			mockLogin: func(ctx context.Context, email, password string, meta usecase.ClientMeta) (string, *entity.User, error) {
				return "", nil, usecase.ErrInvalidCredentials
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "invalid email or password",
		},
		{
			name:        "failure: wrong password has identical message",
			requestBody: gin.H{"email": "a@b.com", "password": "wrong"},
			mockLogin: func(ctx context.Context, email, password string, meta usecase.ClientMeta) (string, *entity.User, error) {
				return "", nil, usecase.ErrInvalidCredentials
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "invalid email or password",
		},
		{
			name:        "failure: inactive account",
			requestBody: gin.H{"email": "a@b.com", "password": "secret1"},
			mockLogin: func(ctx context.Context, email, password string, meta usecase.ClientMeta) (string, *entity.User, error) {
				return "", nil, usecase.ErrAccountInactive
			},
			expectedStatus:  http.StatusForbidden,
			expectedMessage: "account is disabled, contact an administrator",
		},
		{
			name:        "failure: unexpected error",
			requestBody: gin.H{"email": "a@b.com", "password": "secret1"},
			mockLogin: func(ctx context.Context, email, password string, meta usecase.ClientMeta) (string, *entity.User, error) {
				return "", nil, errors.New("token signing failed")
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupAuthRouter(&mockAuthUsecase{LoginFunc: tt.mockLogin})

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody map[string]any
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))

			if tt.expectedStatus == http.StatusOK {
				data := responseBody["data"].(map[string]any)
				assert.Equal(t, "login-token", data["token"])
				user := data["user"].(map[string]any)
				// ログインレスポンスはemailVerifiedを含む
				assert.Contains(t, user, "emailVerified")
			} else {
				assert.Equal(t, tt.expectedMessage, responseBody["message"])
			}
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		mockLogout     func(ctx context.Context, token string) error
		expectedStatus int
	}{
		{
			name:           "success: sessions revoked",
			authHeader:     "Bearer some-token",
			mockLogout:     func(ctx context.Context, token string) error { return nil },
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure: missing header",
			authHeader:     "",
			mockLogout:     nil, // Usecase is not called
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "failure: malformed header",
			authHeader:     "Token abc",
			mockLogout:     nil,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			// このルートはトークン検証失敗を区別せず500を返す（/meとは非対称）
			name:           "failure: invalid token maps to 500",
			authHeader:     "Bearer bad-token",
			mockLogout:     func(ctx context.Context, token string) error { return jwtauth.ErrTokenInvalid },
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "failure: session delete error",
			authHeader:     "Bearer some-token",
			mockLogout:     func(ctx context.Context, token string) error { return errors.New("database connection failed") },
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupAuthRouter(&mockAuthUsecase{LogoutFunc: tt.mockLogout})

			req, _ := http.NewRequest(http.MethodPost, "/api/auth/logout", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAuthHandler_Me(t *testing.T) {
	tests := []struct {
		name            string
		authHeader      string
		mockMe          func(ctx context.Context, token string) (*entity.User, error)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:       "success: returns live profile",
			authHeader: "Bearer valid-token",
			mockMe: func(ctx context.Context, token string) (*entity.User, error) {
				return testUser(), nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:            "failure: missing header",
			authHeader:      "",
			mockMe:          nil, // Usecase is not called
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "authorization token not provided",
		},
		{
			name:       "failure: expired token has its own message",
			authHeader: "Bearer expired-token",
			mockMe: func(ctx context.Context, token string) (*entity.User, error) {
				return nil, jwtauth.ErrTokenExpired
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "token has expired",
		},
		{
			name:       "failure: tampered token has a distinct message",
			authHeader: "Bearer tampered-token",
			mockMe: func(ctx context.Context, token string) (*entity.User, error) {
				return nil, jwtauth.ErrTokenInvalid
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "invalid token",
		},
		{
			name:       "failure: vanished or disabled user",
			authHeader: "Bearer valid-token",
			mockMe: func(ctx context.Context, token string) (*entity.User, error) {
				return nil, usecase.ErrUserNotFound
			},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "user not found or disabled",
		},
		{
			name:       "failure: unexpected error",
			authHeader: "Bearer valid-token",
			mockMe: func(ctx context.Context, token string) (*entity.User, error) {
				return nil, errors.New("store exploded")
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupAuthRouter(&mockAuthUsecase{MeFunc: tt.mockMe})

			req, _ := http.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody map[string]any
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))

			if tt.expectedStatus == http.StatusOK {
				data := responseBody["data"].(map[string]any)
				user := data["user"].(map[string]any)
				assert.Equal(t, "a@b.com", user["email"])
				assert.Contains(t, user, "emailVerified")
			} else {
				assert.Equal(t, tt.expectedMessage, responseBody["message"])
			}
		})
	}
}
