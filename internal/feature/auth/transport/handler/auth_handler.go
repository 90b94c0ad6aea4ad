// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"admin_backend/internal/api"
	"admin_backend/internal/feature/auth/domain/entity"
	"admin_backend/internal/feature/auth/transport/http/dto"
	"admin_backend/internal/feature/auth/usecase"
	jwtauth "admin_backend/internal/platform/jwt"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は新規ユーザーを作成し、トークンを発行します。
	Register(ctx context.Context, in usecase.RegisterInput, meta usecase.ClientMeta) (string, *entity.User, error)
	// Login はユーザーを認証し、成功時にトークンと最新のユーザー情報を返します。
	Login(ctx context.Context, email, password string, meta usecase.ClientMeta) (string, *entity.User, error)
	// Logout はトークンを検証し、ユーザーのセッションレコードを全件削除します。
	Logout(ctx context.Context, token string) error
	// Me はトークンを検証し、ストア上の最新のユーザー情報を返します。
	Me(ctx context.Context, token string) (*entity.User, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// clientMeta はセッションレコード用のクライアント情報をリクエストから抽出します。
func clientMeta(c *gin.Context) usecase.ClientMeta {
	return usecase.ClientMeta{
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	}
}

// bearerToken はAuthorizationヘッダーからBearerトークンを取り出します。
func bearerToken(c *gin.Context) (string, bool) {
	auth := c.GetHeader("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(auth, "Bearer "), true
}

// Register はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - メールアドレス重複時は409を返却
// - 成功時はトークンと公開フィールドのみのユーザー情報付きで201を返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Response{Success: false, Message: "invalid request body"})
		return
	}

	in := usecase.RegisterInput{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
		Company:   req.Company,
		Password:  req.Password,
	}
	token, user, err := h.auth.Register(c.Request.Context(), in, clientMeta(c))
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, api.Response{Success: false, Message: "user with this email already exists"})
			return
		}
		slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.Response{Success: false, Message: "internal server error"})
		return
	}

	slog.Info("user registered", "email", user.Email, "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.Response{
		Success: true,
		Message: "user registered successfully",
		Data: api.TokenData{
			Token: token,
			User: api.AuthUser{
				ID:        user.ID,
				Email:     user.Email,
				Firstname: user.Firstname,
				Lastname:  user.Lastname,
				Company:   user.Company,
				CreatedAt: user.CreatedAt,
			},
		},
	})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却（ユーザー不在とパスワード不一致で同一メッセージ）
// - アカウント無効時は403を返却
// - 成功時はトークン付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Response{Success: false, Message: "email and password are required"})
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password, clientMeta(c))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			// どちらが誤りかを漏らさないため共通メッセージ
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.Response{Success: false, Message: "invalid email or password"})
		case errors.Is(err, usecase.ErrAccountInactive):
			slog.Warn("login rejected for inactive account", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusForbidden, api.Response{Success: false, Message: "account is disabled, contact an administrator"})
		default:
			slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.Response{Success: false, Message: "internal server error"})
		}
		return
	}

	slog.Info("user login successful", "email", user.Email, "user_id", user.ID, "remote_addr", c.ClientIP())
	verified := user.EmailVerified
	c.JSON(http.StatusOK, api.Response{
		Success: true,
		Message: "login successful",
		Data: api.TokenData{
			Token: token,
			User: api.AuthUser{
				ID:            user.ID,
				Email:         user.Email,
				Firstname:     user.Firstname,
				Lastname:      user.Lastname,
				Company:       user.Company,
				EmailVerified: &verified,
				CreatedAt:     user.CreatedAt,
			},
		},
	})
}

// Logout はログアウトAPIエンドポイントを処理します。
// 提示されたトークンのユーザーのセッションを全件削除します（全デバイスのログアウト）。
// トークン検証の失敗はこのルートでは区別せず500を返します（/api/auth/meとは非対称）。
func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.Response{Success: false, Message: "authorization token not provided"})
		return
	}

	if err := h.auth.Logout(c.Request.Context(), token); err != nil {
		slog.Error("logout failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.Response{Success: false, Message: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, api.Response{Success: true, Message: "logged out successfully"})
}

// Me はトークン検証APIエンドポイントを処理します。
// トークンのクレームはユーザー参照にのみ使い、プロフィールはストアの最新値を返します。
// 期限切れトークンと不正トークンは別メッセージの401で区別します。
func (h *AuthHandler) Me(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.Response{Success: false, Message: "authorization token not provided"})
		return
	}

	user, err := h.auth.Me(c.Request.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, jwtauth.ErrTokenExpired):
			c.JSON(http.StatusUnauthorized, api.Response{Success: false, Message: "token has expired"})
		case errors.Is(err, jwtauth.ErrTokenInvalid):
			c.JSON(http.StatusUnauthorized, api.Response{Success: false, Message: "invalid token"})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, api.Response{Success: false, Message: "user not found or disabled"})
		default:
			slog.Error("token introspection failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.Response{Success: false, Message: "internal server error"})
		}
		return
	}

	verified := user.EmailVerified
	c.JSON(http.StatusOK, api.Response{
		Success: true,
		Data: api.UserData{
			User: api.AuthUser{
				ID:            user.ID,
				Email:         user.Email,
				Firstname:     user.Firstname,
				Lastname:      user.Lastname,
				Company:       user.Company,
				EmailVerified: &verified,
				LastLogin:     user.LastLogin,
				CreatedAt:     user.CreatedAt,
			},
		},
	})
}
