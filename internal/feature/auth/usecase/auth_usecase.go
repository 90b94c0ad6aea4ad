// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"admin_backend/internal/feature/auth/domain/entity"
	jwtauth "admin_backend/internal/platform/jwt"
)

const (
	// DefaultBcryptCost はBCRYPT_SALT_ROUNDS未設定時のコストファクタです。
	DefaultBcryptCost = 12
)

// ユーザー未検出時のタイミング攻撃緩和用ダミーハッシュ
// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserStore はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（store）ではなくコンシューマー（usecase）が定義します。
type UserStore interface {
	// Create は新しいユーザーを永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// UpdateLastLogin は最終ログイン時刻を更新します。
	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error
}

// SessionStore はセッションレコードの永続化層を抽象化します。
// 書き込みはベストエフォートで、失敗してもレスポンスには影響しません。
type SessionStore interface {
	// Create persists a new session record.
	Create(ctx context.Context, session *entity.Session) error

	// DeleteAllByUserID removes every session record for the given user.
	// Deleting when no records exist is not an error.
	DeleteAllByUserID(ctx context.Context, userID uint) error
}

// TokenManager はトークンの発行と検証のインターフェースを定義します。
type TokenManager interface {
	// Issue は指定されたユーザーの署名済みトークンを生成します。
	Issue(userID uint, email, firstname, lastname string) (string, error)
	// Verify はトークンを検証してクレームを返します。
	Verify(token string) (*jwtauth.Claims, error)
}

// RegisterInput は新規登録に必要な入力です。バリデーション済みの値を受け取ります。
type RegisterInput struct {
	Firstname string
	Lastname  string
	Email     string
	Company   string
	Password  string
}

// ClientMeta はセッションレコードに残すクライアント情報です。
type ClientMeta struct {
	UserAgent string
	IPAddress string
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users    UserStore
	sessions SessionStore // nil when the database is unreachable at startup
	tokens   TokenManager
	cost     int
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
// bcryptCostが0以下の場合はDefaultBcryptCostを使用します。
func NewAuthUsecase(users UserStore, sessions SessionStore, tokens TokenManager, bcryptCost int) *authUsecase {
	if bcryptCost <= 0 {
		bcryptCost = DefaultBcryptCost
	}
	return &authUsecase{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		cost:     bcryptCost,
	}
}

// Register は新規ユーザーを作成し、トークンを発行します。
// メールアドレスが既に使われている場合、ErrEmailAlreadyExistsを返します。
func (u *authUsecase) Register(ctx context.Context, in RegisterInput, meta ClientMeta) (string, *entity.User, error) {
	// 既存ユーザーの確認
	if _, err := u.users.FindByEmail(ctx, in.Email); err == nil {
		return "", nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return "", nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.cost)
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Email:        in.Email,
		PasswordHash: string(hashed),
		Firstname:    in.Firstname,
		Lastname:     in.Lastname,
		Company:      in.Company,
		IsActive:     true,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := u.tokens.Issue(user.ID, user.Email, user.Firstname, user.Lastname)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	u.recordSession(ctx, user.ID, token, meta)

	return token, user, nil
}

// Login はユーザーを認証し、成功時にトークンと最新のユーザー情報を返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string, meta ClientMeta) (string, *entity.User, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		// タイミング攻撃防止のため、常にパスワード比較を実行する
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		if errors.Is(err, ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !user.IsActive {
		return "", nil, ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	// 最終ログイン時刻の更新はベストエフォート
	now := time.Now()
	if err := u.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		slog.Warn("failed to update last_login, skipping", "error", err, "user_id", user.ID)
	} else {
		user.LastLogin = &now
	}

	token, err := u.tokens.Issue(user.ID, user.Email, user.Firstname, user.Lastname)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	u.recordSession(ctx, user.ID, token, meta)

	return token, user, nil
}

// Logout はトークンを検証し、そのユーザーのセッションレコードを全件削除します。
// 提示されたトークンだけでなく全デバイスのセッションを失効させます。
func (u *authUsecase) Logout(ctx context.Context, token string) error {
	claims, err := u.tokens.Verify(token)
	if err != nil {
		return err
	}
	if u.sessions == nil {
		return ErrSessionStoreUnavailable
	}
	return u.sessions.DeleteAllByUserID(ctx, claims.UserID)
}

// Me はトークンを検証し、ストア上の最新のユーザー情報を返します。
// トークンのクレームはID参照にのみ使い、可変フィールドはストアの値を信頼します。
func (u *authUsecase) Me(ctx context.Context, token string) (*entity.User, error) {
	claims, err := u.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := u.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	// 無効化されたアカウントは未検出として扱う
	if !user.IsActive {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// recordSession はセッションレコードをベストエフォートで書き込みます。
// 失敗はログに残すのみで、呼び出し元のレスポンスには影響させません。
func (u *authUsecase) recordSession(ctx context.Context, userID uint, token string, meta ClientMeta) {
	if u.sessions == nil {
		return
	}

	digest := sha256.Sum256([]byte(token))
	session := &entity.Session{
		UserID:    userID,
		TokenHash: hex.EncodeToString(digest[:]),
		ExpiresAt: time.Now().Add(jwtauth.TokenTTL),
		UserAgent: meta.UserAgent,
		IPAddress: meta.IPAddress,
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		slog.Warn("failed to record session, skipping", "error", err, "user_id", userID)
	}
}
