package usecase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"admin_backend/internal/feature/auth/adapters"
	"admin_backend/internal/feature/auth/domain/entity"
	"admin_backend/internal/feature/auth/usecase"
	jwtauth "admin_backend/internal/platform/jwt"
)

// recordingSessionStore はDB接続なしでセッション操作を記録するSessionStoreです。
type recordingSessionStore struct {
	mu       sync.Mutex
	sessions []entity.Session
}

func (s *recordingSessionStore) Create(_ context.Context, session *entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session.ID = uint(len(s.sessions) + 1)
	s.sessions = append(s.sessions, *session)
	return nil
}

func (s *recordingSessionStore) DeleteAllByUserID(_ context.Context, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.sessions[:0]
	for _, sess := range s.sessions {
		if sess.UserID != userID {
			kept = append(kept, sess)
		}
	}
	s.sessions = kept
	return nil
}

func (s *recordingSessionStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// TestAuthFlow_RegisterLoginMeLogout は登録→ログイン→プロフィール取得→ログアウトの
// 一連の流れを、実トークンとメモリストアで通しで検証します。
func TestAuthFlow_RegisterLoginMeLogout(t *testing.T) {
	t.Parallel()

	users := adapters.NewFallbackUserStore(nil, adapters.NewUserMemory())
	sessions := &recordingSessionStore{}
	tokens := jwtauth.NewManager("flow-test-secret", jwtauth.TokenTTL)
	uc := usecase.NewAuthUsecase(users, sessions, tokens, bcrypt.MinCost)
	ctx := context.Background()
	meta := usecase.ClientMeta{UserAgent: "go-test", IPAddress: "127.0.0.1"}

	// 登録
	regToken, regUser, err := uc.Register(ctx, usecase.RegisterInput{
		Firstname: "Ivan",
		Lastname:  "Petrov",
		Email:     "ivan@example.com",
		Company:   "ACME",
		Password:  "secret1",
	}, meta)
	require.NoError(t, err)
	require.NotEmpty(t, regToken)
	assert.Equal(t, uint(1), regUser.ID)
	assert.True(t, regUser.IsActive)
	assert.Equal(t, 1, sessions.count())

	// 同じメールアドレスでの再登録は拒否される
	_, _, err = uc.Register(ctx, usecase.RegisterInput{
		Firstname: "Other",
		Lastname:  "Person",
		Email:     "ivan@example.com",
		Password:  "another1",
	}, meta)
	assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)

	// 登録直後のトークンでプロフィールが取れる
	me, err := uc.Me(ctx, regToken)
	require.NoError(t, err)
	assert.Equal(t, regUser.ID, me.ID)
	assert.Equal(t, "ivan@example.com", me.Email)

	// ログイン
	loginToken, loginUser, err := uc.Login(ctx, "ivan@example.com", "secret1", meta)
	require.NoError(t, err)
	require.NotEmpty(t, loginToken)
	assert.Equal(t, regUser.ID, loginUser.ID)
	assert.NotNil(t, loginUser.LastLogin)
	assert.Equal(t, 2, sessions.count())

	// 誤ったパスワードは認証エラー
	_, _, err = uc.Login(ctx, "ivan@example.com", "wrong-password", meta)
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)

	// ログアウトで当該ユーザーのセッションは全件消える
	require.NoError(t, uc.Logout(ctx, loginToken))
	assert.Equal(t, 0, sessions.count())

	// トークン自体はステートレスなので、ログアウト後もMeは成功する
	me, err = uc.Me(ctx, loginToken)
	require.NoError(t, err)
	assert.Equal(t, regUser.ID, me.ID)
}

// TestAuthFlow_TokenRoundTrip は発行したトークンのクレームがユーザー情報と一致することを検証します。
func TestAuthFlow_TokenRoundTrip(t *testing.T) {
	t.Parallel()

	users := adapters.NewFallbackUserStore(nil, adapters.NewUserMemory())
	tokens := jwtauth.NewManager("flow-test-secret", jwtauth.TokenTTL)
	// sessions=nil: DB未接続時の構成
	uc := usecase.NewAuthUsecase(users, nil, tokens, bcrypt.MinCost)
	ctx := context.Background()

	token, user, err := uc.Register(ctx, usecase.RegisterInput{
		Firstname: "Anna",
		Lastname:  "Sidorova",
		Email:     "anna@example.com",
		Password:  "secret1",
	}, usecase.ClientMeta{})
	require.NoError(t, err)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "anna@example.com", claims.Email)
	assert.Equal(t, "Anna", claims.Firstname)
	assert.Equal(t, "Sidorova", claims.Lastname)

	// セッションストアがない構成ではログアウトは失敗する
	err = uc.Logout(ctx, token)
	assert.ErrorIs(t, err, usecase.ErrSessionStoreUnavailable)
}
