// Package jwtauth はJWTトークンの発行と検証を提供します。
package jwtauth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL は発行するトークンの有効期間です。
const TokenTTL = 24 * time.Hour

var (
	// ErrTokenExpired is returned when the token's expiry time has passed.
	ErrTokenExpired = errors.New("token has expired")

	// ErrTokenInvalid is returned for malformed tokens, bad signatures and
	// unexpected signing algorithms.
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims はトークンに埋め込むユーザー識別情報です。
type Claims struct {
	UserID    uint   `json:"userId"`
	Email     string `json:"email"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	jwt.RegisteredClaims
}

// Manager はプロセス全体で共有する署名鍵を保持し、トークンを発行・検証します。
// 鍵のローテーションはサポートしません。
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager は指定された署名鍵と有効期間でManagerを生成します。
// ttlが0以下の場合はTokenTTLを使用します。
func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = TokenTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue は指定されたユーザーの署名済みJWTトークンを生成します。
func (m *Manager) Issue(userID uint, email, firstname, lastname string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    userID,
		Email:     email,
		Firstname: firstname,
		Lastname:  lastname,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify はトークンを検証し、クレームを返します。
// 期限切れはErrTokenExpired、それ以外の検証失敗はErrTokenInvalidを返します。
// 呼び出し側はこの2つを区別して利用者向けメッセージを出し分けます。
func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		// 署名アルゴリズムを確認（HMACのみ許可）
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
