// Package api はHTTPレスポンスの共通型を定義します。
package api

import "time"

// Response は認証系エンドポイントの共通レスポンスエンベロープです。
// フロントエンドは {success, message, data} の形式を前提としています。
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse はデータ系エンドポイントのエラーレスポンスを表します。
type ErrorResponse struct {
	Error string `json:"error"`
}

// AuthUser はレスポンスに含めてよいユーザーの公開フィールドです。
// パスワードハッシュは決して含めません。
type AuthUser struct {
	ID            uint       `json:"id"`
	Email         string     `json:"email"`
	Firstname     string     `json:"firstname"`
	Lastname      string     `json:"lastname"`
	Company       string     `json:"company"`
	EmailVerified *bool      `json:"emailVerified,omitempty"`
	LastLogin     *time.Time `json:"lastLogin,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// TokenData は register/login 成功時の data ペイロードです。
type TokenData struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

// UserData は /api/auth/me 成功時の data ペイロードです。
type UserData struct {
	User AuthUser `json:"user"`
}
