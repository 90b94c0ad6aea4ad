package entity

import "time"

// Session は発行済みトークンのメタデータです。
// 失効管理用の記録であり、トークンの有効性判定には使いません。
type Session struct {
	ID        uint      // Auto-assigned record ID
	UserID    uint      // Associated user ID
	TokenHash string    // SHA-256 hex digest of the issued token
	ExpiresAt time.Time // Token expiry time
	UserAgent string    // Client's User-Agent header
	IPAddress string    // Client's IP address
	CreatedAt time.Time // Record creation time
}

// IsExpired returns true if the session has passed its expiration time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
