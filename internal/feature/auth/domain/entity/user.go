// Package entity はauthフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// User は管理画面に登録されたユーザーを表します。
type User struct {
	// ID is the unique identifier for the user.
	// Assigned by the backing store; the relational store and the in-memory
	// fallback each run their own sequence.
	ID uint `gorm:"primaryKey"`

	// Email is the login identifier. Unique within a single store.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// PasswordHash is the bcrypt hash of the password.
	// Plaintext passwords are never stored and the hash never leaves the server.
	PasswordHash string `gorm:"size:255;not null"`

	Firstname string `gorm:"size:255;not null"`
	Lastname  string `gorm:"size:255;not null"`
	Company   string `gorm:"size:255"`

	// IsActive が false のアカウントはログインできません。
	IsActive bool `gorm:"not null;default:true"`

	// EmailVerified は帯域外でのみ設定されます（検証フローは未実装）。
	EmailVerified bool `gorm:"not null;default:false"`

	// LastLogin はログイン成功のたびに更新されます。
	LastLogin *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (User) TableName() string {
	return "auth_users"
}
