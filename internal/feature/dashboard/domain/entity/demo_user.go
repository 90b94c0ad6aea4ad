package entity

import "time"

// DemoUser は旧usersテーブルの1行を表します。
// 認証用のauth_usersとは別物で、ダッシュボード表示の互換のために残しています。
type DemoUser struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for GORM.
func (DemoUser) TableName() string {
	return "users"
}
