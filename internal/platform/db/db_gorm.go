// Package db はリレーショナルデータベースの接続とマイグレーションを提供します。
package db

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authadapters "admin_backend/internal/feature/auth/adapters"
	authentity "admin_backend/internal/feature/auth/domain/entity"
	dashentity "admin_backend/internal/feature/dashboard/domain/entity"
	worksentity "admin_backend/internal/feature/worksref/domain/entity"
)

// defaultSQLitePath はDATABASE_URL未設定時のローカル開発用DBファイルです。
const defaultSQLitePath = "./admin.db"

// OpenDB はデータベース接続を開き、マイグレーションを実行します。
// DATABASE_URLが設定されていればPostgreSQL、なければローカルのSQLiteを使います。
// 接続失敗はエラーとして返し、呼び出し側がメモリフォールバックで継続するか決めます。
func OpenDB() (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}

	var (
		conn *gorm.DB
		err  error
	)
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		conn, err = gorm.Open(postgres.Open(dsn), cfg)
	} else {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = defaultSQLitePath
		}
		conn, err = gorm.Open(sqlite.Open(path), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	// マイグレーション（認証・ダッシュボード・作業参照の全テーブル）
	if err := conn.AutoMigrate(
		&authentity.User{},
		&authadapters.SessionModel{},
		&dashentity.DemoUser{},
		&dashentity.Order{},
		&dashentity.Statistic{},
		&worksentity.Phase{},
		&worksentity.Stage{},
		&worksentity.Substage{},
		&worksentity.Work{},
		&worksentity.Material{},
		&worksentity.WorkMaterial{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return conn, nil
}
