// Package adapters はdashboardフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"admin_backend/internal/feature/dashboard/domain/entity"
	"admin_backend/internal/feature/dashboard/usecase"
)

// statisticsGorm はStatisticsRepositoryインターフェースのリレーショナルDB実装です。
type statisticsGorm struct {
	db *gorm.DB
}

var _ usecase.StatisticsRepository = (*statisticsGorm)(nil)

// NewStatisticsGorm は指定されたgorm.DB接続でstatisticsGormを生成します。
func NewStatisticsGorm(db *gorm.DB) *statisticsGorm {
	return &statisticsGorm{db: db}
}

// List は全メトリクス行をID順で取得します。
func (r *statisticsGorm) List(ctx context.Context) ([]entity.Statistic, error) {
	var rows []entity.Statistic
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// orderGorm はOrderRepositoryインターフェースのリレーショナルDB実装です。
type orderGorm struct {
	db *gorm.DB
}

var _ usecase.OrderRepository = (*orderGorm)(nil)

// NewOrderGorm は指定されたgorm.DB接続でorderGormを生成します。
func NewOrderGorm(db *gorm.DB) *orderGorm {
	return &orderGorm{db: db}
}

// ListRecent は作成日時の降順で直近の注文を取得します。
func (r *orderGorm) ListRecent(ctx context.Context, limit int) ([]entity.Order, error) {
	var rows []entity.Order
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Create は注文を1件追加します。
func (r *orderGorm) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// demoUserGorm はDemoUserRepositoryインターフェースのリレーショナルDB実装です。
type demoUserGorm struct {
	db *gorm.DB
}

var _ usecase.DemoUserRepository = (*demoUserGorm)(nil)

// NewDemoUserGorm は指定されたgorm.DB接続でdemoUserGormを生成します。
func NewDemoUserGorm(db *gorm.DB) *demoUserGorm {
	return &demoUserGorm{db: db}
}

// List は旧usersテーブルの全行を作成日時の降順で取得します。
func (r *demoUserGorm) List(ctx context.Context) ([]entity.DemoUser, error) {
	var rows []entity.DemoUser
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Create は旧usersテーブルに1行追加します。
func (r *demoUserGorm) Create(ctx context.Context, user *entity.DemoUser) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// dbPinger はgorm接続の生存確認を行います。
type dbPinger struct {
	db *gorm.DB
}

var _ usecase.Pinger = (*dbPinger)(nil)

// NewDBPinger は指定されたgorm.DB接続でdbPingerを生成します。
func NewDBPinger(db *gorm.DB) *dbPinger {
	return &dbPinger{db: db}
}

// Ping は下位のsql.DBに対して疎通確認を行います。
func (p *dbPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
