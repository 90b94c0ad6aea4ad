// Package usecase implements the business logic for dashboard data operations.
package usecase

import (
	"context"
	"time"

	"admin_backend/internal/feature/dashboard/domain/entity"
)

// recentOrdersLimit はダッシュボードに表示する直近の注文件数です。
const recentOrdersLimit = 10

// StatisticsRepository abstracts the persistence layer for dashboard statistics.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type StatisticsRepository interface {
	// List returns all statistics rows ordered by id.
	List(ctx context.Context) ([]entity.Statistic, error)
}

// OrderRepository abstracts the persistence layer for orders.
type OrderRepository interface {
	// ListRecent returns the latest orders, newest first.
	ListRecent(ctx context.Context, limit int) ([]entity.Order, error)
	// Create persists a new order.
	Create(ctx context.Context, order *entity.Order) error
}

// DemoUserRepository abstracts the persistence layer for the legacy users table.
type DemoUserRepository interface {
	List(ctx context.Context) ([]entity.DemoUser, error)
	Create(ctx context.Context, user *entity.DemoUser) error
}

// Pinger reports whether the database connection is alive.
type Pinger interface {
	Ping(ctx context.Context) error
}

// DashboardUsecase provides business logic for dashboard data operations.
type DashboardUsecase struct {
	statistics StatisticsRepository
	orders     OrderRepository
	demoUsers  DemoUserRepository
	pinger     Pinger
}

// NewDashboardUsecase creates a new DashboardUsecase with the given repositories.
func NewDashboardUsecase(statistics StatisticsRepository, orders OrderRepository, demoUsers DemoUserRepository, pinger Pinger) *DashboardUsecase {
	return &DashboardUsecase{
		statistics: statistics,
		orders:     orders,
		demoUsers:  demoUsers,
		pinger:     pinger,
	}
}

// ListStatistics returns all dashboard metric rows.
func (u *DashboardUsecase) ListStatistics(ctx context.Context) ([]entity.Statistic, error) {
	return u.statistics.List(ctx)
}

// ListRecentOrders returns the latest orders for the dashboard table.
func (u *DashboardUsecase) ListRecentOrders(ctx context.Context) ([]entity.Order, error) {
	return u.orders.ListRecent(ctx, recentOrdersLimit)
}

// CreateOrder persists a new order row.
func (u *DashboardUsecase) CreateOrder(ctx context.Context, order *entity.Order) error {
	return u.orders.Create(ctx, order)
}

// ListDemoUsers returns the legacy users rows.
func (u *DashboardUsecase) ListDemoUsers(ctx context.Context) ([]entity.DemoUser, error) {
	return u.demoUsers.List(ctx)
}

// CreateDemoUser persists a new legacy user row.
func (u *DashboardUsecase) CreateDemoUser(ctx context.Context, user *entity.DemoUser) error {
	return u.demoUsers.Create(ctx, user)
}

// Probe はDB接続の生存確認を行い、確認時刻を返します。
func (u *DashboardUsecase) Probe(ctx context.Context) (time.Time, error) {
	if err := u.pinger.Ping(ctx); err != nil {
		return time.Time{}, err
	}
	return time.Now(), nil
}
