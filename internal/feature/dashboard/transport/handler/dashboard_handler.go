// Package handler はdashboardフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"admin_backend/internal/api"
	"admin_backend/internal/feature/dashboard/domain/entity"
)

// DashboardUsecase はダッシュボードデータ操作のユースケースを定義します。
type DashboardUsecase interface {
	ListStatistics(ctx context.Context) ([]entity.Statistic, error)
	ListRecentOrders(ctx context.Context) ([]entity.Order, error)
	CreateOrder(ctx context.Context, order *entity.Order) error
	ListDemoUsers(ctx context.Context) ([]entity.DemoUser, error)
	CreateDemoUser(ctx context.Context, user *entity.DemoUser) error
	Probe(ctx context.Context) (time.Time, error)
}

// DashboardHandler はダッシュボードデータのHTTPリクエストを処理します。
// 認証レイヤーとは独立しており、レスポンスはフロントエンド互換の素の配列です。
type DashboardHandler struct {
	dashboard DashboardUsecase
}

// NewDashboardHandler はDashboardHandlerの新しいインスタンスを生成します。
func NewDashboardHandler(dashboard DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// ListStatistics は GET /api/statistics を処理します。
func (h *DashboardHandler) ListStatistics(c *gin.Context) {
	rows, err := h.dashboard.ListStatistics(c.Request.Context())
	if err != nil {
		slog.Error("failed to list statistics", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ListOrders は GET /api/orders を処理します。直近10件を返します。
func (h *DashboardHandler) ListOrders(c *gin.Context) {
	rows, err := h.dashboard.ListRecentOrders(c.Request.Context())
	if err != nil {
		slog.Error("failed to list orders", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// CreateOrder は POST /api/orders を処理します。
func (h *DashboardHandler) CreateOrder(c *gin.Context) {
	var order entity.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}
	if err := h.dashboard.CreateOrder(c.Request.Context(), &order); err != nil {
		slog.Error("failed to create order", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, order)
}

// ListUsers は GET /api/users を処理します（旧usersテーブル）。
func (h *DashboardHandler) ListUsers(c *gin.Context) {
	rows, err := h.dashboard.ListDemoUsers(c.Request.Context())
	if err != nil {
		slog.Error("failed to list users", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// CreateUser は POST /api/users を処理します（旧usersテーブル）。
func (h *DashboardHandler) CreateUser(c *gin.Context) {
	var user entity.DemoUser
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}
	if err := h.dashboard.CreateDemoUser(c.Request.Context(), &user); err != nil {
		slog.Error("failed to create user", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Test は GET /api/test を処理します。フロントエンドのDB疎通確認用です。
func (h *DashboardHandler) Test(c *gin.Context) {
	at, err := h.dashboard.Probe(c.Request.Context())
	if err != nil {
		slog.Error("database probe failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "database connection failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       "API is working",
		"database_time": at,
		"status":        "connected",
	})
}
