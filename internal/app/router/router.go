// Package router はアプリケーションのルーティングを構築します。
package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"admin_backend/internal/api"
	authhandler "admin_backend/internal/feature/auth/transport/handler"
	dashhandler "admin_backend/internal/feature/dashboard/transport/handler"
	workshandler "admin_backend/internal/feature/worksref/transport/handler"
	platformhandler "admin_backend/internal/platform/http/handler"
)

// NewRouter はルートテーブルとミドルウェアを組み立てます。
// dashboardとworksrefはDB接続がない場合nilになり、該当ルートは500を返します。
func NewRouter(auth *authhandler.AuthHandler, dashboard *dashhandler.DashboardHandler,
	works *workshandler.WorksrefHandler) *gin.Engine {
	r := gin.Default()

	// 管理画面フロントエンドからのアクセスのみ許可
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// 死活監視用（認証・DB不要）
	r.GET("/api/health", platformhandler.Health)
	r.HEAD("/api/health", platformhandler.Health)

	// 認証エンドポイント
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/login", auth.Login)
		authGroup.POST("/logout", auth.Logout)
		authGroup.GET("/me", auth.Me)
	}

	// ダッシュボードデータ（元実装と同じく認証不要）
	if dashboard != nil {
		r.GET("/api/test", dashboard.Test)
		r.GET("/api/statistics", dashboard.ListStatistics)
		r.GET("/api/orders", dashboard.ListOrders)
		r.POST("/api/orders", dashboard.CreateOrder)
		r.GET("/api/users", dashboard.ListUsers)
		r.POST("/api/users", dashboard.CreateUser)
	} else {
		r.GET("/api/test", dbUnavailable)
		r.GET("/api/statistics", dbUnavailable)
		r.GET("/api/orders", dbUnavailable)
		r.POST("/api/orders", dbUnavailable)
		r.GET("/api/users", dbUnavailable)
		r.POST("/api/users", dbUnavailable)
	}

	// 作業参照データ
	if works != nil {
		r.GET("/api/phases", works.ListPhases)
		r.GET("/api/works", works.ListWorks)
		r.GET("/api/works/:workId/materials", works.ListWorkMaterials)
		r.POST("/api/works", works.CreateWork)
	} else {
		r.GET("/api/phases", dbUnavailable)
		r.GET("/api/works", dbUnavailable)
		r.GET("/api/works/:workId/materials", dbUnavailable)
		r.POST("/api/works", dbUnavailable)
	}

	return r
}

// dbUnavailable はDB接続なしで起動した場合のデータ系ルートの応答です。
func dbUnavailable(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "database unavailable"})
}
