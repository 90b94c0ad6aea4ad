package db

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authentity "admin_backend/internal/feature/auth/domain/entity"
	dashentity "admin_backend/internal/feature/dashboard/domain/entity"
)

// demoPassword は全デモアカウント共通のパスワードです。
const demoPassword = "password123"

// SeedDemoData はテーブルが空の場合にデモデータを投入します。
// 投入の失敗は起動を止めず、ログに残すのみです。
func SeedDemoData(conn *gorm.DB, bcryptCost int) {
	seedAuthUsers(conn, bcryptCost)
	seedDemoUsers(conn)
	seedOrders(conn)
	seedStatistics(conn)
}

func seedAuthUsers(conn *gorm.DB, bcryptCost int) {
	var count int64
	if err := conn.Model(&authentity.User{}).Count(&count).Error; err != nil {
		slog.Warn("failed to count auth users, skipping seed", "error", err)
		return
	}
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcryptCost)
	if err != nil {
		slog.Warn("failed to hash demo password, skipping seed", "error", err)
		return
	}

	users := []authentity.User{
		{Email: "admin@mantis.ru", PasswordHash: string(hashed), Firstname: "Admin", Lastname: "System", Company: "Mantis Admin", IsActive: true, EmailVerified: true},
		{Email: "user@mantis.ru", PasswordHash: string(hashed), Firstname: "Ivan", Lastname: "Ivanov", Company: "Ivanov & Co", IsActive: true, EmailVerified: true},
		{Email: "demo@mantis.ru", PasswordHash: string(hashed), Firstname: "Demo", Lastname: "User", Company: "Demo Company", IsActive: true, EmailVerified: false},
	}
	if err := conn.Create(&users).Error; err != nil {
		slog.Warn("failed to seed auth users", "error", err)
		return
	}
	slog.Info("demo auth accounts seeded", "count", len(users))
}

func seedDemoUsers(conn *gorm.DB) {
	var count int64
	if err := conn.Model(&dashentity.DemoUser{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	users := []dashentity.DemoUser{
		{Name: "Ivan Ivanov", Email: "ivan@example.com"},
		{Name: "Maria Petrova", Email: "maria@example.com"},
		{Name: "Alexey Sidorov", Email: "alexey@example.com"},
	}
	if err := conn.Create(&users).Error; err != nil {
		slog.Warn("failed to seed demo users", "error", err)
	}
}

func seedOrders(conn *gorm.DB) {
	var count int64
	if err := conn.Model(&dashentity.Order{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	orders := []dashentity.Order{
		{TrackingNo: 84564564, ProductName: "Camera Lens", Quantity: 40, Status: 2, Amount: 40570.00},
		{TrackingNo: 98764564, ProductName: "Laptop", Quantity: 300, Status: 0, Amount: 180139.00},
		{TrackingNo: 98756325, ProductName: "Mobile Phone", Quantity: 355, Status: 1, Amount: 90989.00},
		{TrackingNo: 98652366, ProductName: "Phone", Quantity: 50, Status: 1, Amount: 10239.00},
		{TrackingNo: 13286564, ProductName: "Computer Accessories", Quantity: 100, Status: 1, Amount: 83348.00},
		{TrackingNo: 86739658, ProductName: "TV", Quantity: 99, Status: 0, Amount: 410780.00},
		{TrackingNo: 13256498, ProductName: "Keyboard", Quantity: 125, Status: 2, Amount: 70999.00},
		{TrackingNo: 98753263, ProductName: "Mouse", Quantity: 89, Status: 2, Amount: 10570.00},
	}
	if err := conn.Create(&orders).Error; err != nil {
		slog.Warn("failed to seed orders", "error", err)
	}
}

func seedStatistics(conn *gorm.DB) {
	var count int64
	if err := conn.Model(&dashentity.Statistic{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	stats := []dashentity.Statistic{
		{MetricName: "Total Page Views", MetricValue: 442236, Percentage: 59.3, ExtraValue: 35000, IsLoss: false, Color: "primary"},
		{MetricName: "Total Users", MetricValue: 78250, Percentage: 70.5, ExtraValue: 8900, IsLoss: false, Color: "primary"},
		{MetricName: "Total Orders", MetricValue: 18800, Percentage: 27.4, ExtraValue: 1943, IsLoss: true, Color: "warning"},
		{MetricName: "Total Sales", MetricValue: 35078, Percentage: 27.4, ExtraValue: 20395, IsLoss: true, Color: "warning"},
	}
	if err := conn.Create(&stats).Error; err != nil {
		slog.Warn("failed to seed statistics", "error", err)
	}
}
