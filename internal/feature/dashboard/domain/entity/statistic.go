// Package entity はdashboardフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// Statistic はダッシュボード上段のメトリクスカード1枚分のデータです。
type Statistic struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	MetricName  string    `gorm:"size:255;not null" json:"metric_name"`
	MetricValue int64     `gorm:"not null" json:"metric_value"`
	Percentage  float64   `json:"percentage"`
	ExtraValue  int64     `json:"extra_value"`
	IsLoss      bool      `gorm:"default:false" json:"is_loss"`
	Color       string    `gorm:"size:50;default:primary" json:"color"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the table name for GORM.
func (Statistic) TableName() string {
	return "statistics"
}
