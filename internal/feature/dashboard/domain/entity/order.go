package entity

import "time"

// Order は注文テーブルの1行を表します。
type Order struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TrackingNo  int64     `gorm:"not null" json:"tracking_no"`
	ProductName string    `gorm:"size:255;not null" json:"product_name"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	Status      int       `gorm:"default:0" json:"status"`
	Amount      float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	UserID      *uint     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the table name for GORM.
func (Order) TableName() string {
	return "orders"
}
