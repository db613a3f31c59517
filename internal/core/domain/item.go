package domain

import "time"

// Item is a single inventory row in the item master.
type Item struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:128;not null"`
	SKU       string    `json:"sku,omitempty" gorm:"column:sku;size:64"`
	Quantity  int       `json:"quantity" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
}
