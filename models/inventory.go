package models

import "time"

// Inventory 每个变体恰好一行; quantity 允许为负
type Inventory struct {
	ID                uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	VariantID         uint64    `gorm:"not null;uniqueIndex:idx_inventory_variant;column:variant_id" json:"variantId"`
	Quantity          int64     `gorm:"not null;default:0;column:quantity" json:"quantity"`
	LowStockThreshold int64     `gorm:"not null;default:0;column:low_stock_threshold" json:"lowStockThreshold"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Inventory) TableName() string {
	return "inventory"
}

func (i *Inventory) IsLowStock() bool {
	return i.Quantity <= i.LowStockThreshold
}

const DefaultLowStockThreshold int64 = 5
