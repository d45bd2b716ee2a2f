package types

import "time"

// InventoryRow 库存行, 连带变体 SKU 与商品标题
type InventoryRow struct {
	ID                uint64    `json:"id"`
	VariantID         uint64    `json:"variantId"`
	SKU               string    `json:"sku"`
	ProductID         uint64    `json:"productId"`
	ProductTitle      string    `json:"productTitle"`
	Quantity          int64     `json:"quantity"`
	LowStockThreshold int64     `json:"lowStockThreshold"`
	IsLowStock        bool      `gorm:"-" json:"isLowStock"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Fill 计算派生字段
func (r *InventoryRow) Fill() *InventoryRow {
	r.IsLowStock = r.Quantity <= r.LowStockThreshold
	return r
}

type SetInventoryRequest struct {
	Quantity          *int64 `json:"quantity" binding:"required"`
	LowStockThreshold *int64 `json:"lowStockThreshold"`
}

type AdjustInventoryRequest struct {
	Delta *int64 `json:"delta" binding:"required"` // 可为负
}
