package models

import "time"

// ShoppingCart 每个用户一个购物车
type ShoppingCart struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_cart_user;column:user_id" json:"userId"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (ShoppingCart) TableName() string {
	return "shopping_carts"
}

type CartItem struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	CartID    uint64    `gorm:"not null;uniqueIndex:idx_cart_variant,priority:1;column:cart_id" json:"cartId"`
	VariantID uint64    `gorm:"not null;uniqueIndex:idx_cart_variant,priority:2;column:variant_id" json:"variantId"`
	Quantity  int64     `gorm:"not null;column:quantity" json:"quantity"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
