package types

import "time"

type AddCartItemRequest struct {
	VariantID uint64 `json:"variantId" binding:"required"`
	Quantity  *int64 `json:"quantity"` // 默认 1, 不校验正负
}

type SetCartItemRequest struct {
	Quantity *int64 `json:"quantity" binding:"required"`
}

type CheckoutRequest struct {
	AddressID *uint64 `json:"addressId"`
}

// CartLine 购物车行, 连带 SKU、商品标题与单价
type CartLine struct {
	ItemID       uint64 `json:"itemId"`
	VariantID    uint64 `json:"variantId"`
	SKU          string `json:"sku"`
	ProductID    uint64 `json:"productId"`
	ProductTitle string `json:"productTitle"`
	Quantity     int64  `json:"quantity"`
	UnitPrice    int64  `json:"unitPrice"`
	Subtotal     int64  `gorm:"-" json:"subtotal"`
}

type CartView struct {
	CartID       uint64      `json:"cartId"`
	UserID       uint64      `json:"userId"`
	Items        []*CartLine `json:"items"`
	ItemCount    int64       `json:"itemCount"`
	Total        int64       `json:"total"` // 单位：分
	TotalDisplay string      `json:"totalDisplay"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}
