package types

import "Couture/models"

type OrderItemInput struct {
	VariantID uint64 `json:"variantId" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	UserID            uint64           `json:"userId" binding:"required"`
	Status            string           `json:"status"` // 默认 Pending
	ShippingAddressID *uint64          `json:"shippingAddressId"`
	Items             []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

type UpdateOrderRequest struct {
	Status            string            `json:"status"`
	ShippingAddressID *uint64           `json:"shippingAddressId"`
	Items             *[]OrderItemInput `json:"items" binding:"omitempty,dive"` // 非 nil 时整体替换并重算总价
}

type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type OrderFilter struct {
	Status string `form:"status"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

// OrderItemDetail 订单明细, 连带 SKU 与商品标题
type OrderItemDetail struct {
	ID           uint64 `json:"id"`
	OrderID      uint64 `json:"orderId"`
	VariantID    uint64 `json:"variantId"`
	SKU          string `json:"sku"`
	ProductID    uint64 `json:"productId"`
	ProductTitle string `json:"productTitle"`
	Quantity     int64  `json:"quantity"`
	UnitPrice    int64  `json:"unitPrice"`
	Subtotal     int64  `gorm:"-" json:"subtotal"`
}

type OrderDetail struct {
	models.Order
	ReferenceNumber string             `json:"referenceNumber"`
	TotalDisplay    string             `json:"totalDisplay"`
	Items           []*OrderItemDetail `json:"items"`
}

type OrderList struct {
	Orders   []*OrderDetail `json:"orders"`
	Metadata Pagination     `json:"metadata"`
}

type OrderCount struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
}
