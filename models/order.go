package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

const (
	OrderPending    = "Pending"
	OrderProcessing = "Processing"
	OrderShipped    = "Shipped"
	OrderDelivered  = "Delivered"
	OrderCancelled  = "Cancelled"
)

var OrderStatuses = []string{OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled}

// NormalizeOrderStatus 大小写不敏感匹配, 返回规范写法
func NormalizeOrderStatus(s string) (string, bool) {
	for _, st := range OrderStatuses {
		if strings.EqualFold(strings.TrimSpace(s), st) {
			return st, true
		}
	}
	return "", false
}

// Order 订单主表
type Order struct {
	ID                uint64         `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID            uint64         `gorm:"not null;index:idx_order_user;column:user_id" json:"userId"`
	Status            string         `gorm:"size:16;not null;default:Pending;index:idx_order_status;column:status" json:"status"`
	TotalAmount       int64          `gorm:"not null;default:0;column:total_amount" json:"totalAmount"` // 单位：分
	ShippingAddressID *uint64        `gorm:"column:shipping_address_id" json:"shippingAddressId"`
	ShippingAddress   datatypes.JSON `gorm:"column:shipping_address" json:"shippingAddress,omitempty"` // 下单时地址快照
	CreatedAt         time.Time      `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	OrderID   uint64    `gorm:"not null;index:idx_order_item_order;column:order_id" json:"orderId"`
	VariantID uint64    `gorm:"not null;index:idx_order_item_variant;column:variant_id" json:"variantId"`
	Quantity  int64     `gorm:"not null;column:quantity" json:"quantity"`
	UnitPrice int64     `gorm:"not null;column:unit_price" json:"unitPrice"` // 单位：分, 锁定成交价
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
