package models

import "time"

// 参考编号: 面向人的编号, 与主键一一对应

type UserReference struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID          uint64    `gorm:"not null;uniqueIndex:idx_user_ref_user;column:user_id" json:"userId"`
	ReferenceNumber string    `gorm:"size:32;not null;uniqueIndex:idx_user_ref_number;column:reference_number" json:"referenceNumber"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (UserReference) TableName() string {
	return "user_references"
}

type ProductReference struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ProductID       uint64    `gorm:"not null;uniqueIndex:idx_product_ref_product;column:product_id" json:"productId"`
	ReferenceNumber string    `gorm:"size:32;not null;uniqueIndex:idx_product_ref_number;column:reference_number" json:"referenceNumber"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (ProductReference) TableName() string {
	return "product_references"
}

type VariantReference struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	VariantID       uint64    `gorm:"not null;uniqueIndex:idx_variant_ref_variant;column:variant_id" json:"variantId"`
	ReferenceNumber string    `gorm:"size:32;not null;uniqueIndex:idx_variant_ref_number;column:reference_number" json:"referenceNumber"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (VariantReference) TableName() string {
	return "variant_references"
}

type OrderReference struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	OrderID         uint64    `gorm:"not null;uniqueIndex:idx_order_ref_order;column:order_id" json:"orderId"`
	ReferenceNumber string    `gorm:"size:32;not null;uniqueIndex:idx_order_ref_number;column:reference_number" json:"referenceNumber"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (OrderReference) TableName() string {
	return "order_references"
}
