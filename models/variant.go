package models

import "time"

// ProductVariant 可购买的具体 SKU
type ProductVariant struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ProductID uint64    `gorm:"not null;index:idx_variant_product;column:product_id" json:"productId"`
	SKU       string    `gorm:"size:64;not null;uniqueIndex:idx_variant_sku;column:sku" json:"sku"`
	Barcode   string    `gorm:"size:64;column:barcode" json:"barcode"`
	Price     int64     `gorm:"not null;default:0;column:price" json:"price"` // 单位：分
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (ProductVariant) TableName() string {
	return "product_variants"
}

// ProductAttribute 属性目录: Size / Color / Material
type ProductAttribute struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name string `gorm:"size:64;not null;uniqueIndex:idx_attribute_name;column:name" json:"name"`
	Type string `gorm:"size:32;not null;default:text;column:type" json:"type"`
}

func (ProductAttribute) TableName() string {
	return "product_attributes"
}

type VariantAttributeValue struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	VariantID   uint64 `gorm:"not null;uniqueIndex:idx_variant_attribute,priority:1;column:variant_id" json:"variantId"`
	AttributeID uint64 `gorm:"not null;uniqueIndex:idx_variant_attribute,priority:2;index:idx_vav_attribute;column:attribute_id" json:"attributeId"`
	Value       string `gorm:"size:128;not null;column:value" json:"value"`
}

func (VariantAttributeValue) TableName() string {
	return "variant_attribute_values"
}
