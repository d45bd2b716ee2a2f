package types

import "Couture/models"

type CategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	Status      string `json:"status"` // 为空时默认 active
	Slug        string `json:"slug"`   // 为空时由 name 生成
}

type CategoryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ProductFilter struct {
	Category string `form:"category"` // 分类 id 或 slug
	Status   string `form:"status"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

type AttributeValueInput struct {
	AttributeID uint64 `json:"attributeId" binding:"required"`
	Value       string `json:"value" binding:"required"`
}

type VariantInput struct {
	SKU               string                `json:"sku"` // 为空时按 skuPrefix 生成
	Barcode           string                `json:"barcode"`
	Price             int64                 `json:"price" binding:"min=0"` // 单位：分
	Quantity          *int64                `json:"quantity"`              // 初始库存, 默认 0
	LowStockThreshold *int64                `json:"lowStockThreshold"`
	Attributes        []AttributeValueInput `json:"attributes" binding:"dive"`
}

type CreateProductRequest struct {
	Title       string         `json:"title" binding:"required,max=255"`
	Description string         `json:"description"`
	URL         string         `json:"url"`
	Status      string         `json:"status"`
	SkuPrefix   string         `json:"skuPrefix"`
	CategoryIDs []uint64       `json:"categoryIds"`
	Variants    []VariantInput `json:"variants" binding:"dive"`
}

type UpdateProductRequest struct {
	Title       string    `json:"title" binding:"required,max=255"`
	Description string    `json:"description"`
	URL         string    `json:"url"` // 为空时由 title 重新生成
	Status      string    `json:"status"`
	CategoryIDs *[]uint64 `json:"categoryIds"` // nil 表示不修改分类
}

type CreateVariantRequest struct {
	ProductID uint64 `json:"productId" binding:"required"`
	SkuPrefix string `json:"skuPrefix"`
	VariantInput
}

type UpdateVariantRequest struct {
	SKU               string                 `json:"sku" binding:"required"`
	Barcode           string                 `json:"barcode"`
	Price             int64                  `json:"price" binding:"min=0"`
	LowStockThreshold *int64                 `json:"lowStockThreshold"`
	Attributes        *[]AttributeValueInput `json:"attributes"` // nil 表示不修改属性
}

type AttributeRequest struct {
	Name string `json:"name" binding:"required,max=64"`
	Type string `json:"type"`
}

// AttributeValueRow 变体属性值, 带属性名
type AttributeValueRow struct {
	VariantID   uint64 `json:"variantId"`
	AttributeID uint64 `json:"attributeId"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Value       string `json:"value"`
}

type VariantDetail struct {
	models.ProductVariant
	ReferenceNumber string              `json:"referenceNumber"`
	PriceDisplay    string              `json:"priceDisplay"`
	Attributes      []AttributeValueRow `json:"attributes"`
	Inventory       *InventoryRow       `json:"inventory"`
}

type ProductDetail struct {
	models.Product
	ReferenceNumber string                 `json:"referenceNumber"`
	Images          []*models.ProductImage `json:"images"`
	Categories      []*models.Category     `json:"categories"`
}

type ProductWithVariants struct {
	models.Product
	ReferenceNumber string           `json:"referenceNumber"`
	Variants        []*VariantDetail `json:"variants"`
}

type ProductWithCategories struct {
	models.Product
	Categories []*models.Category `json:"categories"`
}

type ProductList struct {
	Products []*models.Product `json:"products"`
	Metadata Pagination        `json:"metadata"`
}

type CategoryProducts struct {
	Category *models.Category  `json:"category"`
	Products []*models.Product `json:"products"`
}
