package models

import "time"

// Product 对应数据库中的 products 表
type Product struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Title       string    `gorm:"size:255;not null;column:title" json:"title"`
	Description string    `gorm:"type:text;column:description" json:"description"`
	URL         string    `gorm:"size:255;not null;uniqueIndex:idx_product_url;column:url" json:"url"` // URL slug
	Status      string    `gorm:"size:16;not null;default:active;index:idx_product_status;column:status" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Product) TableName() string {
	return "products"
}

// ProductImage 商品图片, 文件存放在对象存储
type ProductImage struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"` // snowflake
	ProductID uint64    `gorm:"not null;index:idx_image_product;column:product_id" json:"productId"`
	URL       string    `gorm:"size:512;not null;column:url" json:"url"`
	ObjectKey string    `gorm:"size:255;not null;column:object_key" json:"-"`
	SortOrder int       `gorm:"not null;default:0;column:sort_order" json:"sortOrder"`
	Width     int       `gorm:"not null;default:0;column:width" json:"width"`
	Height    int       `gorm:"not null;default:0;column:height" json:"height"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (ProductImage) TableName() string {
	return "product_images"
}
