package models

import "time"

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Category 商品分类
type Category struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name        string    `gorm:"size:100;not null;uniqueIndex:idx_category_name;column:name" json:"name"`
	Description string    `gorm:"type:text;column:description" json:"description"`
	Status      string    `gorm:"size:16;not null;default:active;index:idx_category_status;column:status" json:"status"` // active / inactive
	Slug        string    `gorm:"size:120;not null;uniqueIndex:idx_category_slug;column:slug" json:"slug"`               // SEO slug
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Category) TableName() string {
	return "categories"
}

// ProductCategory 商品与分类的多对多关联
type ProductCategory struct {
	ProductID  uint64 `gorm:"primaryKey;autoIncrement:false;column:product_id" json:"productId"`
	CategoryID uint64 `gorm:"primaryKey;autoIncrement:false;index:idx_pc_category;column:category_id" json:"categoryId"`
}

func (ProductCategory) TableName() string {
	return "product_categories"
}

func IsValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive
}
