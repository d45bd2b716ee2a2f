package dao

import (
	"Couture/models"

	"gorm.io/gorm"
)

// Models 全部表, 按依赖顺序
func Models() []any {
	return []any{
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.ProductCategory{},
		&models.ProductVariant{},
		&models.ProductAttribute{},
		&models.VariantAttributeValue{},
		&models.Inventory{},
		&models.User{},
		&models.UserAddress{},
		&models.Order{},
		&models.OrderItem{},
		&models.ShoppingCart{},
		&models.CartItem{},
		&models.UserReference{},
		&models.ProductReference{},
		&models.VariantReference{},
		&models.OrderReference{},
	}
}

// Migrate 建表 / 补齐字段与索引
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
