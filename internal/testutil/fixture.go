package testutil

import (
	"Couture/models"
	"Couture/pkg/encrypt"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// SeedUser 直接写入一个用户, 密码为 password123
func SeedUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()
	hashed, err := encrypt.HashPassword("password123")
	require.NoError(t, err)
	u := &models.User{FirstName: "Test", LastName: "User", Email: email, Password: hashed, Role: role}
	require.NoError(t, db.Create(u).Error)
	return u
}

// SeedVariant 写入商品、变体与库存行
func SeedVariant(t *testing.T, db *gorm.DB, sku string, price, quantity int64) *models.ProductVariant {
	t.Helper()
	p := &models.Product{Title: "Product " + sku, URL: fmt.Sprintf("product-%s", sku), Status: models.StatusActive}
	require.NoError(t, db.Create(p).Error)
	v := &models.ProductVariant{ProductID: p.ID, SKU: sku, Price: price}
	require.NoError(t, db.Create(v).Error)
	require.NoError(t, db.Create(&models.Inventory{VariantID: v.ID, Quantity: quantity, LowStockThreshold: models.DefaultLowStockThreshold}).Error)
	return v
}
