package dao

import (
	"Couture/models"
	"Couture/types"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Cart struct {
	Repo[models.ShoppingCart]
}

func NewCart(db *gorm.DB) *Cart {
	return &Cart{
		Repo: NewRepo[models.ShoppingCart](db),
	}
}

func (c *Cart) FindByUser(ctx context.Context, userID uint64) (*models.ShoppingCart, error) {
	return c.FindByWhere(ctx, "user_id = ?", userID)
}

// GetOrCreate 按 user_id 插入或忽略, 再读出购物车
func (c *Cart) GetOrCreate(ctx context.Context, userID uint64) (*models.ShoppingCart, error) {
	err := c.Conn(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(&models.ShoppingCart{UserID: userID}).Error
	if err != nil {
		return nil, err
	}
	return c.FindByUser(ctx, userID)
}

// Touch 刷新购物车更新时间
func (c *Cart) Touch(ctx context.Context, cartID uint64) error {
	return c.Conn(ctx).Model(&models.ShoppingCart{}).
		Where("id = ?", cartID).
		Update("updated_at", time.Now()).Error
}

// AddItem 原子 upsert: 已有行时 quantity = quantity + qty
func (c *Cart) AddItem(ctx context.Context, cartID, variantID uint64, qty int64) error {
	return c.Conn(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "variant_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity":   gorm.Expr("cart_items.quantity + ?", qty),
				"updated_at": time.Now(),
			}),
		}).
		Create(&models.CartItem{CartID: cartID, VariantID: variantID, Quantity: qty}).Error
}

// SetItem 原子 upsert: 覆盖数量
func (c *Cart) SetItem(ctx context.Context, cartID, variantID uint64, qty int64) error {
	return c.Conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cart_id"}, {Name: "variant_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
		}).
		Create(&models.CartItem{CartID: cartID, VariantID: variantID, Quantity: qty}).Error
}

// PruneItem 删除数量 <= 0 的行
func (c *Cart) PruneItem(ctx context.Context, cartID, variantID uint64) error {
	return c.Conn(ctx).
		Where("cart_id = ? AND variant_id = ? AND quantity <= 0", cartID, variantID).
		Delete(&models.CartItem{}).Error
}

func (c *Cart) RemoveItem(ctx context.Context, cartID, variantID uint64) (int64, error) {
	res := c.Conn(ctx).Where("cart_id = ? AND variant_id = ?", cartID, variantID).Delete(&models.CartItem{})
	return res.RowsAffected, res.Error
}

func (c *Cart) ClearItems(ctx context.Context, cartID uint64) error {
	return c.Conn(ctx).Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}

// Lines 购物车行, 连带 SKU、商品标题与变体价格; lock 为 true 时加行锁
func (c *Cart) Lines(ctx context.Context, cartID uint64, lock bool) ([]*types.CartLine, error) {
	rows := make([]*types.CartLine, 0)
	query := c.Conn(ctx).Model(&models.CartItem{}).
		Select("cart_items.id AS item_id, cart_items.variant_id, pv.sku, pv.product_id, "+
			"p.title AS product_title, cart_items.quantity, pv.price AS unit_price").
		Joins("JOIN product_variants pv ON pv.id = cart_items.variant_id").
		Joins("JOIN products p ON p.id = pv.product_id").
		Where("cart_items.cart_id = ?", cartID).
		Order("cart_items.id ASC")
	if lock {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		r.Subtotal = r.Quantity * r.UnitPrice
	}
	return rows, nil
}
