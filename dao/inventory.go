package dao

import (
	"Couture/models"
	"Couture/types"
	"context"

	"gorm.io/gorm"
)

type Inventory struct {
	Repo[models.Inventory]
}

func NewInventory(db *gorm.DB) *Inventory {
	return &Inventory{
		Repo: NewRepo[models.Inventory](db),
	}
}

const inventoryColumns = "inventory.id, inventory.variant_id, pv.sku, pv.product_id, p.title AS product_title, " +
	"inventory.quantity, inventory.low_stock_threshold, inventory.updated_at"

func (i *Inventory) rows(ctx context.Context) *gorm.DB {
	return i.Conn(ctx).Model(&models.Inventory{}).
		Select(inventoryColumns).
		Joins("JOIN product_variants pv ON pv.id = inventory.variant_id").
		Joins("JOIN products p ON p.id = pv.product_id")
}

func fill(rows []*types.InventoryRow) []*types.InventoryRow {
	for _, r := range rows {
		r.Fill()
	}
	return rows
}

// List 全部库存行
func (i *Inventory) List(ctx context.Context) ([]*types.InventoryRow, error) {
	rows := make([]*types.InventoryRow, 0)
	err := i.rows(ctx).Order("p.title ASC, pv.sku ASC").Scan(&rows).Error
	return fill(rows), err
}

// LowStock quantity <= low_stock_threshold 的库存行, 数量升序
func (i *Inventory) LowStock(ctx context.Context) ([]*types.InventoryRow, error) {
	rows := make([]*types.InventoryRow, 0)
	err := i.rows(ctx).
		Where("inventory.quantity <= inventory.low_stock_threshold").
		Order("inventory.quantity ASC, pv.sku ASC").
		Scan(&rows).Error
	return fill(rows), err
}

func (i *Inventory) CountLowStock(ctx context.Context) (int64, error) {
	return i.Count(ctx, "quantity <= low_stock_threshold")
}

// Row 单个库存行
func (i *Inventory) Row(ctx context.Context, id uint64) (*types.InventoryRow, error) {
	rows := make([]*types.InventoryRow, 0, 1)
	if err := i.rows(ctx).Where("inventory.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, NotFound(gorm.ErrRecordNotFound, "Inventory not found")
	}
	return rows[0].Fill(), nil
}

// RowsByVariants 按变体 id 批量查询库存行
func (i *Inventory) RowsByVariants(ctx context.Context, variantIDs []uint64) (map[uint64]*types.InventoryRow, error) {
	result := make(map[uint64]*types.InventoryRow, len(variantIDs))
	if len(variantIDs) == 0 {
		return result, nil
	}
	rows := make([]*types.InventoryRow, 0)
	if err := i.rows(ctx).Where("inventory.variant_id IN ?", variantIDs).Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		result[r.VariantID] = r.Fill()
	}
	return result, nil
}

// Set 覆盖库存数量, threshold 非 nil 时一并更新
func (i *Inventory) Set(ctx context.Context, id uint64, quantity int64, threshold *int64) (int64, error) {
	data := map[string]any{"quantity": quantity}
	if threshold != nil {
		data["low_stock_threshold"] = *threshold
	}
	return i.UpdateById(ctx, id, data)
}

// Adjust 原子增减库存, 不做下限检查
func (i *Inventory) Adjust(ctx context.Context, id uint64, delta int64) (int64, error) {
	res := i.Conn(ctx).Model(&models.Inventory{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	return res.RowsAffected, res.Error
}

// Decrement 按变体扣减库存; enforce 为 true 时仅在库存充足时扣减
func (i *Inventory) Decrement(ctx context.Context, variantID uint64, qty int64, enforce bool) (int64, error) {
	query := i.Conn(ctx).Model(&models.Inventory{}).Where("variant_id = ?", variantID)
	if enforce {
		query = query.Where("quantity >= ?", qty)
	}
	res := query.Update("quantity", gorm.Expr("quantity - ?", qty))
	return res.RowsAffected, res.Error
}

// Restock 按变体归还库存
func (i *Inventory) Restock(ctx context.Context, variantID uint64, qty int64) error {
	return i.Conn(ctx).Model(&models.Inventory{}).
		Where("variant_id = ?", variantID).
		Update("quantity", gorm.Expr("quantity + ?", qty)).Error
}

func (i *Inventory) UpdateThreshold(ctx context.Context, variantID uint64, threshold int64) error {
	return i.Conn(ctx).Model(&models.Inventory{}).
		Where("variant_id = ?", variantID).
		Update("low_stock_threshold", threshold).Error
}
