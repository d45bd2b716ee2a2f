package dao

import (
	"Couture/models"
	"Couture/types"
	"context"

	"gorm.io/gorm"
)

type Order struct {
	Repo[models.Order]
}

func NewOrder(db *gorm.DB) *Order {
	return &Order{
		Repo: NewRepo[models.Order](db),
	}
}

// List 分页查询订单, status 为空时不过滤
func (o *Order) List(ctx context.Context, status string, limit, offset int) ([]*models.Order, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if status != "" {
			db = db.Where("status = ?", status)
		}
		return db
	}
	var total int64
	if err := o.Conn(ctx).Model(&models.Order{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	items, err := o.FindAll(ctx, scope, func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC, id DESC").Limit(limit).Offset(offset)
	})
	return items, total, err
}

func (o *Order) ListByUser(ctx context.Context, userID uint64) ([]*models.Order, error) {
	return o.FindAll(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID).Order("created_at DESC, id DESC")
	})
}

// CountByStatus 按状态分组计数
func (o *Order) CountByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}
	err := o.Conn(ctx).Model(&models.Order{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make(map[string]int64, len(rows))
	for _, r := range rows {
		result[r.Status] = r.Total
	}
	return result, nil
}

// CreateItems 一条 INSERT 批量写入订单明细
func (o *Order) CreateItems(ctx context.Context, items []*models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return o.Conn(ctx).Create(&items).Error
}

func (o *Order) RawItems(ctx context.Context, orderID uint64) ([]*models.OrderItem, error) {
	items := make([]*models.OrderItem, 0)
	err := o.Conn(ctx).Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

// Items 批量查询订单明细, 连带 SKU 与商品标题
func (o *Order) Items(ctx context.Context, orderIDs []uint64) ([]*types.OrderItemDetail, error) {
	rows := make([]*types.OrderItemDetail, 0)
	if len(orderIDs) == 0 {
		return rows, nil
	}
	err := o.Conn(ctx).Model(&models.OrderItem{}).
		Select("order_items.id, order_items.order_id, order_items.variant_id, pv.sku, pv.product_id, "+
			"p.title AS product_title, order_items.quantity, order_items.unit_price").
		Joins("LEFT JOIN product_variants pv ON pv.id = order_items.variant_id").
		Joins("LEFT JOIN products p ON p.id = pv.product_id").
		Where("order_items.order_id IN ?", orderIDs).
		Order("order_items.order_id ASC, order_items.id ASC").
		Scan(&rows).Error
	for _, r := range rows {
		r.Subtotal = r.Quantity * r.UnitPrice
	}
	return rows, err
}

func (o *Order) DeleteItems(ctx context.Context, orderID uint64) error {
	return o.Conn(ctx).Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error
}

// Remove 删除订单明细、参考编号与订单, 必须在事务中调用
func (o *Order) Remove(ctx context.Context, orderID uint64) (int64, error) {
	db := o.Conn(ctx)
	if err := o.DeleteItems(ctx, orderID); err != nil {
		return 0, err
	}
	if err := db.Where("order_id = ?", orderID).Delete(&models.OrderReference{}).Error; err != nil {
		return 0, err
	}
	res := db.Where("id = ?", orderID).Delete(&models.Order{})
	return res.RowsAffected, res.Error
}
