package dao

import (
	"Couture/models"
	"context"

	"gorm.io/gorm"
)

// Reference 四张参考编号表的读写
type Reference struct {
	Db *gorm.DB
}

func NewReference(db *gorm.DB) *Reference {
	return &Reference{Db: db}
}

func (r *Reference) conn(ctx context.Context) *gorm.DB {
	return Repo[models.OrderReference]{Db: r.Db}.Conn(ctx)
}

func (r *Reference) SaveUser(ctx context.Context, userID uint64, number string) error {
	return r.conn(ctx).Create(&models.UserReference{UserID: userID, ReferenceNumber: number}).Error
}

func (r *Reference) SaveProduct(ctx context.Context, productID uint64, number string) error {
	return r.conn(ctx).Create(&models.ProductReference{ProductID: productID, ReferenceNumber: number}).Error
}

func (r *Reference) SaveVariant(ctx context.Context, variantID uint64, number string) error {
	return r.conn(ctx).Create(&models.VariantReference{VariantID: variantID, ReferenceNumber: number}).Error
}

func (r *Reference) SaveOrder(ctx context.Context, orderID uint64, number string) error {
	return r.conn(ctx).Create(&models.OrderReference{OrderID: orderID, ReferenceNumber: number}).Error
}

// lookup 按实体 id 批量查询参考编号
func (r *Reference) lookup(ctx context.Context, table, column string, ids []uint64) (map[uint64]string, error) {
	result := make(map[uint64]string, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var rows []struct {
		EntityID        uint64
		ReferenceNumber string
	}
	err := r.conn(ctx).Table(table).
		Select(column+" AS entity_id, reference_number").
		Where(column+" IN ?", ids).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.EntityID] = row.ReferenceNumber
	}
	return result, nil
}

func (r *Reference) Users(ctx context.Context, ids ...uint64) (map[uint64]string, error) {
	return r.lookup(ctx, models.UserReference{}.TableName(), "user_id", ids)
}

func (r *Reference) Products(ctx context.Context, ids ...uint64) (map[uint64]string, error) {
	return r.lookup(ctx, models.ProductReference{}.TableName(), "product_id", ids)
}

func (r *Reference) Variants(ctx context.Context, ids ...uint64) (map[uint64]string, error) {
	return r.lookup(ctx, models.VariantReference{}.TableName(), "variant_id", ids)
}

func (r *Reference) Orders(ctx context.Context, ids ...uint64) (map[uint64]string, error) {
	return r.lookup(ctx, models.OrderReference{}.TableName(), "order_id", ids)
}
