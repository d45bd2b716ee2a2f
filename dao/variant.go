package dao

import (
	"Couture/models"
	"Couture/pkg/errorx"
	"Couture/types"
	"context"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

type Variant struct {
	Repo[models.ProductVariant]
}

func NewVariant(db *gorm.DB) *Variant {
	return &Variant{
		Repo: NewRepo[models.ProductVariant](db),
	}
}

// List 变体列表, productID 为 0 时返回全部
func (v *Variant) List(ctx context.Context, productID uint64) ([]*models.ProductVariant, error) {
	return v.FindAll(ctx, func(db *gorm.DB) *gorm.DB {
		if productID > 0 {
			db = db.Where("product_id = ?", productID)
		}
		return db.Order("product_id ASC, id ASC")
	})
}

// MaxSkuSuffix 商品下形如 <base><n> 的 SKU 中最大的 n, 没有时为 0
func (v *Variant) MaxSkuSuffix(ctx context.Context, productID uint64, base string) (int, error) {
	var skus []string
	err := v.Conn(ctx).Model(&models.ProductVariant{}).
		Where("product_id = ? AND sku LIKE ?", productID, base+"%").
		Pluck("sku", &skus).Error
	if err != nil {
		return 0, err
	}
	highest := 0
	for _, sku := range skus {
		if !strings.HasPrefix(sku, base) {
			continue
		}
		if n, err := strconv.Atoi(sku[len(base):]); err == nil && n > highest {
			highest = n
		}
	}
	return highest, nil
}

func (v *Variant) FindByIDs(ctx context.Context, ids []uint64) (map[uint64]*models.ProductVariant, error) {
	result := make(map[uint64]*models.ProductVariant, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var items []*models.ProductVariant
	if err := v.Conn(ctx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	for _, item := range items {
		result[item.ID] = item
	}
	return result, nil
}

// Attributes 批量查询变体属性值, 连带属性名
func (v *Variant) Attributes(ctx context.Context, variantIDs []uint64) ([]*types.AttributeValueRow, error) {
	rows := make([]*types.AttributeValueRow, 0)
	if len(variantIDs) == 0 {
		return rows, nil
	}
	err := v.Conn(ctx).Model(&models.VariantAttributeValue{}).
		Select("variant_attribute_values.variant_id, variant_attribute_values.attribute_id, pa.name, pa.type, variant_attribute_values.value").
		Joins("JOIN product_attributes pa ON pa.id = variant_attribute_values.attribute_id").
		Where("variant_attribute_values.variant_id IN ?", variantIDs).
		Order("variant_attribute_values.variant_id ASC, pa.name ASC").
		Scan(&rows).Error
	return rows, err
}

// SetAttributes 整体替换变体的属性值
func (v *Variant) SetAttributes(ctx context.Context, variantID uint64, values []types.AttributeValueInput) error {
	db := v.Conn(ctx)
	if err := db.Where("variant_id = ?", variantID).Delete(&models.VariantAttributeValue{}).Error; err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}
	rows := make([]*models.VariantAttributeValue, 0, len(values))
	for _, val := range values {
		rows = append(rows, &models.VariantAttributeValue{
			VariantID:   variantID,
			AttributeID: val.AttributeID,
			Value:       val.Value,
		})
	}
	return Duplicate(db.Create(&rows).Error, "Duplicate attribute on variant")
}

// HasOrders 变体是否出现在订单明细中
func (v *Variant) HasOrders(ctx context.Context, variantID uint64) (bool, error) {
	var count int64
	err := v.Conn(ctx).Model(&models.OrderItem{}).
		Where("variant_id = ?", variantID).
		Limit(1).Count(&count).Error
	return count > 0, err
}

// Remove 删除变体及其属性值、库存、参考编号和购物车行, 必须在事务中调用
func (v *Variant) Remove(ctx context.Context, variantID uint64) error {
	ordered, err := v.HasOrders(ctx, variantID)
	if err != nil {
		return err
	}
	if ordered {
		return errorx.New(errorx.ReferentialConflict, "Cannot delete variant with existing orders")
	}

	db := v.Conn(ctx)
	for _, model := range []any{
		&models.VariantAttributeValue{},
		&models.Inventory{},
		&models.VariantReference{},
		&models.CartItem{},
	} {
		if err := db.Where("variant_id = ?", variantID).Delete(model).Error; err != nil {
			return err
		}
	}
	res := db.Where("id = ?", variantID).Delete(&models.ProductVariant{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errorx.New(errorx.NotFound, "Variant not found")
	}
	return nil
}

type Attribute struct {
	Repo[models.ProductAttribute]
}

func NewAttribute(db *gorm.DB) *Attribute {
	return &Attribute{
		Repo: NewRepo[models.ProductAttribute](db),
	}
}

func (a *Attribute) List(ctx context.Context) ([]*models.ProductAttribute, error) {
	return a.FindAll(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Order("name ASC")
	})
}

// CountIDs 统计存在的属性 id 个数
func (a *Attribute) CountIDs(ctx context.Context, ids []uint64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return a.Count(ctx, "id IN ?", ids)
}
