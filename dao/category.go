package dao

import (
	"Couture/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Category struct {
	Repo[models.Category]
}

func NewCategory(db *gorm.DB) *Category {
	return &Category{
		Repo: NewRepo[models.Category](db),
	}
}

// List 分类列表, status 为空时返回全部
func (c *Category) List(ctx context.Context, status string) ([]*models.Category, error) {
	return c.FindAll(ctx, func(db *gorm.DB) *gorm.DB {
		if status != "" {
			db = db.Where("status = ?", status)
		}
		return db.Order("name ASC")
	})
}

// FindBySlug 按 slug 查询分类
func (c *Category) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return c.FindByWhere(ctx, "slug = ?", slug)
}

// Lock 在事务中锁定分类行
func (c *Category) Lock(ctx context.Context, id uint64) (*models.Category, error) {
	var cat models.Category
	err := c.Conn(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&cat).Error
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Category) FindByIDs(ctx context.Context, ids []uint64) ([]*models.Category, error) {
	if len(ids) == 0 {
		return []*models.Category{}, nil
	}
	var items []*models.Category
	err := c.Conn(ctx).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

// ForProduct 商品所属的分类
func (c *Category) ForProduct(ctx context.Context, productID uint64) ([]*models.Category, error) {
	items := make([]*models.Category, 0)
	err := c.Conn(ctx).
		Joins("JOIN product_categories pc ON pc.category_id = categories.id").
		Where("pc.product_id = ?", productID).
		Order("categories.name ASC").
		Find(&items).Error
	return items, err
}

// CountProducts 关联到该分类的商品数
func (c *Category) CountProducts(ctx context.Context, categoryID uint64) (int64, error) {
	var count int64
	err := c.Conn(ctx).Model(&models.ProductCategory{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}

func (c *Category) UpdateStatus(ctx context.Context, id uint64, status string) (int64, error) {
	return c.UpdateById(ctx, id, map[string]any{"status": status})
}

func (c *Category) Delete(ctx context.Context, id uint64) (int64, error) {
	return c.DeleteWhere(ctx, "id = ?", id)
}
