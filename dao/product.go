package dao

import (
	"Couture/models"
	"Couture/pkg/errorx"
	"context"
	"strconv"

	"gorm.io/gorm"
)

type Product struct {
	Repo[models.Product]
}

func NewProduct(db *gorm.DB) *Product {
	return &Product{
		Repo: NewRepo[models.Product](db),
	}
}

// ProductQuery 商品列表过滤条件
type ProductQuery struct {
	CategoryID   uint64
	CategorySlug string
	Status       string
	Search       string
	Limit        int
	Offset       int
}

func (p *Product) filter(q ProductQuery) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if q.CategoryID > 0 || q.CategorySlug != "" {
			sub := p.Db.Model(&models.ProductCategory{}).Select("product_categories.product_id")
			if q.CategoryID > 0 {
				sub = sub.Where("product_categories.category_id = ?", q.CategoryID)
			} else {
				sub = sub.Joins("JOIN categories ON categories.id = product_categories.category_id").
					Where("categories.slug = ?", q.CategorySlug)
			}
			db = db.Where("products.id IN (?)", sub)
		}
		if q.Status != "" {
			db = db.Where("products.status = ?", q.Status)
		}
		if q.Search != "" {
			like := "%" + q.Search + "%"
			db = db.Where("products.title LIKE ? OR products.description LIKE ?", like, like)
		}
		return db
	}
}

// List 分页查询商品, 返回当前页与总数
func (p *Product) List(ctx context.Context, q ProductQuery) ([]*models.Product, int64, error) {
	var total int64
	if err := p.Conn(ctx).Model(&models.Product{}).Scopes(p.filter(q)).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	items := make([]*models.Product, 0)
	err := p.Conn(ctx).Scopes(p.filter(q)).
		Order("products.created_at DESC, products.id DESC").
		Limit(q.Limit).Offset(q.Offset).
		Find(&items).Error
	return items, total, err
}

// ListByCategory 分类下的全部商品
func (p *Product) ListByCategory(ctx context.Context, categoryID uint64) ([]*models.Product, error) {
	return p.FindAll(ctx, p.filter(ProductQuery{CategoryID: categoryID}), func(db *gorm.DB) *gorm.DB {
		return db.Order("products.title ASC")
	})
}

// IsURLTaken url 是否已被其他商品占用
func (p *Product) IsURLTaken(ctx context.Context, url string, excludeID uint64) (bool, error) {
	return p.IsExist(ctx, "url = ? AND id <> ?", url, excludeID)
}

// LinkCategories 写入商品与分类的关联
func (p *Product) LinkCategories(ctx context.Context, productID uint64, categoryIDs []uint64) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	links := make([]*models.ProductCategory, 0, len(categoryIDs))
	seen := make(map[uint64]struct{}, len(categoryIDs))
	for _, id := range categoryIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		links = append(links, &models.ProductCategory{ProductID: productID, CategoryID: id})
	}
	return p.Conn(ctx).Create(&links).Error
}

// ReplaceCategories 整体替换商品的分类
func (p *Product) ReplaceCategories(ctx context.Context, productID uint64, categoryIDs []uint64) error {
	if err := p.Conn(ctx).Where("product_id = ?", productID).Delete(&models.ProductCategory{}).Error; err != nil {
		return err
	}
	return p.LinkCategories(ctx, productID, categoryIDs)
}

// HasOrders 商品的任一变体是否出现在订单明细中
func (p *Product) HasOrders(ctx context.Context, productID uint64) (bool, error) {
	var count int64
	err := p.Conn(ctx).Model(&models.OrderItem{}).
		Joins("JOIN product_variants pv ON pv.id = order_items.variant_id").
		Where("pv.product_id = ?", productID).
		Limit(1).Count(&count).Error
	return count > 0, err
}

// Purge 删除商品及其全部从属数据, 必须在事务中调用。
// 存在订单引用时返回 ReferentialConflict。
func (p *Product) Purge(ctx context.Context, productID uint64) error {
	ordered, err := p.HasOrders(ctx, productID)
	if err != nil {
		return err
	}
	if ordered {
		return errorx.New(errorx.ReferentialConflict, "Cannot delete product with existing orders").
			With("productId", strconv.FormatUint(productID, 10))
	}

	db := p.Conn(ctx)
	variants := db.Model(&models.ProductVariant{}).Select("id").Where("product_id = ?", productID)
	steps := []struct {
		model any
		where string
		arg   any
	}{
		{&models.VariantAttributeValue{}, "variant_id IN (?)", variants},
		{&models.Inventory{}, "variant_id IN (?)", variants},
		{&models.VariantReference{}, "variant_id IN (?)", variants},
		{&models.CartItem{}, "variant_id IN (?)", variants},
		{&models.ProductVariant{}, "product_id = ?", productID},
		{&models.ProductImage{}, "product_id = ?", productID},
		{&models.ProductCategory{}, "product_id = ?", productID},
		{&models.ProductReference{}, "product_id = ?", productID},
	}
	for _, s := range steps {
		if err := db.Where(s.where, s.arg).Delete(s.model).Error; err != nil {
			return err
		}
	}

	res := db.Where("id = ?", productID).Delete(&models.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errorx.New(errorx.NotFound, "Product not found")
	}
	return nil
}

// Images 商品图片, 按 sort_order 排序
func (p *Product) Images(ctx context.Context, productID uint64) ([]*models.ProductImage, error) {
	items := make([]*models.ProductImage, 0)
	err := p.Conn(ctx).Where("product_id = ?", productID).
		Order("sort_order ASC, id ASC").
		Find(&items).Error
	return items, err
}

func (p *Product) NextImageOrder(ctx context.Context, productID uint64) (int, error) {
	var max int
	err := p.Conn(ctx).Model(&models.ProductImage{}).
		Select("COALESCE(MAX(sort_order), -1)").
		Where("product_id = ?", productID).
		Scan(&max).Error
	return max + 1, err
}

func (p *Product) CreateImage(ctx context.Context, img *models.ProductImage) error {
	return p.Conn(ctx).Create(img).Error
}

func (p *Product) FindImage(ctx context.Context, productID uint64, imageID int64) (*models.ProductImage, error) {
	var img models.ProductImage
	err := p.Conn(ctx).Where("id = ? AND product_id = ?", imageID, productID).First(&img).Error
	if err != nil {
		return nil, NotFound(err, "Image not found")
	}
	return &img, nil
}

func (p *Product) DeleteImage(ctx context.Context, imageID int64) error {
	return p.Conn(ctx).Where("id = ?", imageID).Delete(&models.ProductImage{}).Error
}
