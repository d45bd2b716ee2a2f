package service

import (
	"Couture/dao"
	"Couture/dao/cache"
	"Couture/models"
	"Couture/pkg/errorx"
	"Couture/pkg/log"
	"Couture/pkg/utils"
	"Couture/types"
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IProductService = (*ProductService)(nil)

type IProductService interface {
	List(ctx context.Context, filter *types.ProductFilter) (*types.ProductList, error)
	Get(ctx context.Context, id uint64) (*types.ProductDetail, error)
	GetWithVariants(ctx context.Context, id uint64) (*types.ProductWithVariants, error)
	GetWithCategories(ctx context.Context, id uint64) (*types.ProductWithCategories, error)
	Create(ctx context.Context, req *types.CreateProductRequest) (*types.ProductWithVariants, error)
	Update(ctx context.Context, id uint64, req *types.UpdateProductRequest) (*types.ProductDetail, error)
	Purge(ctx context.Context, id uint64) error
}

type ProductService struct {
	Db           *gorm.DB
	ProductRepo  *dao.Product
	CategoryRepo *dao.Category
	RefRepo      *dao.Reference
	RefGen       IReferenceGenerator
	Variants     *VariantService
	Cache        *cache.ProductCache
	Storage      ObjectStorage
}

func (s *ProductService) List(ctx context.Context, filter *types.ProductFilter) (*types.ProductList, error) {
	page, limit, offset := utils.Paginate(filter.Page, pageSize(filter.Limit), maxPageSize)
	q := dao.ProductQuery{
		Status: filter.Status,
		Search: strings.TrimSpace(filter.Search),
		Limit:  limit,
		Offset: offset,
	}
	if q.Status != "" && !models.IsValidStatus(q.Status) {
		return nil, errorx.Invalid("Status must be active or inactive")
	}
	if c := strings.TrimSpace(filter.Category); c != "" {
		if id, err := strconv.ParseUint(c, 10, 64); err == nil {
			q.CategoryID = id
		} else {
			q.CategorySlug = c
		}
	}

	products, total, err := s.ProductRepo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return &types.ProductList{Products: products, Metadata: types.NewPagination(total, page, limit)}, nil
}

func (s *ProductService) find(ctx context.Context, id uint64) (*models.Product, error) {
	p, err := s.ProductRepo.FindById(ctx, id)
	return p, dao.NotFound(err, "Product not found")
}

// Get 商品详情 (图片 + 分类), 优先读缓存
func (s *ProductService) Get(ctx context.Context, id uint64) (*types.ProductDetail, error) {
	if s.Cache != nil {
		detail, hit, err := s.Cache.Get(ctx, id)
		if err != nil {
			log.L.Warn("read product cache", zap.Uint64("product_id", id), zap.Error(err))
		}
		if hit {
			return detail, nil
		}
	}

	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	numbers, err := s.RefRepo.Products(ctx, id)
	if err != nil {
		return nil, err
	}
	images, err := s.ProductRepo.Images(ctx, id)
	if err != nil {
		return nil, err
	}
	categories, err := s.CategoryRepo.ForProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := &types.ProductDetail{Product: *p, ReferenceNumber: numbers[id], Images: images, Categories: categories}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, detail); err != nil {
			log.L.Warn("write product cache", zap.Uint64("product_id", id), zap.Error(err))
		}
	}
	return detail, nil
}

func (s *ProductService) GetWithVariants(ctx context.Context, id uint64) (*types.ProductWithVariants, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	numbers, err := s.RefRepo.Products(ctx, id)
	if err != nil {
		return nil, err
	}
	variants, err := s.Variants.List(ctx, id)
	if err != nil {
		return nil, err
	}
	return &types.ProductWithVariants{Product: *p, ReferenceNumber: numbers[id], Variants: variants}, nil
}

func (s *ProductService) GetWithCategories(ctx context.Context, id uint64) (*types.ProductWithCategories, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	categories, err := s.CategoryRepo.ForProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return &types.ProductWithCategories{Product: *p, Categories: categories}, nil
}

// checkCategories 分类 id 去重后必须全部存在
func (s *ProductService) checkCategories(ctx context.Context, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	unique := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}
	found, err := s.CategoryRepo.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(found) != len(unique) {
		return errorx.Invalid("Unknown category")
	}
	return nil
}

// productURL 提交的 url 原样保存, 为空时由 title 生成
func productURL(url, title string) string {
	if strings.TrimSpace(url) != "" {
		return url
	}
	if slug := utils.Slugify(title); slug != "" {
		return slug
	}
	return "product-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// checkURL url 已被其他商品占用时返回 Conflict
func (s *ProductService) checkURL(ctx context.Context, url string, selfID uint64) error {
	taken, err := s.ProductRepo.IsURLTaken(ctx, url, selfID)
	if err != nil {
		return err
	}
	if taken {
		return errorx.Conflicts("Product URL already exists").With("url", url)
	}
	return nil
}

// Create 单个事务内写入商品、参考编号、分类关联、变体及其库存
func (s *ProductService) Create(ctx context.Context, req *types.CreateProductRequest) (*types.ProductWithVariants, error) {
	status, err := normalizeStatus(req.Status)
	if err != nil {
		return nil, err
	}

	var id uint64
	err = dao.Transaction(ctx, s.Db, func(ctx context.Context) error {
		if err := s.checkCategories(ctx, req.CategoryIDs); err != nil {
			return err
		}
		p := &models.Product{
			Title:       req.Title,
			Description: req.Description,
			URL:         productURL(req.URL, req.Title),
			Status:      status,
		}
		if err := s.checkURL(ctx, p.URL, 0); err != nil {
			return err
		}
		if err := s.ProductRepo.Create(ctx, p); err != nil {
			return dao.Duplicate(err, "Product URL already exists")
		}
		id = p.ID

		number, err := s.RefGen.Next(EntityProduct, p.ID)
		if err != nil {
			return err
		}
		if err := s.RefRepo.SaveProduct(ctx, p.ID, number); err != nil {
			return err
		}
		if err := s.ProductRepo.LinkCategories(ctx, p.ID, req.CategoryIDs); err != nil {
			return err
		}
		_, err = s.Variants.createVariants(ctx, p.ID, req.SkuPrefix, req.Variants)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.GetWithVariants(ctx, id)
}

// Update url 为空时由 title 重新生成; categoryIds 非 nil 时整体替换分类
func (s *ProductService) Update(ctx context.Context, id uint64, req *types.UpdateProductRequest) (*types.ProductDetail, error) {
	status, err := normalizeStatus(req.Status)
	if err != nil {
		return nil, err
	}

	err = dao.Transaction(ctx, s.Db, func(ctx context.Context) error {
		if _, err := s.find(ctx, id); err != nil {
			return err
		}
		url := productURL(req.URL, req.Title)
		if err := s.checkURL(ctx, url, id); err != nil {
			return err
		}
		_, err := s.ProductRepo.UpdateById(ctx, id, map[string]any{
			"title":       req.Title,
			"description": req.Description,
			"url":         url,
			"status":      status,
		})
		if err != nil {
			return dao.Duplicate(err, "Product URL already exists")
		}
		if req.CategoryIDs == nil {
			return nil
		}
		if err := s.checkCategories(ctx, *req.CategoryIDs); err != nil {
			return err
		}
		return s.ProductRepo.ReplaceCategories(ctx, id, *req.CategoryIDs)
	})
	if err != nil {
		return nil, err
	}
	evictProducts(ctx, s.Cache, id)
	return s.Get(ctx, id)
}

// Purge 删除商品及全部从属数据; 被订单引用时返回 ReferentialConflict。
// 对象存储中的图片在提交后删除, 失败只记录日志。
func (s *ProductService) Purge(ctx context.Context, id uint64) error {
	var images []*models.ProductImage
	err := dao.Transaction(ctx, s.Db, func(ctx context.Context) error {
		if _, err := s.find(ctx, id); err != nil {
			return err
		}
		var err error
		if images, err = s.ProductRepo.Images(ctx, id); err != nil {
			return err
		}
		return s.ProductRepo.Purge(ctx, id)
	})
	if err != nil {
		return err
	}

	evictProducts(ctx, s.Cache, id)
	if s.Storage != nil {
		for _, img := range images {
			if err := s.Storage.Delete(ctx, img.ObjectKey); err != nil {
				log.L.Warn("delete product image object", zap.String("key", img.ObjectKey), zap.Error(err))
			}
		}
	}
	return nil
}

// evictProducts 失效商品详情缓存, 失败只记录日志
func evictProducts(ctx context.Context, c *cache.ProductCache, ids ...uint64) {
	if c == nil {
		return
	}
	if err := c.Del(ctx, ids...); err != nil {
		log.L.Warn("evict product cache", zap.Uint64s("product_ids", ids), zap.Error(err))
	}
}
