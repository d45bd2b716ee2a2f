package service

import (
	"Couture/dao"
	"Couture/dao/cache"
	"Couture/models"
	"Couture/pkg/errorx"
	"Couture/pkg/utils"
	"Couture/types"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

var _ ICategoryService = (*CategoryService)(nil)

type ICategoryService interface {
	List(ctx context.Context, status string) ([]*models.Category, error)
	Get(ctx context.Context, id uint64) (*models.Category, error)
	Products(ctx context.Context, id uint64) (*types.CategoryProducts, error)
	Create(ctx context.Context, req *types.CategoryRequest) (*models.Category, error)
	Update(ctx context.Context, id uint64, req *types.CategoryRequest) (*models.Category, error)
	SetStatus(ctx context.Context, id uint64, status string) (*models.Category, error)
	Delete(ctx context.Context, id uint64) error
}

type CategoryService struct {
	Db           *gorm.DB
	CategoryRepo *dao.Category
	ProductRepo  *dao.Product
	Cache        *cache.ProductCache
}

// normalizeStatus 空值默认 active, 其余必须与 active / inactive 完全一致
func normalizeStatus(status string) (string, error) {
	if status == "" {
		return models.StatusActive, nil
	}
	if !models.IsValidStatus(status) {
		return "", errorx.Invalid("Status must be active or inactive")
	}
	return status, nil
}

func (s *CategoryService) List(ctx context.Context, status string) ([]*models.Category, error) {
	if status != "" && !models.IsValidStatus(status) {
		return nil, errorx.Invalid("Status must be active or inactive")
	}
	return s.CategoryRepo.List(ctx, status)
}

func (s *CategoryService) Get(ctx context.Context, id uint64) (*models.Category, error) {
	cat, err := s.CategoryRepo.FindById(ctx, id)
	return cat, dao.NotFound(err, "Category not found")
}

func (s *CategoryService) Products(ctx context.Context, id uint64) (*types.CategoryProducts, error) {
	cat, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	products, err := s.ProductRepo.ListByCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	return &types.CategoryProducts{Category: cat, Products: products}, nil
}

func (s *CategoryService) build(req *types.CategoryRequest) (*models.Category, error) {
	status, err := normalizeStatus(req.Status)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	slug := utils.Slugify(req.Slug)
	if slug == "" {
		slug = utils.Slugify(name)
	}
	if slug == "" {
		return nil, errorx.Invalid("Category name must contain letters or digits")
	}
	return &models.Category{Name: name, Description: req.Description, Status: status, Slug: slug}, nil
}

// checkSlug slug 已被其他分类占用时返回 Conflict
func (s *CategoryService) checkSlug(ctx context.Context, slug string, selfID uint64) error {
	other, err := s.CategoryRepo.FindBySlug(ctx, slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if other.ID != selfID {
		return errorx.Conflicts("Category slug already exists").With("slug", slug)
	}
	return nil
}

// linkedProducts 关联到分类的商品 id, 用于失效商品详情缓存
func (s *CategoryService) linkedProducts(ctx context.Context, id uint64) ([]uint64, error) {
	if s.Cache == nil {
		return nil, nil
	}
	products, err := s.ProductRepo.ListByCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids, nil
}

func (s *CategoryService) evict(ctx context.Context, productIDs []uint64) {
	if len(productIDs) > 0 {
		evictProducts(ctx, s.Cache, productIDs...)
	}
}

func (s *CategoryService) Create(ctx context.Context, req *types.CategoryRequest) (*models.Category, error) {
	cat, err := s.build(req)
	if err != nil {
		return nil, err
	}
	if err := s.checkSlug(ctx, cat.Slug, 0); err != nil {
		return nil, err
	}
	if err := s.CategoryRepo.Create(ctx, cat); err != nil {
		return nil, dao.Duplicate(err, "Category name or slug already exists")
	}
	return cat, nil
}

func (s *CategoryService) Update(ctx context.Context, id uint64, req *types.CategoryRequest) (*models.Category, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	cat, err := s.build(req)
	if err != nil {
		return nil, err
	}
	if err := s.checkSlug(ctx, cat.Slug, id); err != nil {
		return nil, err
	}
	linked, err := s.linkedProducts(ctx, id)
	if err != nil {
		return nil, err
	}
	_, err = s.CategoryRepo.UpdateById(ctx, id, map[string]any{
		"name":        cat.Name,
		"description": cat.Description,
		"status":      cat.Status,
		"slug":        cat.Slug,
	})
	if err != nil {
		return nil, dao.Duplicate(err, "Category name or slug already exists")
	}
	s.evict(ctx, linked)
	return s.Get(ctx, id)
}

func (s *CategoryService) SetStatus(ctx context.Context, id uint64, status string) (*models.Category, error) {
	if !models.IsValidStatus(status) {
		return nil, errorx.Invalid("Status must be active or inactive")
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	linked, err := s.linkedProducts(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.CategoryRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	s.evict(ctx, linked)
	return s.Get(ctx, id)
}

// Delete 锁定分类行后统计关联商品, 仍有关联时拒绝删除并返回关联数
func (s *CategoryService) Delete(ctx context.Context, id uint64) error {
	return dao.Transaction(ctx, s.Db, func(ctx context.Context) error {
		if _, err := s.CategoryRepo.Lock(ctx, id); err != nil {
			return dao.NotFound(err, "Category not found")
		}
		count, err := s.CategoryRepo.CountProducts(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return errorx.New(errorx.ReferentialConflict, "Cannot delete category with associated products").
				With("productCount", count)
		}
		_, err = s.CategoryRepo.Delete(ctx, id)
		return err
	})
}
