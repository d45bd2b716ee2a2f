package service

import (
	"Couture/dao"
	"Couture/models"
	"Couture/pkg/errorx"
	"Couture/pkg/money"
	"Couture/types"
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var _ IVariantService = (*VariantService)(nil)

type IVariantService interface {
	List(ctx context.Context, productID uint64) ([]*types.VariantDetail, error)
	Get(ctx context.Context, id uint64) (*types.VariantDetail, error)
	Create(ctx context.Context, req *types.CreateVariantRequest) (*types.VariantDetail, error)
	Update(ctx context.Context, id uint64, req *types.UpdateVariantRequest) (*types.VariantDetail, error)
	Delete(ctx context.Context, id uint64) error
}

type VariantService struct {
	Db            *gorm.DB
	VariantRepo   *dao.Variant
	AttributeRepo *dao.Attribute
	InventoryRepo *dao.Inventory
	ProductRepo   *dao.Product
	RefRepo       *dao.Reference
	RefGen        IReferenceGenerator
}

// Details 组装变体详情: 参考编号、属性值与库存
func (s *VariantService) Details(ctx context.Context, variants []*models.ProductVariant) ([]*types.VariantDetail, error) {
	ids := make([]uint64, 0, len(variants))
	for _, v := range variants {
		ids = append(ids, v.ID)
	}
	numbers, err := s.RefRepo.Variants(ctx, ids...)
	if err != nil {
		return nil, err
	}
	attrs, err := s.VariantRepo.Attributes(ctx, ids)
	if err != nil {
		return nil, err
	}
	stock, err := s.InventoryRepo.RowsByVariants(ctx, ids)
	if err != nil {
		return nil, err
	}

	byVariant := make(map[uint64][]types.AttributeValueRow, len(variants))
	for _, a := range attrs {
		byVariant[a.VariantID] = append(byVariant[a.VariantID], *a)
	}
	details := make([]*types.VariantDetail, 0, len(variants))
	for _, v := range variants {
		values := byVariant[v.ID]
		if values == nil {
			values = []types.AttributeValueRow{}
		}
		details = append(details, &types.VariantDetail{
			ProductVariant:  *v,
			ReferenceNumber: numbers[v.ID],
			PriceDisplay:    money.Format(v.Price),
			Attributes:      values,
			Inventory:       stock[v.ID],
		})
	}
	return details, nil
}

func (s *VariantService) List(ctx context.Context, productID uint64) ([]*types.VariantDetail, error) {
	variants, err := s.VariantRepo.List(ctx, productID)
	if err != nil {
		return nil, err
	}
	return s.Details(ctx, variants)
}

func (s *VariantService) Get(ctx context.Context, id uint64) (*types.VariantDetail, error) {
	v, err := s.VariantRepo.FindById(ctx, id)
	if err != nil {
		return nil, dao.NotFound(err, "Variant not found")
	}
	details, err := s.Details(ctx, []*models.ProductVariant{v})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

// checkAttributes 属性 id 必须存在且不重复
func (s *VariantService) checkAttributes(ctx context.Context, values []types.AttributeValueInput) error {
	if len(values) == 0 {
		return nil
	}
	ids := make([]uint64, 0, len(values))
	seen := make(map[uint64]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v.AttributeID]; ok {
			return errorx.Invalid("Duplicate attribute on variant").With("attributeId", v.AttributeID)
		}
		seen[v.AttributeID] = struct{}{}
		ids = append(ids, v.AttributeID)
	}
	count, err := s.AttributeRepo.CountIDs(ctx, ids)
	if err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return errorx.Invalid("Unknown attribute")
	}
	return nil
}

// createVariants 写入变体、参考编号、属性值与库存行, 调用方负责事务。
// SKU 为空时生成 <PREFIX>-<productID>-<n>, n 接在该商品已有的最大编号之后。
func (s *VariantService) createVariants(ctx context.Context, productID uint64, prefix string, inputs []types.VariantInput) ([]uint64, error) {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	offset := 0
	if prefix != "" {
		var err error
		offset, err = s.VariantRepo.MaxSkuSuffix(ctx, productID, fmt.Sprintf("%s-%d-", prefix, productID))
		if err != nil {
			return nil, err
		}
	}
	ids := make([]uint64, 0, len(inputs))
	for n, in := range inputs {
		if in.Price < 0 {
			return nil, errorx.Invalid("Price must not be negative")
		}
		sku := strings.TrimSpace(in.SKU)
		if sku == "" {
			if prefix == "" {
				return nil, errorx.Invalid("SKU is required when no skuPrefix is given")
			}
			sku = fmt.Sprintf("%s-%d-%d", prefix, productID, offset+n+1)
		}
		if err := s.checkAttributes(ctx, in.Attributes); err != nil {
			return nil, err
		}

		v := &models.ProductVariant{ProductID: productID, SKU: sku, Barcode: strings.TrimSpace(in.Barcode), Price: in.Price}
		if err := s.VariantRepo.Create(ctx, v); err != nil {
			return nil, dao.Duplicate(err, "SKU already exists: "+sku)
		}
		number, err := s.RefGen.Next(EntityVariant, v.ID)
		if err != nil {
			return nil, err
		}
		if err := s.RefRepo.SaveVariant(ctx, v.ID, number); err != nil {
			return nil, err
		}
		if err := s.VariantRepo.SetAttributes(ctx, v.ID, in.Attributes); err != nil {
			return nil, err
		}

		stock := &models.Inventory{VariantID: v.ID, LowStockThreshold: models.DefaultLowStockThreshold}
		if in.Quantity != nil {
			stock.Quantity = *in.Quantity
		}
		if in.LowStockThreshold != nil {
			stock.LowStockThreshold = *in.LowStockThreshold
		}
		if err := s.InventoryRepo.Create(ctx, stock); err != nil {
			return nil, err
		}
		ids = append(ids, v.ID)
	}
	return ids, nil
}

func (s *VariantService) Create(ctx context.Context, req *types.CreateVariantRequest) (*types.VariantDetail, error) {
	var id uint64
	err := dao.Transaction(ctx, s.Db, func(ctx context.Context) error {
		if _, err := s.ProductRepo.FindById(ctx, req.ProductID); err != nil {
			return dao.NotFound(err, "Product not found")
		}
		ids, err := s.createVariants(ctx, req.ProductID, req.SkuPrefix, []types.VariantInput{req.VariantInput})
		if err != nil {
			return err
		}
		id = ids[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Update 修改字段; attributes 非 nil 时整体替换
func (s *VariantService) Update(ctx context.Context, id uint64, req *types.UpdateVariantRequest) (*types.VariantDetail, error) {
	err := dao.Transaction(ctx, s.Db, func(ctx context.Context) error {
		if _, err := s.VariantRepo.FindById(ctx, id); err != nil {
			return dao.NotFound(err, "Variant not found")
		}

		sku := strings.TrimSpace(req.SKU)
		_, err := s.VariantRepo.UpdateById(ctx, id, map[string]any{
			"sku":     sku,
			"barcode": strings.TrimSpace(req.Barcode),
			"price":   req.Price,
		})
		if err != nil {
			return dao.Duplicate(err, "SKU already exists: "+sku)
		}
		if req.LowStockThreshold != nil {
			if err := s.InventoryRepo.UpdateThreshold(ctx, id, *req.LowStockThreshold); err != nil {
				return err
			}
		}
		if req.Attributes != nil {
			if err := s.checkAttributes(ctx, *req.Attributes); err != nil {
				return err
			}
			return s.VariantRepo.SetAttributes(ctx, id, *req.Attributes)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *VariantService) Delete(ctx context.Context, id uint64) error {
	return dao.Transaction(ctx, s.Db, func(ctx context.Context) error {
		if _, err := s.VariantRepo.FindById(ctx, id); err != nil {
			return dao.NotFound(err, "Variant not found")
		}
		return s.VariantRepo.Remove(ctx, id)
	})
}
