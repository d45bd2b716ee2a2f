package service

import (
	"Couture/dao"
	"Couture/pkg/errorx"
	"Couture/types"
	"context"

	"gorm.io/gorm"
)

var _ IInventoryService = (*InventoryService)(nil)

type IInventoryService interface {
	List(ctx context.Context) ([]*types.InventoryRow, error)
	LowStock(ctx context.Context) ([]*types.InventoryRow, error)
	Get(ctx context.Context, id uint64) (*types.InventoryRow, error)
	Set(ctx context.Context, id uint64, quantity int64, threshold *int64) (*types.InventoryRow, error)
	Adjust(ctx context.Context, id uint64, delta int64) (*types.InventoryRow, error)
}

type InventoryService struct {
	Db            *gorm.DB
	InventoryRepo *dao.Inventory
}

func (s *InventoryService) List(ctx context.Context) ([]*types.InventoryRow, error) {
	return s.InventoryRepo.List(ctx)
}

func (s *InventoryService) LowStock(ctx context.Context) ([]*types.InventoryRow, error) {
	return s.InventoryRepo.LowStock(ctx)
}

func (s *InventoryService) Get(ctx context.Context, id uint64) (*types.InventoryRow, error) {
	return s.InventoryRepo.Row(ctx, id)
}

// Set 覆盖库存数量 (负数在 HTTP 层拦截)
func (s *InventoryService) Set(ctx context.Context, id uint64, quantity int64, threshold *int64) (*types.InventoryRow, error) {
	if threshold != nil && *threshold < 0 {
		return nil, errorx.Invalid("lowStockThreshold must not be negative")
	}
	var row *types.InventoryRow
	err := dao.Transaction(ctx, s.Db, func(ctx context.Context) error {
		if _, err := s.InventoryRepo.FindById(ctx, id); err != nil {
			return dao.NotFound(err, "Inventory not found")
		}
		if _, err := s.InventoryRepo.Set(ctx, id, quantity, threshold); err != nil {
			return err
		}
		var err error
		row, err = s.InventoryRepo.Row(ctx, id)
		return err
	})
	return row, err
}

// Adjust 原子执行 quantity = quantity + delta, 允许结果为负
func (s *InventoryService) Adjust(ctx context.Context, id uint64, delta int64) (*types.InventoryRow, error) {
	var row *types.InventoryRow
	err := dao.Transaction(ctx, s.Db, func(ctx context.Context) error {
		if _, err := s.InventoryRepo.FindById(ctx, id); err != nil {
			return dao.NotFound(err, "Inventory not found")
		}
		if _, err := s.InventoryRepo.Adjust(ctx, id, delta); err != nil {
			return err
		}
		var err error
		row, err = s.InventoryRepo.Row(ctx, id)
		return err
	})
	return row, err
}
