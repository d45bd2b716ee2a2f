package service

import (
	"Couture/dao"
	"Couture/models"
	"Couture/types"
	"context"

	"github.com/sourcegraph/conc/pool"
)

var _ ISummaryService = (*SummaryService)(nil)

type ISummaryService interface {
	Summary(ctx context.Context) (*types.Summary, error)
}

type SummaryService struct {
	ProductRepo   *dao.Product
	UsersRepo     *dao.Users
	OrderRepo     *dao.Order
	InventoryRepo *dao.Inventory
}

// Summary 四个计数并发查询, 任一失败即返回错误
func (s *SummaryService) Summary(ctx context.Context) (*types.Summary, error) {
	out := &types.Summary{}
	p := pool.New().WithContext(ctx).WithCancelOnError()

	p.Go(func(ctx context.Context) (err error) {
		out.Products, err = s.ProductRepo.Count(ctx, "")
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		out.Customers, err = s.UsersRepo.CountByRole(ctx, models.RoleCustomer)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		out.PendingOrders, err = s.OrderRepo.Count(ctx, "status = ?", models.OrderPending)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		out.LowStockItems, err = s.InventoryRepo.CountLowStock(ctx)
		return err
	})

	if err := p.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
