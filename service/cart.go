package service

import (
	"Couture/dao"
	"Couture/models"
	"Couture/pkg/errorx"
	"Couture/pkg/money"
	"Couture/types"
	"context"
	"errors"

	"gorm.io/gorm"
)

var _ ICartService = (*CartService)(nil)

type ICartService interface {
	GetCart(ctx context.Context, userID uint64) (*types.CartView, error)
	AddItem(ctx context.Context, userID, variantID uint64, quantity int64) (*types.CartView, error)
	SetItemQuantity(ctx context.Context, userID, variantID uint64, quantity int64) (*types.CartView, error)
	RemoveItem(ctx context.Context, userID, variantID uint64) (*types.CartView, error)
	Checkout(ctx context.Context, userID uint64, addressID *uint64) (*types.OrderDetail, error)
}

type CartService struct {
	Db          *gorm.DB
	CartRepo    *dao.Cart
	VariantRepo *dao.Variant
	Orders      *OrderService
}

func cartView(cart *models.ShoppingCart, lines []*types.CartLine) *types.CartView {
	view := &types.CartView{CartID: cart.ID, UserID: cart.UserID, Items: lines, UpdatedAt: cart.UpdatedAt}
	for _, l := range lines {
		view.ItemCount += l.Quantity
		view.Total += l.Subtotal
	}
	view.TotalDisplay = money.Format(view.Total)
	return view
}

// GetCart 购物车及其明细; 没有购物车时返回空车而不创建
func (s *CartService) GetCart(ctx context.Context, userID uint64) (*types.CartView, error) {
	cart, err := s.CartRepo.FindByUser(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return cartView(&models.ShoppingCart{UserID: userID}, []*types.CartLine{}), nil
	}
	if err != nil {
		return nil, err
	}
	lines, err := s.CartRepo.Lines(ctx, cart.ID, false)
	if err != nil {
		return nil, err
	}
	return cartView(cart, lines), nil
}

// mutate 在事务中取得 (必要时创建) 购物车后执行 fn, 提交后返回最新购物车
func (s *CartService) mutate(ctx context.Context, userID, variantID uint64, fn func(ctx context.Context, cart *models.ShoppingCart) error) (*types.CartView, error) {
	err := dao.Transaction(ctx, s.Db, func(ctx context.Context) error {
		if _, err := s.VariantRepo.FindById(ctx, variantID); err != nil {
			return dao.NotFound(err, "Variant not found")
		}
		cart, err := s.CartRepo.GetOrCreate(ctx, userID)
		if err != nil {
			return err
		}
		if err := fn(ctx, cart); err != nil {
			return err
		}
		return s.CartRepo.Touch(ctx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userID)
}

// AddItem 原子累加数量, 不校验正负; 结果 <= 0 的行同事务内删除
func (s *CartService) AddItem(ctx context.Context, userID, variantID uint64, quantity int64) (*types.CartView, error) {
	return s.mutate(ctx, userID, variantID, func(ctx context.Context, cart *models.ShoppingCart) error {
		if err := s.CartRepo.AddItem(ctx, cart.ID, variantID, quantity); err != nil {
			return err
		}
		return s.CartRepo.PruneItem(ctx, cart.ID, variantID)
	})
}

// SetItemQuantity 覆盖数量; quantity <= 0 等同删除
func (s *CartService) SetItemQuantity(ctx context.Context, userID, variantID uint64, quantity int64) (*types.CartView, error) {
	return s.mutate(ctx, userID, variantID, func(ctx context.Context, cart *models.ShoppingCart) error {
		if quantity <= 0 {
			_, err := s.CartRepo.RemoveItem(ctx, cart.ID, variantID)
			return err
		}
		return s.CartRepo.SetItem(ctx, cart.ID, variantID, quantity)
	})
}

func (s *CartService) RemoveItem(ctx context.Context, userID, variantID uint64) (*types.CartView, error) {
	err := dao.Transaction(ctx, s.Db, func(ctx context.Context) error {
		cart, err := s.CartRepo.FindByUser(ctx, userID)
		if err != nil {
			return dao.NotFound(err, "Item not in cart")
		}
		n, err := s.CartRepo.RemoveItem(ctx, cart.ID, variantID)
		if err != nil {
			return err
		}
		if n == 0 {
			return errorx.Missing("Item not in cart")
		}
		return s.CartRepo.Touch(ctx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userID)
}

// Checkout 单个事务内: 锁定购物车行、生成订单与明细、扣减库存、清空购物车。
// 购物车不存在或为空时返回 Validation 错误。
func (s *CartService) Checkout(ctx context.Context, userID uint64, addressID *uint64) (*types.OrderDetail, error) {
	var orderID uint64
	err := dao.Transaction(ctx, s.Db, func(ctx context.Context) error {
		cart, err := s.CartRepo.FindByUser(ctx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorx.Invalid("Cart is empty")
		}
		if err != nil {
			return err
		}
		lines, err := s.CartRepo.Lines(ctx, cart.ID, true)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return errorx.Invalid("Cart is empty")
		}

		items := make([]*models.OrderItem, 0, len(lines))
		for _, l := range lines {
			items = append(items, &models.OrderItem{VariantID: l.VariantID, Quantity: l.Quantity, UnitPrice: l.UnitPrice})
		}
		order, err := s.Orders.place(ctx, userID, models.OrderPending, addressID, items)
		if err != nil {
			return err
		}
		orderID = order.ID

		if err := s.CartRepo.ClearItems(ctx, cart.ID); err != nil {
			return err
		}
		return s.CartRepo.Touch(ctx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.Orders.Get(ctx, orderID)
}
