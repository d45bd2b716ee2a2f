package service

import (
	"Couture/config"
	"Couture/dao"
	"Couture/models"
	"Couture/pkg/errorx"
	"Couture/pkg/money"
	"Couture/pkg/utils"
	"Couture/types"
	"context"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var _ IOrderService = (*OrderService)(nil)

type IOrderService interface {
	List(ctx context.Context, filter *types.OrderFilter) (*types.OrderList, error)
	Count(ctx context.Context) (*types.OrderCount, error)
	Get(ctx context.Context, id uint64) (*types.OrderDetail, error)
	ListByUser(ctx context.Context, userID uint64) ([]*types.OrderDetail, error)
	Create(ctx context.Context, req *types.CreateOrderRequest) (*types.OrderDetail, error)
	Update(ctx context.Context, id uint64, req *types.UpdateOrderRequest) (*types.OrderDetail, error)
	SetStatus(ctx context.Context, id uint64, status string) (*types.OrderDetail, error)
	Delete(ctx context.Context, id uint64) error
}

type OrderService struct {
	Config        *config.Config
	Db            *gorm.DB
	OrderRepo     *dao.Order
	VariantRepo   *dao.Variant
	InventoryRepo *dao.Inventory
	AddressRepo   *dao.Address
	UsersRepo     *dao.Users
	RefRepo       *dao.Reference
	RefGen        IReferenceGenerator
}

func normalizeOrderStatus(status string) (string, error) {
	if status == "" {
		return models.OrderPending, nil
	}
	st, ok := models.NormalizeOrderStatus(status)
	if !ok {
		return "", errorx.Invalid("Invalid order status").With("allowed", models.OrderStatuses)
	}
	return st, nil
}

// details 批量组装订单详情: 参考编号与明细
func (s *OrderService) details(ctx context.Context, orders []*models.Order) ([]*types.OrderDetail, error) {
	ids := make([]uint64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	numbers, err := s.RefRepo.Orders(ctx, ids...)
	if err != nil {
		return nil, err
	}
	items, err := s.OrderRepo.Items(ctx, ids)
	if err != nil {
		return nil, err
	}
	byOrder := make(map[uint64][]*types.OrderItemDetail, len(orders))
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}

	result := make([]*types.OrderDetail, 0, len(orders))
	for _, o := range orders {
		lines := byOrder[o.ID]
		if lines == nil {
			lines = []*types.OrderItemDetail{}
		}
		result = append(result, &types.OrderDetail{
			Order:           *o,
			ReferenceNumber: numbers[o.ID],
			TotalDisplay:    money.Format(o.TotalAmount),
			Items:           lines,
		})
	}
	return result, nil
}

func (s *OrderService) List(ctx context.Context, filter *types.OrderFilter) (*types.OrderList, error) {
	status := ""
	if filter.Status != "" {
		var err error
		if status, err = normalizeOrderStatus(filter.Status); err != nil {
			return nil, err
		}
	}
	page, limit, offset := utils.Paginate(filter.Page, pageSize(filter.Limit), maxPageSize)
	orders, total, err := s.OrderRepo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, err
	}
	list, err := s.details(ctx, orders)
	if err != nil {
		return nil, err
	}
	return &types.OrderList{Orders: list, Metadata: types.NewPagination(total, page, limit)}, nil
}

// Count 订单总数与各状态数量, 未出现的状态计 0
func (s *OrderService) Count(ctx context.Context) (*types.OrderCount, error) {
	grouped, err := s.OrderRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	result := &types.OrderCount{ByStatus: make(map[string]int64, len(models.OrderStatuses))}
	for _, st := range models.OrderStatuses {
		result.ByStatus[st] = 0
	}
	for st, n := range grouped {
		result.ByStatus[st] += n
		result.Total += n
	}
	return result, nil
}

func (s *OrderService) Get(ctx context.Context, id uint64) (*types.OrderDetail, error) {
	o, err := s.OrderRepo.FindById(ctx, id)
	if err != nil {
		return nil, dao.NotFound(err, "Order not found")
	}
	list, err := s.details(ctx, []*models.Order{o})
	if err != nil {
		return nil, err
	}
	return list[0], nil
}

// ListByUser 用户的全部订单及明细
func (s *OrderService) ListByUser(ctx context.Context, userID uint64) ([]*types.OrderDetail, error) {
	if _, err := s.UsersRepo.FindById(ctx, userID); err != nil {
		return nil, dao.NotFound(err, "User not found")
	}
	orders, err := s.OrderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, orders)
}

// snapshot 地址必须属于该用户, 返回下单时的 JSON 快照
func (s *OrderService) snapshot(ctx context.Context, userID, addressID uint64) (datatypes.JSON, error) {
	addr, err := s.AddressRepo.FindForUser(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(addr)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(data), nil
}

// itemsFromInput 合并重复变体, 单价取变体当前价格
func (s *OrderService) itemsFromInput(ctx context.Context, inputs []types.OrderItemInput) ([]*models.OrderItem, error) {
	if len(inputs) == 0 {
		return nil, errorx.Invalid("Order must contain at least one item")
	}
	qty := make(map[uint64]int64, len(inputs))
	order := make([]uint64, 0, len(inputs))
	for _, in := range inputs {
		if in.Quantity <= 0 {
			return nil, errorx.Invalid("Quantity must be positive").With("variantId", in.VariantID)
		}
		if _, ok := qty[in.VariantID]; !ok {
			order = append(order, in.VariantID)
		}
		qty[in.VariantID] += in.Quantity
	}
	variants, err := s.VariantRepo.FindByIDs(ctx, order)
	if err != nil {
		return nil, err
	}
	items := make([]*models.OrderItem, 0, len(order))
	for _, id := range order {
		v, ok := variants[id]
		if !ok {
			return nil, errorx.Missing("Variant not found").With("variantId", id)
		}
		items = append(items, &models.OrderItem{VariantID: id, Quantity: qty[id], UnitPrice: v.Price})
	}
	return items, nil
}

func orderTotal(items []*models.OrderItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Quantity * item.UnitPrice
	}
	return total
}

// decrement 扣减库存; 开启 checkout.enforce_stock 时库存不足返回 Conflict
func (s *OrderService) decrement(ctx context.Context, items []*models.OrderItem) error {
	enforce := s.Config != nil && s.Config.Checkout != nil && s.Config.Checkout.EnforceStock
	for _, item := range items {
		n, err := s.InventoryRepo.Decrement(ctx, item.VariantID, item.Quantity, enforce)
		if err != nil {
			return err
		}
		if enforce && n == 0 {
			return errorx.Conflicts("Insufficient stock").With("variantId", item.VariantID)
		}
	}
	return nil
}

// place 写入订单、明细 (一条 INSERT)、扣减库存并生成参考编号, 调用方负责事务
func (s *OrderService) place(ctx context.Context, userID uint64, status string, addressID *uint64, items []*models.OrderItem) (*models.Order, error) {
	o := &models.Order{
		UserID:            userID,
		Status:            status,
		TotalAmount:       orderTotal(items),
		ShippingAddressID: addressID,
	}
	if addressID != nil {
		snap, err := s.snapshot(ctx, userID, *addressID)
		if err != nil {
			return nil, err
		}
		o.ShippingAddress = snap
	}
	if err := s.OrderRepo.Create(ctx, o); err != nil {
		return nil, err
	}

	for _, item := range items {
		item.OrderID = o.ID
	}
	if err := s.OrderRepo.CreateItems(ctx, items); err != nil {
		return nil, err
	}
	if err := s.decrement(ctx, items); err != nil {
		return nil, err
	}

	number, err := s.RefGen.Next(EntityOrder, o.ID)
	if err != nil {
		return nil, err
	}
	if err := s.RefRepo.SaveOrder(ctx, o.ID, number); err != nil {
		return nil, err
	}
	return o, nil
}

// Create 管理员代客下单
func (s *OrderService) Create(ctx context.Context, req *types.CreateOrderRequest) (*types.OrderDetail, error) {
	status, err := normalizeOrderStatus(req.Status)
	if err != nil {
		return nil, err
	}
	var id uint64
	err = dao.Transaction(ctx, s.Db, func(ctx context.Context) error {
		if _, err := s.UsersRepo.FindById(ctx, req.UserID); err != nil {
			return dao.NotFound(err, "User not found")
		}
		items, err := s.itemsFromInput(ctx, req.Items)
		if err != nil {
			return err
		}
		o, err := s.place(ctx, req.UserID, status, req.ShippingAddressID, items)
		if err != nil {
			return err
		}
		id = o.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Update items 非 nil 时归还旧明细库存、写入新明细并重算总价
func (s *OrderService) Update(ctx context.Context, id uint64, req *types.UpdateOrderRequest) (*types.OrderDetail, error) {
	err := dao.Transaction(ctx, s.Db, func(ctx context.Context) error {
		o, err := s.OrderRepo.FindById(ctx, id)
		if err != nil {
			return dao.NotFound(err, "Order not found")
		}

		data := make(map[string]any)
		if req.Status != "" {
			status, err := normalizeOrderStatus(req.Status)
			if err != nil {
				return err
			}
			data["status"] = status
		}
		if req.ShippingAddressID != nil {
			snap, err := s.snapshot(ctx, o.UserID, *req.ShippingAddressID)
			if err != nil {
				return err
			}
			data["shipping_address_id"] = *req.ShippingAddressID
			data["shipping_address"] = snap
		}
		if req.Items != nil {
			items, err := s.itemsFromInput(ctx, *req.Items)
			if err != nil {
				return err
			}
			old, err := s.OrderRepo.RawItems(ctx, id)
			if err != nil {
				return err
			}
			for _, item := range old {
				if err := s.InventoryRepo.Restock(ctx, item.VariantID, item.Quantity); err != nil {
					return err
				}
			}
			if err := s.OrderRepo.DeleteItems(ctx, id); err != nil {
				return err
			}
			for _, item := range items {
				item.OrderID = id
			}
			if err := s.OrderRepo.CreateItems(ctx, items); err != nil {
				return err
			}
			if err := s.decrement(ctx, items); err != nil {
				return err
			}
			data["total_amount"] = orderTotal(items)
		}

		if len(data) == 0 {
			return nil
		}
		_, err = s.OrderRepo.UpdateById(ctx, id, data)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *OrderService) SetStatus(ctx context.Context, id uint64, status string) (*types.OrderDetail, error) {
	st, ok := models.NormalizeOrderStatus(status)
	if !ok {
		return nil, errorx.Invalid("Invalid order status").With("allowed", models.OrderStatuses)
	}
	if _, err := s.OrderRepo.FindById(ctx, id); err != nil {
		return nil, dao.NotFound(err, "Order not found")
	}
	if _, err := s.OrderRepo.UpdateById(ctx, id, map[string]any{"status": st}); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete 删除订单、明细与参考编号, 不归还库存
func (s *OrderService) Delete(ctx context.Context, id uint64) error {
	return dao.Transaction(ctx, s.Db, func(ctx context.Context) error {
		n, err := s.OrderRepo.Remove(ctx, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return errorx.Missing("Order not found")
		}
		return nil
	})
}
