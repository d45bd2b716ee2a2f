package handler

import (
	"Couture/middleware"
	"Couture/models"
	"Couture/pkg/context"
	"Couture/pkg/response"
	"Couture/service"
	"Couture/types"

	"github.com/gin-gonic/gin"
)

type Order struct {
	Guard        *middleware.Guard
	OrderService service.IOrderService
}

func (h *Order) RegisterRouter(r gin.IRouter) {
	g := r.Group("/orders", h.Guard.RequireRole(models.RoleAdmin))
	g.GET("", context.Wrap(h.List))
	g.GET("/count", context.Wrap(h.Count))
	g.GET("/:id", context.Wrap(h.Get))
	g.POST("", context.Wrap(h.Create))
	g.PUT("/:id", context.Wrap(h.Update))
	g.PATCH("/:id/status", context.Wrap(h.SetStatus))
	g.DELETE("/:id", context.Wrap(h.Delete))

	r.GET("/users/:id/orders", h.Guard.Authenticate(), context.Wrap(h.UserOrders))
}

func (h *Order) List(c *gin.Context) error {
	var filter types.OrderFilter
	if err := bindQuery(c, &filter); err != nil {
		return err
	}
	list, err := h.OrderService.List(c.Request.Context(), &filter)
	if err != nil {
		return err
	}
	response.Success(c, list)
	return nil
}

func (h *Order) Count(c *gin.Context) error {
	count, err := h.OrderService.Count(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, count)
	return nil
}

func (h *Order) Get(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	o, err := h.OrderService.Get(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, o)
	return nil
}

func (h *Order) Create(c *gin.Context) error {
	var req types.CreateOrderRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	o, err := h.OrderService.Create(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Created(c, o)
	return nil
}

func (h *Order) Update(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req types.UpdateOrderRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	o, err := h.OrderService.Update(c.Request.Context(), id, &req)
	if err != nil {
		return err
	}
	response.Success(c, o)
	return nil
}

func (h *Order) SetStatus(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req types.OrderStatusRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	o, err := h.OrderService.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		return err
	}
	response.Success(c, o)
	return nil
}

func (h *Order) Delete(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	if err := h.OrderService.Delete(c.Request.Context(), id); err != nil {
		return err
	}
	response.Success(c, gin.H{"id": id})
	return nil
}

// UserOrders 用户订单及明细, 本人或管理员
func (h *Order) UserOrders(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Guard.SelfOrAdmin(c, id); err != nil {
		return err
	}
	orders, err := h.OrderService.ListByUser(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, orders)
	return nil
}
