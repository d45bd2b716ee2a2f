package handler

import (
	"Couture/middleware"
	"Couture/models"
	"Couture/pkg/context"
	"Couture/pkg/response"
	"Couture/service"
	"Couture/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Inventory struct {
	Guard            *middleware.Guard
	InventoryService service.IInventoryService
}

func (h *Inventory) RegisterRouter(r gin.IRouter) {
	g := r.Group("/inventory", h.Guard.RequireRole(models.RoleAdmin))
	g.GET("", context.Wrap(h.List))
	g.GET("/low-stock", context.Wrap(h.LowStock))
	g.GET("/:id", context.Wrap(h.Get))
	g.PUT("/:id", context.Wrap(h.Set))
	g.PATCH("/:id/adjust", context.Wrap(h.Adjust))
}

func (h *Inventory) List(c *gin.Context) error {
	rows, err := h.InventoryService.List(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, rows)
	return nil
}

func (h *Inventory) LowStock(c *gin.Context) error {
	rows, err := h.InventoryService.LowStock(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, rows)
	return nil
}

func (h *Inventory) Get(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	row, err := h.InventoryService.Get(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, row)
	return nil
}

// Set 覆盖库存数量, 不接受负数
func (h *Inventory) Set(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req types.SetInventoryRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if *req.Quantity < 0 {
		return response.NewError(http.StatusBadRequest, "Quantity must not be negative")
	}
	row, err := h.InventoryService.Set(c.Request.Context(), id, *req.Quantity, req.LowStockThreshold)
	if err != nil {
		return err
	}
	response.Success(c, row)
	return nil
}

// Adjust 原子增减, 不做边界检查
func (h *Inventory) Adjust(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req types.AdjustInventoryRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	row, err := h.InventoryService.Adjust(c.Request.Context(), id, *req.Delta)
	if err != nil {
		return err
	}
	response.Success(c, row)
	return nil
}
