package handler

import (
	"Couture/middleware"
	"Couture/pkg/context"
	"Couture/pkg/response"
	"Couture/service"
	"Couture/types"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Cart struct {
	Guard       *middleware.Guard
	CartService service.ICartService
}

func (h *Cart) RegisterRouter(r gin.IRouter) {
	g := r.Group("/cart", h.Guard.Authenticate())
	g.GET("", context.Wrap(h.Get))
	g.POST("/items", context.Wrap(h.AddItem))
	g.PUT("/items/:variantId", context.Wrap(h.SetItem))
	g.DELETE("/items/:variantId", context.Wrap(h.RemoveItem))
	g.POST("/checkout", context.Wrap(h.Checkout))
}

func (h *Cart) Get(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	cart, err := h.CartService.GetCart(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, cart)
	return nil
}

// AddItem 数量累加, 缺省为 1
func (h *Cart) AddItem(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.AddCartItemRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	qty := int64(1)
	if req.Quantity != nil {
		qty = *req.Quantity
	}
	cart, err := h.CartService.AddItem(c.Request.Context(), uid, req.VariantID, qty)
	if err != nil {
		return err
	}
	response.Success(c, cart)
	return nil
}

func (h *Cart) SetItem(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	variantID, err := context.ParamID(c, "variantId")
	if err != nil {
		return err
	}
	var req types.SetCartItemRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	cart, err := h.CartService.SetItemQuantity(c.Request.Context(), uid, variantID, *req.Quantity)
	if err != nil {
		return err
	}
	response.Success(c, cart)
	return nil
}

func (h *Cart) RemoveItem(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	variantID, err := context.ParamID(c, "variantId")
	if err != nil {
		return err
	}
	cart, err := h.CartService.RemoveItem(c.Request.Context(), uid, variantID)
	if err != nil {
		return err
	}
	response.Success(c, cart)
	return nil
}

// Checkout 购物车转订单; 请求体可省略
func (h *Cart) Checkout(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.CheckoutRequest
	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			return response.NewError(http.StatusBadRequest, "Invalid request: "+err.Error())
		}
	}
	order, err := h.CartService.Checkout(c.Request.Context(), uid, req.AddressID)
	if err != nil {
		return err
	}
	response.Created(c, order)
	return nil
}
