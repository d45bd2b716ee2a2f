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

type Variant struct {
	Guard            *middleware.Guard
	VariantService   service.IVariantService
	AttributeService service.IAttributeService
}

func (h *Variant) RegisterRouter(r gin.IRouter) {
	admin := h.Guard.RequireRole(models.RoleAdmin)
	g := r.Group("/variants")
	g.GET("", context.Wrap(h.List))
	g.GET("/:id", context.Wrap(h.Get))
	g.POST("", admin, context.Wrap(h.Create))
	g.PUT("/:id", admin, context.Wrap(h.Update))
	g.DELETE("/:id", admin, context.Wrap(h.Delete))

	attrs := r.Group("/attributes")
	attrs.GET("", context.Wrap(h.Attributes))
	attrs.POST("", admin, context.Wrap(h.CreateAttribute))
}

// List 可按 productId 过滤
func (h *Variant) List(c *gin.Context) error {
	productID, err := context.QueryID(c, "productId")
	if err != nil {
		return err
	}
	list, err := h.VariantService.List(c.Request.Context(), productID)
	if err != nil {
		return err
	}
	response.Success(c, list)
	return nil
}

func (h *Variant) Get(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	v, err := h.VariantService.Get(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, v)
	return nil
}

func (h *Variant) Create(c *gin.Context) error {
	var req types.CreateVariantRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	v, err := h.VariantService.Create(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Created(c, v)
	return nil
}

func (h *Variant) Update(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req types.UpdateVariantRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	v, err := h.VariantService.Update(c.Request.Context(), id, &req)
	if err != nil {
		return err
	}
	response.Success(c, v)
	return nil
}

func (h *Variant) Delete(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	if err := h.VariantService.Delete(c.Request.Context(), id); err != nil {
		return err
	}
	response.Success(c, gin.H{"id": id})
	return nil
}

func (h *Variant) Attributes(c *gin.Context) error {
	list, err := h.AttributeService.List(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, list)
	return nil
}

func (h *Variant) CreateAttribute(c *gin.Context) error {
	var req types.AttributeRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	attr, err := h.AttributeService.Create(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Created(c, attr)
	return nil
}
