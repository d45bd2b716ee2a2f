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

type Category struct {
	Guard           *middleware.Guard
	CategoryService service.ICategoryService
}

func (h *Category) RegisterRouter(r gin.IRouter) {
	admin := h.Guard.RequireRole(models.RoleAdmin)
	g := r.Group("/categories")
	g.GET("", context.Wrap(h.List))
	g.GET("/:id", context.Wrap(h.Get))
	g.GET("/:id/products", context.Wrap(h.Products))
	g.POST("", admin, context.Wrap(h.Create))
	g.PUT("/:id", admin, context.Wrap(h.Update))
	g.PATCH("/:id/status", admin, context.Wrap(h.SetStatus))
	g.DELETE("/:id", admin, context.Wrap(h.Delete))
}

func (h *Category) List(c *gin.Context) error {
	list, err := h.CategoryService.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		return err
	}
	response.Success(c, list)
	return nil
}

func (h *Category) Get(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	cat, err := h.CategoryService.Get(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, cat)
	return nil
}

func (h *Category) Products(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	result, err := h.CategoryService.Products(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (h *Category) Create(c *gin.Context) error {
	var req types.CategoryRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	cat, err := h.CategoryService.Create(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Created(c, cat)
	return nil
}

func (h *Category) Update(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req types.CategoryRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	cat, err := h.CategoryService.Update(c.Request.Context(), id, &req)
	if err != nil {
		return err
	}
	response.Success(c, cat)
	return nil
}

func (h *Category) SetStatus(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req types.CategoryStatusRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	cat, err := h.CategoryService.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		return err
	}
	response.Success(c, cat)
	return nil
}

// Delete 有关联商品时返回 400 与 productCount
func (h *Category) Delete(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	if err := h.CategoryService.Delete(c.Request.Context(), id); err != nil {
		return err
	}
	response.Success(c, gin.H{"id": id})
	return nil
}
