package handler

import (
	"Couture/middleware"
	"Couture/models"
	"Couture/pkg/context"
	"Couture/pkg/errorx"
	"Couture/pkg/response"
	"Couture/service"
	"Couture/types"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const purgeSuggestion = "Set the product status to inactive instead of deleting it"

type Product struct {
	Guard          *middleware.Guard
	ProductService service.IProductService
	ImageService   service.IImageService
}

func (h *Product) RegisterRouter(r gin.IRouter) {
	admin := h.Guard.RequireRole(models.RoleAdmin)
	g := r.Group("/products")
	g.GET("", context.Wrap(h.List))
	g.GET("/:id", context.Wrap(h.Get))
	g.GET("/:id/variants", context.Wrap(h.Variants))
	g.GET("/:id/categories", context.Wrap(h.Categories))
	g.POST("", admin, context.Wrap(h.Create))
	g.PUT("/:id", admin, context.Wrap(h.Update))
	g.DELETE("/:id", admin, context.Wrap(h.Delete))
	g.POST("/:id/images", admin, context.Wrap(h.UploadImage))
	g.DELETE("/:id/images/:imageId", admin, context.Wrap(h.DeleteImage))
}

func (h *Product) List(c *gin.Context) error {
	var filter types.ProductFilter
	if err := bindQuery(c, &filter); err != nil {
		return err
	}
	list, err := h.ProductService.List(c.Request.Context(), &filter)
	if err != nil {
		return err
	}
	response.Success(c, list)
	return nil
}

func (h *Product) Get(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.ProductService.Get(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, p)
	return nil
}

func (h *Product) Variants(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.ProductService.GetWithVariants(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, p)
	return nil
}

func (h *Product) Categories(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.ProductService.GetWithCategories(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, p)
	return nil
}

func (h *Product) Create(c *gin.Context) error {
	var req types.CreateProductRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	p, err := h.ProductService.Create(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Created(c, p)
	return nil
}

func (h *Product) Update(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req types.UpdateProductRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	p, err := h.ProductService.Update(c.Request.Context(), id, &req)
	if err != nil {
		return err
	}
	response.Success(c, p)
	return nil
}

// Delete 商品已被订单引用时返回 400, 并建议改为下架
func (h *Product) Delete(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	if err := h.ProductService.Purge(c.Request.Context(), id); err != nil {
		var xe *errorx.Error
		if errors.As(err, &xe) && xe.Kind == errorx.ReferentialConflict {
			xe.With("suggestion", purgeSuggestion)
		}
		return err
	}
	response.Success(c, gin.H{"id": id})
	return nil
}

func (h *Product) UploadImage(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	header, err := c.FormFile("image")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "Missing image")
	}
	resp, err := h.ImageService.Upload(c.Request.Context(), id, header)
	if err != nil {
		return err
	}
	response.Created(c, resp)
	return nil
}

func (h *Product) DeleteImage(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	imageID, err := strconv.ParseInt(c.Param("imageId"), 10, 64)
	if err != nil || imageID <= 0 {
		return response.NewError(http.StatusBadRequest, "Invalid imageId")
	}
	if err := h.ImageService.Delete(c.Request.Context(), id, imageID); err != nil {
		return err
	}
	response.Success(c, gin.H{"imageId": strconv.FormatInt(imageID, 10)})
	return nil
}
