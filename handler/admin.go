package handler

import (
	"Couture/middleware"
	"Couture/models"
	"Couture/pkg/context"
	"Couture/pkg/response"
	"Couture/service"

	"github.com/gin-gonic/gin"
)

type Admin struct {
	Guard          *middleware.Guard
	SummaryService service.ISummaryService
}

func (h *Admin) RegisterRouter(r gin.IRouter) {
	g := r.Group("/admin", h.Guard.RequireRole(models.RoleAdmin))
	g.GET("/summary", context.Wrap(h.Summary))
}

// Summary 后台首页统计
func (h *Admin) Summary(c *gin.Context) error {
	summary, err := h.SummaryService.Summary(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, summary)
	return nil
}
