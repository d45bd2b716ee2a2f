package handler

import (
	"Couture/middleware"
	"Couture/pkg/context"
	"Couture/pkg/response"
	"Couture/service"
	"Couture/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	Guard       *middleware.Guard
	AuthService service.IAuthService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/auth")
	g.POST("/login", context.Wrap(a.Login))
	g.POST("/setup", context.Wrap(a.Setup))
	g.GET("/user", a.Guard.Authenticate(), context.Wrap(a.Current))
}

func (a *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	resp, err := a.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// Setup 创建第一个管理员
func (a *Auth) Setup(c *gin.Context) error {
	var req types.CreateUserRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	resp, err := a.AuthService.Setup(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Created(c, resp)
	return nil
}

func (a *Auth) Current(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	user, err := a.AuthService.Current(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, user)
	return nil
}
