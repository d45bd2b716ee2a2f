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

type User struct {
	Guard       *middleware.Guard
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	auth := u.Guard.Authenticate()
	g := r.Group("/users")
	g.GET("", u.Guard.RequireRole(models.RoleAdmin), context.Wrap(u.List))
	g.POST("", context.Wrap(u.Register))
	g.GET("/:id", auth, context.Wrap(u.Get))
	g.PUT("/:id", auth, context.Wrap(u.Update))
	g.GET("/:id/addresses", auth, context.Wrap(u.Addresses))
	g.POST("/:id/addresses", auth, context.Wrap(u.AddAddress))
}

func (u *User) List(c *gin.Context) error {
	var filter types.UserFilter
	if err := bindQuery(c, &filter); err != nil {
		return err
	}
	list, err := u.UserService.List(c.Request.Context(), &filter)
	if err != nil {
		return err
	}
	response.Success(c, list)
	return nil
}

// Register 公开注册, 角色固定为 customer
func (u *User) Register(c *gin.Context) error {
	var req types.CreateUserRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	user, err := u.UserService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Created(c, user)
	return nil
}

// target 解析路径中的用户 id, 并要求本人或管理员
func (u *User) target(c *gin.Context) (uint64, error) {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return 0, err
	}
	return id, u.Guard.SelfOrAdmin(c, id)
}

func (u *User) Get(c *gin.Context) error {
	id, err := u.target(c)
	if err != nil {
		return err
	}
	user, err := u.UserService.Get(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, user)
	return nil
}

func (u *User) Update(c *gin.Context) error {
	id, err := u.target(c)
	if err != nil {
		return err
	}
	var req types.UpdateUserRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	admin, err := u.Guard.IsAdmin(c)
	if err != nil {
		return err
	}
	user, err := u.UserService.Update(c.Request.Context(), id, &req, admin)
	if err != nil {
		return err
	}
	response.Success(c, user)
	return nil
}

func (u *User) Addresses(c *gin.Context) error {
	id, err := u.target(c)
	if err != nil {
		return err
	}
	list, err := u.UserService.Addresses(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, list)
	return nil
}

func (u *User) AddAddress(c *gin.Context) error {
	id, err := u.target(c)
	if err != nil {
		return err
	}
	var req types.AddressRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	addr, err := u.UserService.AddAddress(c.Request.Context(), id, &req)
	if err != nil {
		return err
	}
	response.Created(c, addr)
	return nil
}
