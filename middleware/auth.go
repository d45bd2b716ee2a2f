package middleware

import (
	"Couture/config"
	"Couture/models"
	ctxutil "Couture/pkg/context"
	"Couture/pkg/jwt"
	"Couture/pkg/log"
	"Couture/pkg/response"
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HeaderNewToken 令牌即将过期时, 响应头携带新令牌
const HeaderNewToken = "X-New-Access-Token"

const rotateBuffer = 5 * time.Minute

// RoleChecker 按 (id, role) 回查用户, 不信任令牌中的角色
type RoleChecker interface {
	HasRole(ctx context.Context, id uint64, role string) (bool, error)
}

type Guard struct {
	Config *config.Config
	Users  RoleChecker
}

// Authenticate 校验令牌并把用户 id / 角色写入 gin.Context
func (g *Guard) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if g.authenticate(c) {
			c.Next()
		}
	}
}

// RequireRole 认证后每次请求都回查数据库确认角色
func (g *Guard) RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !g.authenticate(c) {
			return
		}
		uid := c.GetUint64(ctxutil.CtxUserID)
		ok, err := g.Users.HasRole(c.Request.Context(), uid, role)
		if err != nil {
			log.L.Error("role check", zap.Uint64("user_id", uid), zap.Error(err))
			response.Abort(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		if !ok {
			response.Abort(c, http.StatusForbidden, "Access denied")
			return
		}
		c.Next()
	}
}

func (g *Guard) authenticate(c *gin.Context) bool {
	token := strings.TrimSpace(c.GetHeader(g.Config.Jwt.Header))
	if token == "" {
		response.Abort(c, http.StatusUnauthorized, "No token, authorization denied")
		return false
	}

	secret := []byte(g.Config.Jwt.Secret)
	claims, err := jwt.ParseToken(secret, jwt.TypeAccess, token)
	if err != nil {
		response.Abort(c, http.StatusUnauthorized, "Token is not valid")
		return false
	}
	if jwt.ShouldRotate(claims, rotateBuffer) {
		fresh, err := jwt.GenerateToken(secret, claims.UserID, claims.Role, jwt.TypeAccess, g.Config.Jwt.Expire)
		if err == nil {
			c.Header(HeaderNewToken, fresh)
		}
	}

	c.Set(ctxutil.CtxUserID, claims.UserID)
	c.Set(ctxutil.CtxRole, claims.Role)
	return true
}

// IsAdmin 当前用户是否为管理员, 同样回查数据库
func (g *Guard) IsAdmin(c *gin.Context) (bool, error) {
	uid, err := ctxutil.GetUserID(c)
	if err != nil {
		return false, err
	}
	return g.Users.HasRole(c.Request.Context(), uid, models.RoleAdmin)
}

// SelfOrAdmin 只允许本人或管理员访问 target 用户的资源
func (g *Guard) SelfOrAdmin(c *gin.Context, target uint64) error {
	uid, err := ctxutil.GetUserID(c)
	if err != nil {
		return err
	}
	if uid == target {
		return nil
	}
	admin, err := g.IsAdmin(c)
	if err != nil {
		return err
	}
	if !admin {
		return response.NewError(http.StatusForbidden, "Access denied")
	}
	return nil
}
