package context

import (
	"Couture/pkg/errorx"
	"Couture/pkg/log"
	"Couture/pkg/response"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := h(c)
		if err == nil {
			return
		}
		// 如果已经写过响应，直接返回
		if c.Writer.Written() {
			return
		}

		var be *response.BizError
		if errors.As(err, &be) {
			response.Fail(c, be.Code, be.Msg, nil)
			return
		}

		var xe *errorx.Error
		if errors.As(err, &xe) {
			status := StatusOf(xe.Kind)
			if status == http.StatusInternalServerError {
				logInternal(c, err)
				response.Fail(c, status, "Internal server error", nil)
				return
			}
			response.Fail(c, status, xe.Msg, xe.Details)
			return
		}

		logInternal(c, err)
		response.Fail(c, http.StatusInternalServerError, "Internal server error", nil)
	}
}

// StatusOf 错误类型到 HTTP 状态码的唯一映射
func StatusOf(kind errorx.Kind) int {
	switch kind {
	case errorx.Validation, errorx.ReferentialConflict:
		return http.StatusBadRequest
	case errorx.NotFound:
		return http.StatusNotFound
	case errorx.Conflict:
		return http.StatusConflict
	case errorx.Unauthorized:
		return http.StatusUnauthorized
	case errorx.Forbidden:
		return http.StatusForbidden
	case errorx.TooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func logInternal(c *gin.Context, err error) {
	log.L.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
}

func GetUserID(c *gin.Context) (uint64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id not found in context")
	}

	uid, ok := v.(uint64)
	if !ok {
		return 0, errors.New("user_id has unexpected type")
	}

	return uid, nil
}

// ParamID 解析路径中的数字 ID
func ParamID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, response.NewError(http.StatusBadRequest, "Invalid "+name)
	}
	return id, nil
}

// QueryID 解析可选的数字查询参数，缺省返回 0
func QueryID(c *gin.Context, name string) (uint64, error) {
	v := c.Query(name)
	if v == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, response.NewError(http.StatusBadRequest, "Invalid "+name)
	}
	return id, nil
}
