package response

import (
	"github.com/gin-gonic/gin"
)

// BizError 处理器层直接指定 HTTP 状态码的错误
type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, gin.H{
		"code":    httpStatus,
		"message": msg,
	})
}
