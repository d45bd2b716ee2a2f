package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{Code: 0, Message: "success", Data: data})
}

// Fail 错误响应: {code, message, ...details}
func Fail(c *gin.Context, httpStatus int, msg string, details map[string]any) {
	body := gin.H{"code": httpStatus, "message": msg}
	for k, v := range details {
		if k == "code" || k == "message" {
			continue
		}
		body[k] = v
	}
	c.JSON(httpStatus, body)
}
