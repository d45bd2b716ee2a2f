package handler

import (
	"Couture/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return response.NewError(http.StatusBadRequest, "Invalid request: "+err.Error())
	}
	return nil
}

func bindQuery(c *gin.Context, req any) error {
	if err := c.ShouldBindQuery(req); err != nil {
		return response.NewError(http.StatusBadRequest, "Invalid query: "+err.Error())
	}
	return nil
}
