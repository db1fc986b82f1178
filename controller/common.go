package controller

import (
	"net/http"

	"github.com/dafahentra/stocks-dashboard/model"

	"github.com/gin-gonic/gin"
)

func handleSuccess(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, model.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func handleError(c *gin.Context, status int, message string, err error) {
	resp := model.Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(status, resp)
}
