package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tallermotors/autoservice-api/internal/pagination"
)

// Envelope is the uniform JSON body every endpoint returns.
type Envelope struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message,omitempty"`
	Data       any                 `json:"data,omitempty"`
	Errors     []string            `json:"errors,omitempty"`
	Pagination *pagination.Summary `json:"pagination,omitempty"`
}

func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func List(c *gin.Context, data any, summary pagination.Summary) {
	c.JSON(http.StatusOK, Envelope{
		Success:    true,
		Data:       data,
		Pagination: &summary,
	})
}
