package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope wraps every successful non-list response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// Page writes a listing envelope as is; it already carries success and the
// pagination fields.
func Page(c *gin.Context, page any) {
	c.JSON(http.StatusOK, page)
}
