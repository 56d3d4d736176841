package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Abort is Write for middleware: it stops the handler chain.
func Abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

// FromError writes err using the central business-code mapping. It reports
// whether the error was an unexpected one, so callers can log it.
func FromError(c *gin.Context, err error) (unexpected bool) {
	if be, ok := AsBusiness(err); ok {
		Write(c, StatusFor(be.Code), be.Code, be.Error())
		return false
	}
	Internal(c, "internal_error", "Something went wrong, please try again")
	return true
}
