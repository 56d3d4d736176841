package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/delivery-marketplace/internal/httperr"
	"github.com/BruksfildServices01/delivery-marketplace/internal/logging"
	"github.com/BruksfildServices01/delivery-marketplace/internal/middleware"
)

// fail writes err through the central mapping and logs unexpected errors.
func fail(c *gin.Context, log logging.Logger, err error) {
	if httperr.FromError(c, err) {
		_ = c.Error(err)
		log.Error(c.Request.Context(), "request failed",
			"method", c.Request.Method,
			"route", c.FullPath(),
			"err", err,
		)
	}
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid id")
		return 0, false
	}
	return uint(id), true
}

func currentUser(c *gin.Context) (uint, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "missing_token", "Not authenticated")
		return 0, false
	}
	return id, true
}

func badRequest(c *gin.Context, err error) {
	httperr.Write(c, http.StatusBadRequest, "invalid_request", err.Error())
}
