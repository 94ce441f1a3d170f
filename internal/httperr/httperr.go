package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tallermotors/autoservice-api/internal/httpresp"
)

func Write(c *gin.Context, status int, message string, errs []string) {
	c.JSON(status, httpresp.Envelope{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message, nil)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message, nil)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message, nil)
}

// Validation reports every violated rule collected by the validators.
func Validation(c *gin.Context, errs []string) {
	Write(c, http.StatusBadRequest, "validation failed", errs)
}

// From maps an error coming out of a use case to the right status code:
// business codes to 400/404, everything else to 500 with the raw error text.
func From(c *gin.Context, err error) {
	be, ok := AsBusiness(err)
	if !ok {
		Internal(c, err.Error())
		return
	}

	switch be.Code {
	case CodeClientNotFound, CodeReservationNotFound:
		NotFound(c, be.Message)
	default:
		BadRequest(c, be.Message)
	}
}
