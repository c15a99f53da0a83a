package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "booking-backend/pkg/errors"
)

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error sends the status and public message of an HTTPError. Any other error
// is treated as internal and its text is never exposed.
func Error(c *gin.Context, err error) {
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
		c.JSON(httpErr.Code, ErrorResp{Error: httpErr.Message})
		return
	}
	InternalError(c)
}

// InternalError sends 500 with the generic message.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorResp{Error: DefaultErrorMessage})
}

// Abort writes the error body and stops the handler chain. Used by middleware.
func Abort(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, ErrorResp{Error: message})
}
