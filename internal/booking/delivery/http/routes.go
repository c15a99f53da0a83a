package http

import (
	"github.com/gin-gonic/gin"

	"booking-backend/internal/middleware"
)

// RegisterRoutes maps the booking endpoint. The rate limiter is a no-op
// unless enabled in config.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/book", mw.RateLimit(), h.Book)
}
