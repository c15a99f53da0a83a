package http

import (
	"github.com/gin-gonic/gin"

	"booking-backend/internal/booking"
	"booking-backend/pkg/log"
)

// Handler is the public interface for the booking HTTP delivery layer.
type Handler interface {
	Book(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc booking.UseCase
}

// New creates a new HTTP handler for the booking domain.
func New(l log.Logger, uc booking.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
