package booking

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the booking package.
var (
	ErrInvalidInput = errors.New("invalid input")

	ErrInvalidStartTime = fmt.Errorf("%w: start time", ErrInvalidInput)
	ErrInvalidCustomer  = fmt.Errorf("%w: customer details", ErrInvalidInput)
	ErrSlotConflict     = errors.New("slot is no longer available")
	ErrServer           = errors.New("server error creating booking")
)
