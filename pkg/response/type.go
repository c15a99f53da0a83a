package response

import pkgErrors "booking-backend/pkg/errors"

// ErrorResp is the JSON body written for every failed request.
type ErrorResp struct {
	Error string `json:"error"`
}

// DefaultErrorMessage is returned for errors that carry no public message.
const DefaultErrorMessage = pkgErrors.InternalServerErrorMessage
