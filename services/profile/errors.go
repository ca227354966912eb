package profile

import "errors"

// ErrUserNotFound signals that the referenced user does not exist.
var ErrUserNotFound = errors.New("user not found")

// ErrUnauthorized signals a request with no verifiable caller identity.
var ErrUnauthorized = errors.New("unauthorized")

// ValidationError reports the first profile field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
