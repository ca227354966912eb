package audience

import "errors"

// ErrUnauthorized signals a directory request with no caller identity.
var ErrUnauthorized = errors.New("unauthorized")

// ErrUserNotFound signals that the viewer or the target does not exist.
var ErrUserNotFound = errors.New("user not found")
