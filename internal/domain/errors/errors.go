package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ErrInvalidEmail marks a malformed email address; it matches ErrInvalidInput.
var ErrInvalidEmail = fmt.Errorf("%w: malformed email", ErrInvalidInput)
