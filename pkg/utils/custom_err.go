package utils

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrEmailTaken          = errors.New("email already exists")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUnauthenticated     = errors.New("authentication required")
	ErrForbidden           = errors.New("no permission on this resource")
	ErrEntryNotFound       = errors.New("journal entry not found")
	ErrItemNotFound        = errors.New("bucket list item not found")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrDatabaseError       = errors.New("database error")
)
