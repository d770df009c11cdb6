package domain

import "errors"

var (
	ErrNotFound               = errors.New("resource not found")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrForbidden              = errors.New("forbidden")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUserInactive           = errors.New("user is inactive")
	ErrDuplicateEmail         = errors.New("email already registered")
	ErrDuplicateInvoiceNumber = errors.New("invoice number already in use")
	ErrInvalidDate            = errors.New("date must be in YYYY-MM-DD format")
	ErrShareNotFound          = errors.New("share link not found or has been revoked")
)
