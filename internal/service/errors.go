package service

import "errors"

// Domain errors surfaced to the HTTP layer, which maps them to status codes.
var (
	ErrNotFound           = errors.New("service: address not found")
	ErrDuplicateCode      = errors.New("service: code already exists")
	ErrMissingSector      = errors.New("service: sector is required")
	ErrNoFieldsToUpdate   = errors.New("service: no fields to update")
	ErrInvalidCoordinates = errors.New("service: coordinates out of range")
)
