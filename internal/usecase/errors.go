package usecase

import "errors"

var (
	ErrForbidden      = errors.New("forbidden")
	ErrGarageNotFound = errors.New("garage not found")
)
