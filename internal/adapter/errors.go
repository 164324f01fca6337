package adapter

import "errors"

var (
	ErrEmptyAddress   = errors.New("empty address")
	ErrAddressMissing = errors.New("address must include host and scheme")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
)
