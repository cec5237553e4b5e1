package apperrors

import "errors"

var (
	ErrInvalidWeights = errors.New("invalid weight configuration")
	ErrInvalidSchema  = errors.New("invalid schema entry")
)
