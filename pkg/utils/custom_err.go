package utils

import "errors"

var (
	ErrQuotaExceeded    = errors.New("monthly generation limit reached")
	ErrGenerationFailed = errors.New("generation failed")
	ErrValidationFailed = errors.New("validation failed")

	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidPlan        = errors.New("invalid plan")
	ErrInvalidProfile     = errors.New("invalid profile")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
)
