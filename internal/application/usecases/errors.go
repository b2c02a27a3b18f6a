package usecases

import "errors"

var (
	// ErrValidation wraps request-level validation failures.
	ErrValidation = errors.New("validation failed")

	ErrProjectNotFound  = errors.New("charity project not found")
	ErrProjectNameTaken = errors.New("charity project with this name already exists")
	ErrProjectClosed    = errors.New("closed charity project cannot be edited")
	ErrProjectInvested  = errors.New("charity project with invested funds cannot be deleted")
	ErrFullAmountTooLow = errors.New("full amount cannot be lower than the invested amount")

	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)
