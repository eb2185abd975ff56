package entity

import "errors"

var (
	// Gateway errors
	ErrGatewayNotConfigured = errors.New("push gateway is not configured")
	ErrTokenNotRegistered   = errors.New("registration token not registered")
	ErrTokenInvalid         = errors.New("invalid registration token")

	// Directory errors
	ErrDirectoryQuery   = errors.New("failed to query user directory")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrNoDeliveryToken  = errors.New("profile has no delivery token")
	ErrConcurrentUpdate = errors.New("concurrent update detected")

	// General errors
	ErrUnauthorized = errors.New("unauthorized access")
	ErrInvalidInput = errors.New("invalid input")
)

// ClassifyFailure maps a send error to a report reason.
func ClassifyFailure(err error) string {
	switch {
	case errors.Is(err, ErrTokenNotRegistered):
		return ReasonTokenNotRegistered
	case errors.Is(err, ErrTokenInvalid):
		return ReasonTokenInvalid
	default:
		return ReasonOtherTransient
	}
}
