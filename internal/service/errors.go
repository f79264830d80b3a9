package service

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated        = errors.New("authentication required")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrEmailExists            = errors.New("email already registered")
	ErrForbidden              = errors.New("insufficient permissions")
	ErrNotFound               = errors.New("not found")
	ErrInvalidInput           = errors.New("invalid input")
	ErrSelfDelete             = errors.New("cannot delete your own account")
	ErrOwnRole                = errors.New("cannot change your own role")
	ErrNoOrganization         = errors.New("profile does not belong to an organization")
	ErrAlreadyInOrganization  = errors.New("profile already belongs to an organization")
	ErrProviderNotConfigured  = errors.New("no active api key for provider")
	ErrUpstream               = errors.New("upstream service error")
	ErrInvalidAIResponse      = errors.New("ai response could not be parsed")
	ErrWordPressNotConfigured = errors.New("wordpress oauth is not configured")
	ErrWordPressNotConnected  = errors.New("wordpress is not connected")
	ErrWordPressRefreshFailed = errors.New("wordpress token refresh failed")
	ErrWordPressInvalidState  = errors.New("invalid or expired oauth state")
	ErrWordPressAuthRejected  = errors.New("wordpress rejected the credentials")
)

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func upstream(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrUpstream, op, err)
}
