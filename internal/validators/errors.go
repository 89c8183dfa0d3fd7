package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID       = errors.New("invalid user ID")
	ErrInvalidReceiverID   = errors.New("invalid receiver ID")
	ErrInvalidCounterparty = errors.New("invalid counterparty ID")
	ErrSelfMessage         = errors.New("sender and receiver must differ")
	ErrEmptyContent        = errors.New("message content cannot be empty")
	ErrInvalidListingID    = errors.New("invalid listing ID")

	ErrEmptyLogin       = errors.New("login cannot be empty")
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrPartialKeyBundle = errors.New("public key and protected private key must be provided together")
)
