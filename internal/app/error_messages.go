// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UT Marketplace Authors

// Package app contains shared application-layer constants used across the
// marketplace server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API,
// and lets the client error mapper translate response bodies back into
// service-level sentinel errors.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires a user ID (e.g.
	// extracted from the JWT claim) but none is present in the request
	// context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgAccessDenied is returned when the authenticated user attempts to
	// access a resource that belongs to a different user, such as another
	// account's stored key record.
	MsgAccessDenied = "access denied"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing a session token.
	MsgLoginFailed = "login failed"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgKeyRecordNotFound is returned when a key lookup targets a user that
	// has no stored key material. Accounts created before encrypted
	// messaging existed are the expected source of this state.
	MsgKeyRecordNotFound = "key record not found"

	// MsgKeyRecordAlreadyExists is returned when key material is submitted
	// for an account that already has a record. Key issuance is a one-time
	// event; the existing record is never overwritten.
	MsgKeyRecordAlreadyExists = "key record already exists"

	// MsgUserNotFound is returned when an operation references a user id
	// that does not exist, such as sending a message to a deleted account.
	MsgUserNotFound = "user not found"

	// MsgIntegrityCheckFailed is returned when the content hash attached to
	// a message upload does not match the hash the server recomputes.
	MsgIntegrityCheckFailed = "integrity check failed"
)
