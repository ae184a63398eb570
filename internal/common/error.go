// Package common defines shared constants and sentinel errors used across
// the media vault components. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Directory errors.
	ErrDuplicateUsername = errors.New("username already exists")
	ErrUserNotFound      = errors.New("username not found")
	ErrWrongPassword     = errors.New("current password is incorrect")

	// Session errors.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrEmptyCredentials   = errors.New("username and password are required")
	ErrNoUser             = errors.New("no user logged in")

	// Password-reset validation errors.
	ErrFieldsRequired   = errors.New("all fields are required")
	ErrPasswordMismatch = errors.New("new passwords do not match")
	ErrPasswordTooShort = errors.New("new password is too short")

	// Ingestion errors.
	ErrTooLarge    = errors.New("file is too large")
	ErrWrongType   = errors.New("file type does not match the upload channel")
	ErrReadFailure = errors.New("could not read file")

	// Vault errors.
	ErrIndexOutOfRange = errors.New("no media record at this index")
)
