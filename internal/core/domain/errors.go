package domain

import "errors"

// Domain errors represent failures the user can act on.
// Infrastructure errors (missing files, permissions) are wrapped, not replaced.
var (
	// ErrInsufficientArguments indicates the query or file path token is missing.
	ErrInsufficientArguments = errors.New("not enough arguments")

	// ErrInvalidText indicates file content is not valid UTF-8 text.
	ErrInvalidText = errors.New("stream did not contain valid UTF-8")

	// ErrInvalidSetting indicates a value in the settings file cannot be used.
	ErrInvalidSetting = errors.New("invalid setting")
)
