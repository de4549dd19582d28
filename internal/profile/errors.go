package profile

import "errors"

var (
	// ErrDuplicateUsername is returned by Register when the username is taken.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrInvalidCredentials is returned by Authenticate when the username is
	// unknown or the password does not match. The two cases are deliberately
	// indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrEmptyInput is returned when a required field is blank.
	ErrEmptyInput = errors.New("username and password are required")
)
