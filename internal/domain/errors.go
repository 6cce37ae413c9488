package domain

import "errors"

var (
	// ErrInvalidUserID signals a malformed user identifier.
	ErrInvalidUserID = errors.New("invalid user id")
	// ErrUserNotFound signals a missing user record.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidQuery signals a query parameter outside its allowed set.
	ErrInvalidQuery = errors.New("invalid query parameter")
	// ErrQueryFailed signals a storage or infrastructure failure during a query.
	// The cause is logged server-side and never exposed to callers.
	ErrQueryFailed = errors.New("query failed")
)
