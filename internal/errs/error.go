package errs

import (
	"errors"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("already exists")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidCreds      = errors.New("invalid credentials")
	ErrOwnBook           = errors.New("cannot borrow own book")
	ErrNotBorrowable     = errors.New("book is not borrowable")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotMember         = errors.New("not a community member")
	ErrInviteResolved    = errors.New("invitation already resolved")
)
