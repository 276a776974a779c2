package bookshelf

import "errors"

var (
	ErrMissingName      = errors.New("name is required")
	ErrInvalidPageRange = errors.New("readPage must not exceed pageCount")
	ErrNotFound         = errors.New("book not found")
	// ErrInsertFailure means a record could not be stored or read back after append.
	ErrInsertFailure = errors.New("book insert failed")
)
