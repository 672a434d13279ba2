package storage

import "errors"

var (
	ErrNotFound       = errors.New("resource not found")
	ErrConflict       = errors.New("resource conflict (e.g., invalid reference)")
	ErrDuplicateEmail = errors.New("email already registered")
)
