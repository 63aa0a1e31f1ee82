package store

import "errors"

var (
	ErrNotFound  = errors.New("record not found")
	ErrForbidden = errors.New("requester does not own the record")
	ErrConflict  = errors.New("record with a unique field already exists")
)
