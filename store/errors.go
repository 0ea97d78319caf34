package store

import "errors"

var (
	// ErrInvalidID means the given id is not a well-formed document id; no
	// query was issued.
	ErrInvalidID = errors.New("invalid document id")
	// ErrNotFound means no document matched the given id.
	ErrNotFound = errors.New("document not found")
)
