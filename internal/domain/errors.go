// Package domain holds the errors shared by every repository contract.
package domain

import "errors"

var (
	// ErrNotFound is returned by repositories when the record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("duplicate record")
)
