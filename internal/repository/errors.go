// Package repository contains data access logic separated from HTTP
// handlers.  The sentinel errors defined here let handlers distinguish
// failure scenarios without inspecting driver error strings themselves:
// ErrNotFound maps to 404 and ErrDuplicate to 409.
package repository

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a lookup by key matches no row.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert or update violates a UNIQUE
// constraint (duplicate accNo or email).
var ErrDuplicate = errors.New("duplicate")

// isUniqueViolation detects SQLite unique-constraint failures from the
// driver error text.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
