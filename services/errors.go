package services

import (
	"errors"
	"strings"
)

// Shallow error taxonomy: handlers map these onto flash messages and
// redirects, everything else surfaces as a generic server error.
var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicate          = errors.New("duplicate entry")
	ErrMissingField       = errors.New("missing required field")
	ErrSelfDelete         = errors.New("cannot delete the logged-in admin")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// isDuplicateErr matches unique-key violations across the supported drivers
// by message, since neither exposes a portable error code through gorm.
func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
