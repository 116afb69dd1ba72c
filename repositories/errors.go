package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrMissingAttribute is returned when an asset number is requested without
	// the department/category pair that scopes the counter.
	ErrMissingAttribute = errors.New("department and category are required to generate asset number")

	// ErrNumberExhausted is returned when the bounded retry loop could not find
	// a free asset number.
	ErrNumberExhausted = errors.New("could not generate a unique asset number after multiple attempts")

	// ErrDuplicateRequest is returned when the user already has a pending
	// request for the asset.
	ErrDuplicateRequest = errors.New("you already have a pending request for this asset")

	// ErrRequestResolved is returned when deciding a request that is no longer
	// pending.
	ErrRequestResolved = errors.New("request has already been approved or rejected")
)

// isUniqueViolation reports whether err is a uniqueness-constraint failure.
// GORM translates these to ErrDuplicatedKey for most drivers; the message
// checks cover drivers opened without error translation.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "duplicate key value")
}
