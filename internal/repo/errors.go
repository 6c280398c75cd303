package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// ErrDuplicate indicates that an insert violated a unique index.
var ErrDuplicate = errors.New("duplicate")

// IsDuplicate reports whether err signals a unique-index violation.
// glebarez/sqlite often returns plain-text errors for UNIQUE violations,
// and Postgres reports them as SQLSTATE 23505 unless TranslateError is on.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrDuplicate) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "unique constraint") ||
		strings.Contains(low, "constraint failed: unique") ||
		strings.Contains(low, "duplicate key") ||
		strings.Contains(low, "sqlstate 23505")
}

// dup converts a unique violation into ErrDuplicate and passes other errors through.
func dup(err error) error {
	if IsDuplicate(err) {
		return ErrDuplicate
	}
	return err
}
