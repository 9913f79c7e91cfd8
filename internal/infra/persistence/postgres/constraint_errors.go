package postgres

import (
	"strings"

	domainerrors "refill/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// translateUniqueViolation maps a PostgreSQL unique-constraint violation to
// the matching domain conflict error, or returns nil for unrelated errors.
// The storage-level constraints back the pre-insert existence checks, which
// are racy on their own.
func translateUniqueViolation(err error) error {
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())
	unique := errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "23505") // PostgreSQL unique_violation error code

	if !unique {
		return nil
	}

	switch {
	case strings.Contains(msg, "users_email_key"):
		return domainerrors.ErrEmailTaken.WrapMessage("email unique constraint violated")
	case strings.Contains(msg, "users_username_key"):
		return domainerrors.ErrUsernameTaken.WrapMessage("username unique constraint violated")
	default:
		return domainerrors.ErrEmailTaken.WrapMessage("unique constraint violated")
	}
}
