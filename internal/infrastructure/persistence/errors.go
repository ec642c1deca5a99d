package persistence

import (
	"errors"
	"strings"

	"github.com/aqario/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// translateError maps storage errors onto domain errors. Unique violations
// are detected through gorm's TranslateError and, for dialectors that do not
// translate, by the driver message.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
		return shared.ErrAlreadyExists
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return shared.ErrInvalidReference
	}
	if isNumericOverflow(err) {
		return shared.NewDomainError(shared.ErrValidation.Code, "A numeric value does not fit its column")
	}
	return err
}

// isNumericOverflow matches PostgreSQL SQLSTATE 22003
func isNumericOverflow(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "numeric field overflow") || strings.Contains(msg, "SQLSTATE 22003")
}

func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
