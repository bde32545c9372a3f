package implementation

import (
	"errors"
	"strings"

	"notekeeper-be/internal/apperror"

	"gorm.io/gorm"
)

// classifyError maps a driver error onto the data-access taxonomy. Unique
// violations become conflicts, everything else a storage failure. Record
// lookups handle gorm.ErrRecordNotFound at the call site instead.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.Conflict("duplicate name")
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") {
		return apperror.Conflict("duplicate name")
	}

	return apperror.Storage(err)
}
