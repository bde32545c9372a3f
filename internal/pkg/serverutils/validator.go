package serverutils

import (
	"notekeeper-be/internal/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks a decoded request body or query struct against its
// validate tags. Failures surface as validation errors so malformed input
// never reaches a service.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			f := verrs[0]
			return apperror.Validation("field %s failed on %s", f.Field(), f.Tag())
		}
		return apperror.Validation("%v", err)
	}
	return nil
}
