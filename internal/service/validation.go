package service

import (
	"errors"
	"fmt"
	"strings"

	apperrors "todo-list-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// validateRequest runs the validator over req and reports the first failing
// field as an apperrors.ValidationError.
func validateRequest(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Errorf("validation failed: %w", apperrors.NewValidationError(
			strings.ToLower(fe.Field()),
			fmt.Sprintf("failed on the '%s' rule", fe.Tag()),
		))
	}
	return fmt.Errorf("validation failed: %w", apperrors.NewValidationError("", err.Error()))
}
