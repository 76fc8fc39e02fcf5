package validation

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// FieldErrors flattens validator errors into json field name -> message.
// It returns nil for errors that did not come from the validator.
func FieldErrors(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fieldErrors := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrors[fe.Field()] = FormatFieldError(fe)
	}
	return fieldErrors
}

// FormatFieldError converts a validator.FieldError to a human-readable message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		default:
			return fmt.Sprintf("must be at least %s", fe.Param())
		}
	case "max":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		default:
			return fmt.Sprintf("must be at most %s", fe.Param())
		}
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "positive_amount":
		return "must be greater than 0 with at most 2 decimal places"
	case "non_negative_amount":
		return "must be 0 or greater with at most 2 decimal places"
	case "transaction_type":
		return "must be INCOME or EXPENSE"
	case "report_type":
		return "must be INCOME_STATEMENT, BALANCE_SHEET or CASH_FLOW"
	case "report_period":
		return "must be MONTHLY, QUARTERLY, YEARLY or CUSTOM"
	case "alert_status":
		return "must be UNREAD or READ"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
