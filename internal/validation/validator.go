package validation

import (
	"reflect"
	"strings"
	"sync"

	"smb-accounting/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// maxAmountScale is the number of decimal places money columns hold
const maxAmountScale = 2

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	// decimals are validated through their string form
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("non_negative_amount", validateNonNegativeAmount)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("report_type", validateReportType)
	_ = v.RegisterValidation("report_period", validateReportPeriod)
	_ = v.RegisterValidation("alert_status", validateAlertStatus)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct against its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

// validatePositiveAmount accepts amounts greater than zero with at most two decimal places
func validatePositiveAmount(fl validator.FieldLevel) bool {
	amount, ok := parseAmount(fl)
	return ok && amount.IsPositive()
}

// validateNonNegativeAmount accepts zero or positive amounts with at most two decimal places
func validateNonNegativeAmount(fl validator.FieldLevel) bool {
	amount, ok := parseAmount(fl)
	return ok && !amount.IsNegative()
}

func parseAmount(fl validator.FieldLevel) (decimal.Decimal, bool) {
	if fl.Field().Kind() != reflect.String {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return decimal.Zero, false
	}
	// exponent is negative scale, e.g. 12.345 has exponent -3
	if amount.Exponent() < -maxAmountScale && !amount.Equal(amount.Round(maxAmountScale)) {
		return decimal.Zero, false
	}
	return amount, true
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(fl.Field().String())
}

func validateReportType(fl validator.FieldLevel) bool {
	return models.IsValidReportType(fl.Field().String())
}

func validateReportPeriod(fl validator.FieldLevel) bool {
	return models.IsValidReportPeriod(fl.Field().String())
}

func validateAlertStatus(fl validator.FieldLevel) bool {
	return models.IsValidAlertStatus(fl.Field().String())
}
