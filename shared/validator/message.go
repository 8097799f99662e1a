package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const unnamedField = "value"

var (
	messages = map[string]string{
		"required":      "{field} is required",
		"notblank":      "{field} must not be blank",
		"gte":           "{field} must be greater than or equal to {param}",
		"lte":           "{field} must be less than or equal to {param}",
		"oneof":         "{field} must be one of {param}",
		"max":           "{field} must be at most {param} characters",
		"min":           "{field} must be at least {param} characters",
		"email":         "{field} must be a valid email address",
		"timezone_name": "{field} must be a valid IANA timezone name",
		"iso8601":       "{field} must be an ISO-8601 datetime such as 2025-06-16T06:00:00+05:30",
	}
)

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			errStr := ""
			field := valErr.Field()
			param := valErr.Param()

			if field == "" {
				field = unnamedField
			}

			errStr = messages[valErr.Tag()]
			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", field)
				errStr = strings.ReplaceAll(errStr, "{param}", param)

				return errStr
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}
