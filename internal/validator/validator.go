// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"reconstruction/internal/models"
	"reconstruction/internal/nullable"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("notblank", validateNotBlank)
		_ = v.RegisterValidation("reminder_status", validateReminderStatus)
		v.RegisterCustomTypeFunc(nullableValue,
			nullable.Field[string]{},
			nullable.Field[int]{},
			nullable.Field[float64]{},
			nullable.Field[time.Time]{},
		)
	}
}

// validateNotBlank rejects strings that are empty after trimming. Combine it
// with omitempty on optional pointer fields.
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateReminderStatus(fl validator.FieldLevel) bool {
	return models.ReminderStatus(fl.Field().String()).Valid()
}

// nullableValue exposes the value inside a nullable.Field to the validation
// tags. Absent and null fields yield nil and pass omitempty.
func nullableValue(field reflect.Value) interface{} {
	if f, ok := field.Interface().(interface{ Interface() any }); ok {
		return f.Interface()
	}
	return nil
}
