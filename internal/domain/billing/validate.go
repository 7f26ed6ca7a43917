package billing

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"garage_manager/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator. Field names in errors follow the
// json tags of the validated struct.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// validateItem validates one element of a batch and turns the first failure
// into a ValidationError whose field reads like "parts_used[1].quantity".
func validateItem(prefix string, i int, item any) error {
	err := Validator().Struct(item)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return entities.NewValidationError(fmt.Sprintf("%s[%d]", prefix, i), err.Error())
	}
	fe := verrs[0]
	// Namespace is "<StructType>.<path>"; keep only the path.
	path := fe.Namespace()
	if idx := strings.Index(path, "."); idx >= 0 {
		path = path[idx+1:]
	}
	field := fmt.Sprintf("%s[%d].%s", prefix, i, path)
	return entities.NewValidationError(field, describe(fe))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	}
	return "is invalid"
}
