package config

import (
	stdErrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	permerrors "github.com/alexisbeaulieu97/permissionkit/pkg/errors"
	"github.com/alexisbeaulieu97/permissionkit/pkg/permission"
	"github.com/alexisbeaulieu97/permissionkit/pkg/style"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator with the theme rules
// registered. Field names in errors follow the YAML keys.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("fill", func(fl validator.FieldLevel) bool {
			_, err := style.ParseFill(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("blur_style", func(fl validator.FieldLevel) bool {
			_, err := style.ParseBlurStyle(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("permission_kind", func(fl validator.FieldLevel) bool {
			_, err := permission.ParseKind(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
			_, err := style.PlatformByName(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks every field of the theme and reports the first failure as
// a ValidationError.
func Validate(theme *ThemeFile) error {
	if theme == nil {
		return permerrors.NewValidationError("theme", "theme is nil", nil)
	}
	return convertValidationError(validatorInstance().Struct(theme))
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if stdErrors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlPath(ve)
		return permerrors.NewValidationError(field, describe(ve), err)
	}

	return permerrors.NewValidationError("theme", err.Error(), err)
}

// yamlPath drops the root type name from the namespace, leaving the dotted
// YAML path such as background.dialog_blur or components[camrea].
func yamlPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return path
}

func describe(fe validator.FieldError) string {
	value := fmt.Sprint(fe.Value())
	switch fe.Tag() {
	case "fill":
		return fmt.Sprintf("%q is not a colour; want default, #rrggbb, an ANSI index, light/dark or from..to", value)
	case "blur_style":
		return fmt.Sprintf("unknown blur style %q", value)
	case "permission_kind":
		return fmt.Sprintf("unknown permission kind %q", value)
	case "platform":
		return fmt.Sprintf("unknown platform %q; want one of %s", value, strings.Join(style.PlatformNames(), ", "))
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
