// Package validator wraps go-playground/validator with English messages.
//
// Field names in messages are taken from the "name" tag, then from the "json" tag.
// Untagged fields are converted to lower case words, for example "AuthAnonKey" -> "auth anon key".
package validator

import (
	"context"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslation "github.com/go-playground/validator/v10/translations/en"
	"github.com/iancoleman/strcase"

	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
)

type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// FieldError is one failed rule of one field.
type FieldError struct {
	Field   string
	Tag     string
	message string
}

func (e *FieldError) Error() string {
	return e.message
}

func New() *Validator {
	v := &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}

	enLocale := en.New()
	translator, found := ut.New(enLocale, enLocale).GetTranslator("en")
	if !found {
		panic(errors.New("en translator was not found"))
	}
	if err := enTranslation.RegisterDefaultTranslations(v.validate, translator); err != nil {
		panic(errors.Wrap(err, "translator was not registered"))
	}
	v.translator = translator

	v.validate.RegisterTagNameFunc(fieldName)
	return v
}

// Struct validates all fields of the struct.
// It returns nil or a MultiError of *FieldError.
func (v *Validator) Struct(ctx context.Context, value any) error {
	return v.convert(v.validate.StructCtx(ctx, value), "")
}

// Var validates a single value, the fieldName is used in the messages.
func (v *Validator) Var(ctx context.Context, value any, tag string, fieldName string) error {
	return v.convert(v.validate.VarCtx(ctx, value, tag), fieldName)
}

func (v *Validator) convert(err error, fieldName string) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		panic(err)
	}

	result := errors.NewMultiError()
	for _, e := range validationErrs {
		field := e.Field()
		msg := e.Translate(v.translator)
		if fieldName != "" {
			field = fieldName
			msg = fieldName + strings.TrimPrefix(msg, e.Field())
		}
		result.Append(&FieldError{Field: field, Tag: e.Tag(), message: msg})
	}
	return result.ErrorOrNil()
}

func fieldName(fld reflect.StructField) string {
	if name := fld.Tag.Get("name"); name != "" {
		return name
	}
	if name, _, _ := strings.Cut(fld.Tag.Get("json"), ","); name != "" && name != "-" {
		return name
	}
	return strcase.ToDelimited(fld.Name, ' ')
}
