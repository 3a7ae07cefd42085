package ui

import (
	"context"
	"strings"
	"sync"

	"github.com/furniture-crm/crm-cli/internal/pkg/model"
	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
	"github.com/furniture-crm/crm-cli/internal/pkg/validator"
)

// ValidationError is shown inline in the form, the form stays open.
type ValidationError struct {
	err error
}

func (e *ValidationError) Error() string {
	return e.err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

// Message returns the inline text, one sentence per line.
func (e *ValidationError) Message() string {
	return errors.Format(e.err, errors.FormatAsSentences())
}

// formValidator is shared by all forms, the translations are registered once.
var formValidator = sync.OnceValue(validator.New) // nolint: gochecknoglobals

type formValues struct {
	Name  string `name:"Name" validate:"required"`
	Email string `name:"Email" validate:"required,email"`
	Phone string `name:"Phone"`
}

// CustomerForm creates a new customer, or edits an existing one if Existing is set.
type CustomerForm struct {
	Existing *model.Customer
}

func NewCustomerForm(existing *model.Customer) CustomerForm {
	return CustomerForm{Existing: existing}
}

func (f CustomerForm) IsEdit() bool {
	return f.Existing != nil
}

func (f CustomerForm) Title() string {
	if f.IsEdit() {
		return "Edit Customer"
	}
	return "Add Customer"
}

func (f CustomerForm) SubmitLabel() string {
	if f.IsEdit() {
		return "Update"
	}
	return "Create"
}

// Values returns the initial values, they are empty for a new customer.
func (f CustomerForm) Values() model.CustomerFields {
	if f.Existing == nil {
		return model.CustomerFields{}
	}
	return f.Existing.Fields()
}

// Submit trims and validates the values.
// It returns exactly one payload, or a *ValidationError.
func (f CustomerForm) Submit(ctx context.Context, values model.CustomerFields) (model.CustomerFields, error) {
	v := formValues{
		Name:  strings.TrimSpace(values.Name),
		Email: strings.TrimSpace(values.Email),
		Phone: strings.TrimSpace(values.Phone),
	}
	if err := formValidator().Struct(ctx, v); err != nil {
		return model.CustomerFields{}, &ValidationError{err: err}
	}
	return model.CustomerFields{Name: v.Name, Email: v.Email, Phone: v.Phone}, nil
}
