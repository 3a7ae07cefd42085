package dashboard

import (
	"fmt"

	"github.com/furniture-crm/crm-cli/internal/pkg/model"
	"github.com/furniture-crm/crm-cli/internal/pkg/query"
	"github.com/furniture-crm/crm-cli/internal/pkg/ui"
	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
)

const (
	mutationCreate = "create"
	mutationUpdate = "update"
	mutationDelete = "delete"
)

// Outcome of a user action, one of Succeeded, Failed, Rejected and Cancelled.
type Outcome interface {
	isOutcome()
}

// Succeeded mutation, Customer is nil for delete.
type Succeeded struct {
	Mutation string
	Customer *model.Customer
}

// Failed mutation, nothing was invalidated.
type Failed struct {
	Mutation string
	Err      error
}

// Rejected form values, no request was sent.
type Rejected struct {
	Message string
	Err     *ui.ValidationError
}

// Cancelled by the user, no request was sent.
type Cancelled struct{}

func (Succeeded) isOutcome() {}
func (Failed) isOutcome()    {}
func (Rejected) isOutcome()  {}
func (Cancelled) isOutcome() {}

// Notice is the message shown after an action.
type Notice struct {
	Text  string
	Error bool
}

func fromMutation(result query.Outcome) Outcome {
	if !result.Succeeded() {
		return Failed{Mutation: result.Mutation.Name, Err: result.Err}
	}
	customer, _ := result.Data.(*model.Customer)
	return Succeeded{Mutation: result.Mutation.Name, Customer: customer}
}

// apply is the only place where outcomes change the dashboard state.
func (d *Dashboard) apply(outcome Outcome) {
	switch o := outcome.(type) {
	case Succeeded:
		d.CloseModal()
		d.notice = Notice{Text: successMessage(o)}
	case Failed:
		d.notice = Notice{Text: failureMessage(o), Error: true}
	case Rejected:
		d.notice = Notice{Text: o.Message, Error: true}
	case Cancelled:
		// nop
	default:
		panic(errors.Errorf(`unexpected outcome type "%T"`, outcome))
	}
}

func successMessage(o Succeeded) string {
	switch o.Mutation {
	case mutationCreate:
		return "Customer created."
	case mutationUpdate:
		return "Customer updated."
	case mutationDelete:
		return "Customer deleted."
	default:
		return fmt.Sprintf(`Mutation "%s" succeeded.`, o.Mutation)
	}
}

func failureMessage(o Failed) string {
	if o.Mutation == "" {
		return errors.Format(o.Err, errors.FormatAsSentences())
	}
	return fmt.Sprintf("Cannot %s the customer: %s", o.Mutation, errors.Format(o.Err, errors.FormatAsSentences()))
}
