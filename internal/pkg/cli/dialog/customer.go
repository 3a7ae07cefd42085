package dialog

import (
	"fmt"

	"github.com/furniture-crm/crm-cli/internal/pkg/cli/prompt"
	"github.com/furniture-crm/crm-cli/internal/pkg/model"
	"github.com/furniture-crm/crm-cli/internal/pkg/ui"
)

const DeleteConfirmLabel = "Are you sure you want to delete this customer?"

// AskCustomer shows the form, values pre-fill the inputs.
// The message is the validation or error text of the previous submit.
func (d *Dialogs) AskCustomer(form ui.CustomerForm, values model.CustomerFields, message string) (model.CustomerFields, bool) {
	d.Printf("\n%s\n", form.Title())
	if message != "" {
		d.Printf("%s\n", message)
	}

	var ok bool
	if values.Name, ok = d.Ask(&prompt.Question{Label: "Name", Default: values.Name}); !ok {
		return values, false
	}
	if values.Email, ok = d.Ask(&prompt.Question{Label: "Email", Default: values.Email}); !ok {
		return values, false
	}
	if values.Phone, ok = d.Ask(&prompt.Question{Label: "Phone", Default: values.Phone}); !ok {
		return values, false
	}
	return values, true
}

func (d *Dialogs) ConfirmDelete(customer model.Customer) bool {
	return d.Confirm(&prompt.Confirm{
		Label:       DeleteConfirmLabel,
		Description: fmt.Sprintf("Customer: %s", ui.CustomerLabel(customer)),
	})
}

// AskCustomerID selects a row of the table, it returns false if the table is empty.
func (d *Dialogs) AskCustomerID(table ui.CustomerTable, label string) (int, bool) {
	if len(table.Customers) == 0 {
		return 0, false
	}
	index, ok := d.SelectIndex(&prompt.SelectIndex{Label: label, Options: table.Choices()})
	if !ok || index < 0 || index >= len(table.Customers) {
		return 0, false
	}
	return table.Customers[index].ID, true
}

func (d *Dialogs) AskAction(options []string) (string, bool) {
	return d.Select(&prompt.Select{Label: "What do you want to do?", Options: options})
}
