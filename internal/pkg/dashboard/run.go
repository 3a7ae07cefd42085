package dashboard

import (
	"context"

	"github.com/furniture-crm/crm-cli/internal/pkg/query"
	"github.com/furniture-crm/crm-cli/internal/pkg/ui"
	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
)

type Action string

const (
	ActionAdd     Action = "Add customer"
	ActionEdit    Action = "Edit customer"
	ActionDelete  Action = "Delete customer"
	ActionRefresh Action = "Refresh"
	ActionSignOut Action = "Sign out"
	ActionQuit    Action = "Quit"
)

func actions(table ui.CustomerTable) []string {
	out := []string{string(ActionAdd)}
	if len(table.Customers) > 0 {
		out = append(out, string(ActionEdit), string(ActionDelete))
	}
	return append(out, string(ActionRefresh), string(ActionSignOut), string(ActionQuit))
}

// Run renders the dashboard and handles user actions until quit or sign-out.
func (d *Dashboard) Run(ctx context.Context) error {
	d.Mount()
	defer d.Unmount()

	for {
		view, err := d.Wait(ctx)
		if err != nil {
			return err
		}
		if view.User == nil {
			return nil
		}

		if err := d.Render(d.stdout, view); err != nil {
			return err
		}
		d.printNotice()

		table := d.table(view)
		table.OnDelete = func(id int) { d.Delete(ctx, id) }

		answer, ok := d.dialogs.AskAction(actions(table))
		if !ok {
			return nil
		}

		switch Action(answer) {
		case ActionAdd:
			d.OpenAdd()
			d.runForm(ctx)
		case ActionEdit:
			if id, ok := d.dialogs.AskCustomerID(table, "Select customer to edit"); ok {
				if err := table.Edit(id); err != nil {
					return err
				}
				d.runForm(ctx)
			}
		case ActionDelete:
			if id, ok := d.dialogs.AskCustomerID(table, "Select customer to delete"); ok {
				if err := table.Delete(id); err != nil {
					return err
				}
			}
		case ActionRefresh:
			d.cache.Invalidate(query.AllKeys()...)
		case ActionSignOut:
			return d.SignOut(ctx)
		case ActionQuit:
			return nil
		default:
			return errors.Errorf(`unexpected action "%s"`, answer)
		}
		d.printNotice()
	}
}

// runForm shows the form until the values are saved or the user cancels it.
func (d *Dashboard) runForm(ctx context.Context) {
	var form ui.CustomerForm
	switch m := d.modal.(type) {
	case ModalCreating:
		form = ui.NewCustomerForm(nil)
	case ModalEditing:
		form = ui.NewCustomerForm(&m.Customer)
	default:
		return
	}

	values := form.Values()
	for {
		var ok bool
		values, ok = d.dialogs.AskCustomer(form, values, d.notice.Text)
		if !ok {
			d.CloseModal()
			d.apply(Cancelled{})
			d.notice = Notice{}
			return
		}
		d.notice = Notice{}
		if _, ok := d.Submit(ctx, values).(Succeeded); ok {
			return
		}
	}
}
