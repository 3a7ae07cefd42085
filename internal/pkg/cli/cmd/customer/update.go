package customer

import (
	"github.com/spf13/cobra"

	"github.com/furniture-crm/crm-cli/internal/pkg/cli/dependencies"
	"github.com/furniture-crm/crm-cli/internal/pkg/dashboard"
	"github.com/furniture-crm/crm-cli/internal/pkg/ui"
	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
)

func UpdateCommand(p dependencies.Provider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a customer",
		Long: `Updates the customer, fields without a flag keep the current value.
In an interactive terminal, the form is shown if no flag is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			d, err := p.AuthenticatedDependencies()
			if err != nil {
				return err
			}

			existing, err := d.Gateway().GetCustomer(cmd.Context(), id)
			if err != nil {
				return err
			}

			values := fieldsFromFlags(cmd, existing.Fields())
			db := dashboard.New(d, d.Dialogs())
			db.OpenEdit(*existing)

			if !anyFieldFlag(cmd) {
				if !d.Dialogs().IsInteractive() {
					return errors.New(`nothing to update, please use at least one of the "--name", "--email" and "--phone" flags`)
				}
				var ok bool
				if values, ok = d.Dialogs().AskCustomer(ui.NewCustomerForm(existing), values, ""); !ok {
					return result(d, db, dashboard.Cancelled{})
				}
			}

			return result(d, db, db.Submit(cmd.Context(), values))
		},
	}
	bindFieldFlags(cmd)
	return cmd
}
