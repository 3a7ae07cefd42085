package customer

import (
	"github.com/spf13/cobra"

	"github.com/furniture-crm/crm-cli/internal/pkg/cli/dependencies"
	"github.com/furniture-crm/crm-cli/internal/pkg/dashboard"
	"github.com/furniture-crm/crm-cli/internal/pkg/model"
	"github.com/furniture-crm/crm-cli/internal/pkg/query"
	"github.com/furniture-crm/crm-cli/internal/pkg/ui"
	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
)

// confirmed skips the delete confirmation, it is used with the --yes flag.
type confirmed struct {
	dashboard.Dialogs
}

func (confirmed) ConfirmDelete(_ model.Customer) bool {
	return true
}

func DeleteCommand(p dependencies.Provider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a customer",
		Long:  `Deletes the customer after a confirmation. Without an interactive terminal, the "--yes" flag is required.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			d, err := p.AuthenticatedDependencies()
			if err != nil {
				return err
			}

			var dialogs dashboard.Dialogs = d.Dialogs()
			if yes, _ := cmd.Flags().GetBool("yes"); yes {
				dialogs = confirmed{Dialogs: dialogs}
			} else if !d.Dialogs().IsInteractive() {
				return errors.New(`deletion is not confirmed, please use the "--yes" flag`)
			}

			// The list is loaded, so the confirmation shows the customer and an unknown id is reported before the request
			snapshot, err := d.QueryCache().Get(cmd.Context(), query.KeyCustomers)
			if err != nil {
				return err
			}
			if snapshot.Err != nil {
				return errors.PrefixError(snapshot.Err, "cannot load customers")
			}
			customers, _ := dashboard.CustomersData(snapshot)

			db := dashboard.New(d, dialogs)
			var outcome dashboard.Outcome
			table := ui.CustomerTable{
				Customers: customers,
				OnDelete: func(customerID int) {
					outcome = db.Delete(cmd.Context(), customerID)
				},
			}
			if err := table.Delete(id); err != nil {
				return err
			}
			return result(d, db, outcome)
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "skip the confirmation")
	return cmd
}
