package customer

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/furniture-crm/crm-cli/internal/pkg/cli/dependencies"
	"github.com/furniture-crm/crm-cli/internal/pkg/dashboard"
	"github.com/furniture-crm/crm-cli/internal/pkg/encoding/json"
	"github.com/furniture-crm/crm-cli/internal/pkg/query"
	"github.com/furniture-crm/crm-cli/internal/pkg/ui"
	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
)

func ListCommand(p dependencies.Provider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := p.AuthenticatedDependencies()
			if err != nil {
				return err
			}

			snapshot, err := d.QueryCache().Get(cmd.Context(), query.KeyCustomers)
			if err != nil {
				return err
			}
			if snapshot.Err != nil {
				return errors.PrefixError(snapshot.Err, "cannot load customers")
			}
			customers, _ := dashboard.CustomersData(snapshot)

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				out, err := json.EncodeString(customers, true)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(d.Stdout(), out)
				return err
			}
			return ui.CustomerTable{Customers: customers}.Render(d.Stdout())
		},
	}
	cmd.Flags().Bool("json", false, "print JSON")
	return cmd
}
