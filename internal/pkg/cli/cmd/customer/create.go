package customer

import (
	"github.com/spf13/cobra"

	"github.com/furniture-crm/crm-cli/internal/pkg/cli/dependencies"
	"github.com/furniture-crm/crm-cli/internal/pkg/dashboard"
	"github.com/furniture-crm/crm-cli/internal/pkg/model"
	"github.com/furniture-crm/crm-cli/internal/pkg/ui"
)

func CreateCommand(p dependencies.Provider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer",
		Long: `Creates a customer from the flags.
In an interactive terminal, the form is shown if the name or the email flag is missing.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := p.AuthenticatedDependencies()
			if err != nil {
				return err
			}

			values := fieldsFromFlags(cmd, model.CustomerFields{})
			db := dashboard.New(d, d.Dialogs())
			db.OpenAdd()

			if d.Dialogs().IsInteractive() && (values.Name == "" || values.Email == "") {
				var ok bool
				if values, ok = d.Dialogs().AskCustomer(ui.NewCustomerForm(nil), values, ""); !ok {
					return result(d, db, dashboard.Cancelled{})
				}
			}

			return result(d, db, db.Submit(cmd.Context(), values))
		},
	}
	bindFieldFlags(cmd)
	return cmd
}

func bindFieldFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "customer name")
	cmd.Flags().String("email", "", "customer email")
	cmd.Flags().String("phone", "", "customer phone")
}

// fieldsFromFlags overwrites the values by the changed flags.
func fieldsFromFlags(cmd *cobra.Command, values model.CustomerFields) model.CustomerFields {
	if cmd.Flags().Changed("name") {
		values.Name, _ = cmd.Flags().GetString("name")
	}
	if cmd.Flags().Changed("email") {
		values.Email, _ = cmd.Flags().GetString("email")
	}
	if cmd.Flags().Changed("phone") {
		values.Phone, _ = cmd.Flags().GetString("phone")
	}
	return values
}

func anyFieldFlag(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("name") || cmd.Flags().Changed("email") || cmd.Flags().Changed("phone")
}
