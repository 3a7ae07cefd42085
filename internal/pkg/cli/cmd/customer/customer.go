// Package customer contains the customer commands, they are usable without an interactive terminal.
// Mutations go through the dashboard, so the form validation and the cache invalidation are the same as in the dashboard.
package customer

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/furniture-crm/crm-cli/internal/pkg/cli/dependencies"
	"github.com/furniture-crm/crm-cli/internal/pkg/dashboard"
	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
)

func Commands(p dependencies.Provider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customer",
		Short: "Manage customers",
	}
	cmd.AddCommand(
		ListCommand(p),
		CreateCommand(p),
		UpdateCommand(p),
		DeleteCommand(p),
	)
	return cmd
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, errors.Errorf(`invalid customer id "%s"`, arg)
	}
	return id, nil
}

// result converts the outcome to the command result.
func result(d dependencies.Authenticated, db *dashboard.Dashboard, outcome dashboard.Outcome) error {
	switch o := outcome.(type) {
	case dashboard.Succeeded:
		d.Logger().Info(db.Notice().Text)
		if o.Customer != nil {
			d.Logger().Infof(`ID: %d`, o.Customer.ID)
		}
		return nil
	case dashboard.Rejected:
		return errors.PrefixError(errors.Unwrap(o.Err), "invalid customer")
	case dashboard.Failed:
		if o.Mutation == "" {
			return o.Err
		}
		return errors.PrefixErrorf(o.Err, "cannot %s the customer", o.Mutation)
	case dashboard.Cancelled:
		d.Logger().Info("Cancelled.")
		return nil
	default:
		panic(errors.Errorf(`unexpected outcome type "%T"`, outcome))
	}
}
