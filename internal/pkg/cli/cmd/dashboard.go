package cmd

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

func DashboardCommand(p dependencies.Provider) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long: `Shows the stats and the customers table, customers can be added, edited and deleted.

The dashboard requires an interactive terminal.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !p.BaseDependencies().Dialogs().IsInteractive() {
				return errors.New(`the dashboard requires an interactive terminal, please use the "stats" and "customer" commands`)
			}

			d, err := p.AuthenticatedDependencies()
			if err != nil {
				return err
			}

			return dashboard.New(d, d.Dialogs()).Run(cmd.Context())
		},
	}
}

func StatsCommand(p dependencies.Provider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the summary stats",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := p.AuthenticatedDependencies()
			if err != nil {
				return err
			}

			snapshot, err := d.QueryCache().Get(cmd.Context(), query.KeyStats)
			if err != nil {
				return err
			}
			if snapshot.Err != nil {
				return errors.PrefixError(snapshot.Err, "cannot load stats")
			}
			stats, _ := dashboard.StatsData(snapshot)

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				out, err := json.EncodeString(stats, true)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(d.Stdout(), out)
				return err
			}
			return ui.StatsSummary{Stats: stats}.Render(d.Stdout())
		},
	}
	cmd.Flags().Bool("json", false, "print JSON")
	return cmd
}
