package cmd

import (
	"github.com/spf13/cobra"

	"github.com/furniture-crm/crm-cli/internal/pkg/cli/dependencies"
	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
)

// PasswordEnv can be used instead of the --password flag, so the password is not in the shell history.
const PasswordEnv = "CRM_PASSWORD"

func LoginCommand(p dependencies.Provider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in",
		Long: `Signs in by email and password, the session is stored in the config directory.

Missing credentials are asked interactively.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := p.PublicDependencies()

			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			if password == "" {
				password = d.Envs().Get(PasswordEnv)
			}

			email, password, ok := d.Dialogs().AskCredentials(email, password)
			if !ok || email == "" || password == "" {
				return errors.New(`missing credentials, please use "--email" and "--password" flags or the interactive terminal`)
			}

			_, err := d.Session().SignIn(cmd.Context(), email, password)
			return err
		},
	}

	cmd.Flags().String("email", "", "user email")
	cmd.Flags().String("password", "", `user password, ENV variable "`+PasswordEnv+`" can be used instead`)
	return cmd
}

func LogoutCommand(p dependencies.Provider) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		Long:  "Ends the session on the server and removes the stored session.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := p.PublicDependencies()
			if d.Session().CurrentUser() == nil {
				d.Logger().Info("You are not signed in.")
				return nil
			}
			if err := d.Session().SignOut(cmd.Context()); err != nil {
				return err
			}
			d.Logger().Info("Signed out.")
			return nil
		},
	}
}
