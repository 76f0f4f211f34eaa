package cli

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-attendance-core/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-attendance-core/internal/repository/postgresql"
	"github.com/spf13/cobra"
)

func newMigrateCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the attendance, employee and record tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := app.database(cmd.Context())
			if err != nil {
				return err
			}
			if err := postgresql.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema applied")
			return nil
		},
	}
}

func newTokenCommand(app *App) *cobra.Command {
	var subject, role string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token signed with JWT_SECRET_KEY",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Config == nil || app.Config.JWT.Secret == "" {
				return fmt.Errorf("JWT_SECRET_KEY is not set")
			}
			if role != jwt.RoleAdmin && role != jwt.RoleEmployee {
				return fmt.Errorf("role must be %s or %s", jwt.RoleAdmin, jwt.RoleEmployee)
			}

			token, _, err := jwt.NewJWTService(app.Config.JWT.Secret, app.Clock).GenerateAccessToken(subject, role, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Token subject")
	cmd.Flags().StringVar(&role, "role", jwt.RoleEmployee, "admin or employee")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
