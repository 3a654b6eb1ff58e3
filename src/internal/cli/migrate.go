package cli

import (
	"fmt"

	"github.com/jackyeh168/ddd_checkout/src/internal/infrastructure/persistence"
	"github.com/spf13/cobra"
)

func newMigrateCommand(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			if err := persistence.AutoMigrate(a.db); err != nil {
				return err
			}
			a.log.Info("database migrated", "driver", a.cfg.DBDriver)
			fmt.Fprintln(cmd.OutOrStdout(), "migrated")
			return nil
		},
	}
}
