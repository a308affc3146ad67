package cli

import (
	"github.com/spf13/cobra"

	"fyyur/database"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the venue, artist and show tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer a.close()

			if err := database.Migrate(a.db.WithContext(cmd.Context())); err != nil {
				return err
			}
			a.log.Info().Msg("migrated")
			return nil
		},
	}
}
