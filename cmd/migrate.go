package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phareim/reader/driver/feed_db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or revert schema migrations",
	Long: `Apply every pending schema migration, or revert the latest one with --down.

Examples:
  reader migrate           # migrate up
  reader migrate --down    # revert the most recent migration`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().Bool("down", false, "revert the most recent migration")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	if err := requireDatabase(); err != nil {
		return err
	}

	if down, _ := cmd.Flags().GetBool("down"); down {
		if err := feed_db.Rollback(cfg.Database.URL); err != nil {
			return fmt.Errorf("rolling back: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Reverted the most recent migration")
		return nil
	}

	if err := feed_db.Migrate(cfg.Database.URL); err != nil {
		return fmt.Errorf("migrating: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Database is up to date")
	return nil
}
