package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/phareim/reader/domain"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync active feeds once and print the report",
	Long: `Sync active feeds once and print the report as JSON.

Examples:
  reader sync                                            # every user
  reader sync --user 0b6b7a9e-4c1f-4a52-9f51-5d7c1a0c2f10  # one user`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().String("user", "", "only sync this user's feeds")
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var userID *uuid.UUID
	if raw, _ := cmd.Flags().GetString("user"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid --user %q: %w", raw, err)
		}
		userID = &id
	}

	app, err := openApplication(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	var report domain.SyncReport
	if userID != nil {
		report, err = app.container.SyncFeedUsecase.SyncUser(ctx, *userID)
	} else {
		report, err = app.container.SyncFeedUsecase.SyncEverything(ctx)
	}
	if err != nil {
		return fmt.Errorf("syncing feeds: %w", err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
