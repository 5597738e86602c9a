package main

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/2beens/fitdash/internal/fitness/dashboard"
)

func newDashboardCmd(opts *rootOptions) *cobra.Command {
	var (
		userID string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Print the derived dashboard of a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uid, err := uuid.Parse(userID)
			if err != nil {
				return fmt.Errorf("invalid --user: %w", err)
			}

			st, err := opts.openStores(cmd.Context())
			if err != nil {
				return err
			}
			defer st.close()

			snap, err := st.dashboard.Snapshot(cmd.Context(), uid)
			if err != nil {
				return fmt.Errorf("load dashboard: %w", err)
			}
			d := dashboard.Build(snap)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(d)
			}
			printDashboard(cmd.OutOrStdout(), d)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user id (UUID)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of the colored summary")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
