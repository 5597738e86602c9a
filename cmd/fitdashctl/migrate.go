package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/2beens/fitdash/internal/db"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	var down int

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded schema migrations (or roll back with --down)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			dsn := dbParams(cfg).ConnString()

			if down > 0 {
				if err := db.MigrateDown(dsn, down); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("rolled back %d migration(s)", down))
				return nil
			}

			if err := db.Migrate(dsn); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("migrations applied"))
			return nil
		},
	}

	cmd.Flags().IntVar(&down, "down", 0, "number of migrations to roll back")
	return cmd
}
