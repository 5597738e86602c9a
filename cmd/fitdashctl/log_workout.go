package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/2beens/fitdash/internal/fitness/workouts"
	"github.com/2beens/fitdash/pkg"
)

func newLogWorkoutCmd(opts *rootOptions) *cobra.Command {
	var (
		userID      string
		form        workouts.Form
		duration    int
		calories    int
		completedAt string
	)

	cmd := &cobra.Command{
		Use:   "log-workout",
		Short: "Validate and store a workout",
		Long: `Validate and store a workout for a user.

The running service caches dashboard queries in memory, so a workout logged here
shows up there once its query cache entries expire (query_cache_ttl).`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uid, err := uuid.Parse(userID)
			if err != nil {
				return fmt.Errorf("invalid --user: %w", err)
			}

			when := time.Now().UTC()
			if completedAt != "" {
				when, err = time.Parse(time.RFC3339, completedAt)
				if err != nil {
					return fmt.Errorf("invalid --at, expected RFC3339: %w", err)
				}
			}

			form.DurationMinutes = workouts.FormNumber(strconv.Itoa(duration))
			form.CaloriesBurned = workouts.FormNumber(strconv.Itoa(calories))

			// validate before touching the db
			workout, err := form.Workout(uid, when.UTC())
			if err != nil {
				var vErr *workouts.ValidationError
				if errors.As(err, &vErr) {
					for field, msg := range vErr.Fields {
						fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("  %s: %s", field, msg))
					}
				}
				return err
			}

			st, err := opts.openStores(cmd.Context())
			if err != nil {
				return err
			}
			defer st.close()

			added, err := st.workouts.Add(cmd.Context(), workout)
			if err != nil {
				if pkg.IsUniqueViolationError(err) {
					return fmt.Errorf("workout %s already logged", workout.ID)
				}
				return fmt.Errorf("log workout: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("logged %q (%s)", added.Name, added.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user id (UUID)")
	cmd.Flags().StringVar(&form.ID, "id", "", "optional workout id (UUID), makes retries idempotent")
	cmd.Flags().StringVar(&form.Name, "name", "", "workout name")
	cmd.Flags().IntVar(&duration, "duration", 0, "duration in minutes")
	cmd.Flags().IntVar(&calories, "calories", 0, "calories burned")
	cmd.Flags().StringVar(&form.Difficulty, "difficulty", "", "Beginner, Intermediate or Advanced (default Intermediate)")
	cmd.Flags().StringVar(&form.Notes, "notes", "", "optional notes")
	cmd.Flags().StringSliceVar(&form.BodyParts, "body-parts", nil, "comma separated body parts, e.g. \"Upper Body,Core\"")
	cmd.Flags().StringVar(&completedAt, "at", "", "completion time (RFC3339), defaults to now")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
