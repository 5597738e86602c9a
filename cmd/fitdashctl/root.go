package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/2beens/fitdash/internal/config"
	"github.com/2beens/fitdash/internal/db"
	"github.com/2beens/fitdash/internal/fitness/bodyparts"
	"github.com/2beens/fitdash/internal/fitness/dailystats"
	"github.com/2beens/fitdash/internal/fitness/dashboard"
	"github.com/2beens/fitdash/internal/fitness/workouts"
	"github.com/2beens/fitdash/internal/logging"
	"github.com/2beens/fitdash/pkg"
)

type rootOptions struct {
	env        string
	configPath string
	envFile    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "fitdashctl",
		Short:         "Operate the fitdash backend: migrations, dashboards, workouts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := godotenv.Load(opts.envFile); err != nil {
				log.Tracef("no env file loaded [%s]: %s", opts.envFile, err)
			}
			logging.Setup(logging.LoggerSetupParams{
				LogToStdout: true,
				LogLevel:    opts.logLevel,
			})
			// keep stdout for command output
			log.SetOutput(os.Stderr)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.env, "env", "development", "environment [prod | production | dev | development]")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "./config.toml", "path for the TOML config file")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "envfile", ".env", "optional dotenv file with secrets")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level")

	rootCmd.AddCommand(
		newMigrateCmd(opts),
		newDashboardCmd(opts),
		newLogWorkoutCmd(opts),
		newTokenCmd(opts),
	)

	return rootCmd
}

var errConfigNotFound = errors.New("config file not found")

func (o *rootOptions) loadConfig() (*config.Config, error) {
	exists, err := pkg.PathExists(o.configPath, false)
	if err != nil {
		return nil, fmt.Errorf("check config file %s: %w", o.configPath, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s (set --config)", errConfigNotFound, o.configPath)
	}

	cfg, err := config.Load(o.env, o.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func dbParams(cfg *config.Config) db.NewDBPoolParams {
	return db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("FITDASH_DB_PASSWORD"),
		SSLMode:    cfg.PostgresSSLMode,
	}
}

// stores bundles what the data commands need; close releases the pool.
type stores struct {
	pool      *pgxpool.Pool
	workouts  *workouts.Repo
	dashboard *dashboard.Service
}

func (o *rootOptions) openStores(ctx context.Context) (*stores, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	pool, err := db.NewDBPool(ctx, dbParams(cfg))
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	workoutsRepo := workouts.NewRepo(pool)
	return &stores{
		pool:     pool,
		workouts: workoutsRepo,
		dashboard: dashboard.NewService(dashboard.NewServiceParams{
			WorkoutsRepo:   workoutsRepo,
			DailyStatsRepo: dailystats.NewRepo(pool),
			BodyPartsRepo:  bodyparts.NewRepo(pool),
			RecentLimit:    cfg.RecentWorkoutsLimit,
		}),
	}, nil
}

func (s *stores) close() {
	s.pool.Close()
}
