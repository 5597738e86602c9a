// Package main runs the fitdash MCP server over stdio (for local agent use).
// The same MCP server is also mounted on the backend at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitdash/internal/config"
	"github.com/2beens/fitdash/internal/db"
	"github.com/2beens/fitdash/internal/fitness/bodyparts"
	"github.com/2beens/fitdash/internal/fitness/dailystats"
	"github.com/2beens/fitdash/internal/fitness/dashboard"
	fitnessmcp "github.com/2beens/fitdash/internal/fitness/mcp"
	"github.com/2beens/fitdash/internal/fitness/workouts"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout carries the MCP protocol
	log.SetOutput(os.Stderr)
	_ = godotenv.Load()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     os.Getenv("FITDASH_DB_PASSWORD"),
		SSLMode:        cfg.PostgresSSLMode,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	service := dashboard.NewService(dashboard.NewServiceParams{
		WorkoutsRepo:   workouts.NewRepo(dbPool),
		DailyStatsRepo: dailystats.NewRepo(dbPool),
		BodyPartsRepo:  bodyparts.NewRepo(dbPool),
		RecentLimit:    cfg.RecentWorkoutsLimit,
	})
	server := fitnessmcp.NewServer(fitnessmcp.NewPoolSchemaRepo(dbPool), service)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
