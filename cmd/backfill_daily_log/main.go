package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/mohammad0234/fitness-tracker-backend/internal/config"
	"github.com/mohammad0234/fitness-tracker-backend/internal/db"
	"github.com/mohammad0234/fitness-tracker-backend/internal/fitlog"
)

// marks workout days in the daily log from already stored workouts,
// for databases created before the daily log table was introduced
func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	log.Println("backfilling daily log from stored workouts ...")

	repo := fitlog.NewRepo(dbPool)
	marked, err := repo.RegenerateDailyLog(ctx)
	if err != nil {
		log.Fatalf("regenerate daily log: %s", err)
	}

	log.Printf("done, days marked: %d", marked)
}
