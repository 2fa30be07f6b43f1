package main

import (
	"context"
	"log"
	"os"

	"nike-dashboard/internal/config"
	"nike-dashboard/internal/db"
	catalogrepo "nike-dashboard/internal/repository/catalog"
	"nike-dashboard/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	repo := catalogrepo.NewPostgres(pool, logger)
	if err := seed.Apply(ctx, repo, logger); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}
