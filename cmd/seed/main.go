package main

import (
	"context"
	"log"
	"os"

	"savage-storefront/internal/config"
	"savage-storefront/internal/db"
	"savage-storefront/internal/seed"
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

	message, err := seed.Apply(ctx, pool)
	if err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println(message)
}
