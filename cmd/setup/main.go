// Command setup creates the bot's database if it does not exist and applies
// all pending migrations. Run once before the first start; the bot itself
// migrates on boot but cannot create its own database.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/GuildCoin_Go/internal/config"
	"github.com/osse101/GuildCoin_Go/internal/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	ctx := context.Background()

	// Connect to the default database to create the target one.
	adminConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)
	conn, err := pgx.Connect(ctx, adminConnString)
	if err != nil {
		log.Fatalf("Unable to connect to postgres database: %v", err)
	}

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check if database exists: %v", err)
	}

	if exists {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
	} else {
		fmt.Printf("Creating database %s...\n", cfg.DBName)
		if _, err := conn.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s", cfg.DBName)); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
		fmt.Println("Database created.")
	}
	conn.Close(ctx)

	fmt.Println("Running migrations...")
	if err := database.Migrate(cfg.GetDBConnString()); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}
	fmt.Println("Setup complete.")
}
