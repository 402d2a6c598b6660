package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/vncsmyrnk/notes/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/notes/internal/config"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal(err)
	}

	var dbHost, dbPort, dbUser, dbPass, dbName, sslMode string
	var down bool

	flag.StringVar(&dbHost, "db-host", envOr("POSTGRES_HOST", "localhost"), "Database host")
	flag.StringVar(&dbPort, "db-port", envOr("POSTGRES_PORT", "5432"), "Database port")
	flag.StringVar(&dbUser, "db-user", envOr("POSTGRES_USER", "postgres"), "Database user")
	flag.StringVar(&dbPass, "db-pass", os.Getenv("POSTGRES_PASSWORD"), "Database password")
	flag.StringVar(&dbName, "db-name", envOr("POSTGRES_DB", "notes"), "Database name")
	flag.StringVar(&sslMode, "db-sslmode", envOr("POSTGRES_SSLMODE", "disable"), "Database sslmode")
	flag.BoolVar(&down, "down", false, "Roll back the most recent migration instead of applying pending ones")
	flag.Parse()

	cfg := &config.Config{
		DBHost:     dbHost,
		DBPort:     dbPort,
		DBUser:     dbUser,
		DBPassword: dbPass,
		DBName:     dbName,
		DBSSLMode:  sslMode,
	}

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Use a timeout so a stuck lock does not hang the job forever
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatal(err)
	}

	if down {
		err = postgres.Rollback(ctx, db)
	} else {
		err = postgres.Migrate(ctx, db)
	}
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	fmt.Println("Migrations executed successfully.")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
