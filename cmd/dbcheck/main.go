// dbcheck verifies database connectivity and reports row counts for every
// table the dashboard reads. Run it after migrate and seed to confirm the
// environment is ready.
//
// Usage: go run ./cmd/dbcheck
package main

import (
	"context"
	"log"
	"time"

	"invoice-dashboard/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[CONFIG] %v", err)
	}

	ctx := context.Background()
	pool := connectDB(ctx, cfg.Database.URL)
	defer pool.Close()

	checkMigrations(ctx, pool)

	for _, table := range []string{"customers", "invoices", "revenue"} {
		countTable(ctx, pool, table)
	}

	log.Println("[DONE] database is ready.")
}

func connectDB(ctx context.Context, url string) *pgxpool.Pool {
	connCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		log.Fatalf("[CONNECT] failed to create pool: %v", err)
	}

	if err := pool.Ping(connCtx); err != nil {
		log.Fatalf("[CONNECT] failed to ping database: %v", err)
	}

	log.Println("[CONNECT] success")
	return pool
}

func checkMigrations(ctx context.Context, pool *pgxpool.Pool) {
	var version int64
	err := pool.QueryRow(ctx,
		`SELECT COALESCE(MAX(version_id), 0) FROM goose_db_version`).Scan(&version)
	if err != nil {
		log.Fatalf("[MIGRATE] schema not migrated, run ./cmd/migrate first: %v", err)
	}
	log.Printf("[MIGRATE] schema at version %d", version)
}

func countTable(ctx context.Context, pool *pgxpool.Pool, table string) {
	var count int64
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		log.Fatalf("[CHECK] table %s missing: %v", table, err)
	}
	log.Printf("[CHECK] %-10s %6d rows", table, count)
}
