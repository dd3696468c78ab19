// seed loads a demo data set: six customers, thirteen invoices and twelve
// months of revenue. Customers and revenue are upserted; invoices are
// replaced wholesale so repeated runs don't accumulate rows.
//
// Usage: go run ./cmd/seed
package main

import (
	"context"
	"log"

	"invoice-dashboard/internal/config"
	"invoice-dashboard/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer pool.Close()

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatalf("Failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	log.Println("Clearing invoices...")
	_, err = tx.Exec(ctx, `DELETE FROM invoices;`)
	if err != nil {
		log.Fatalf("Failed to clear invoices: %v", err)
	}

	log.Println("Seeding customers...")
	_, err = tx.Exec(ctx, `
		INSERT INTO customers (id, name, email, image_url)
		VALUES
		  ('9a4f3c2e-51d8-4e9b-a2c7-6b8d0f1e3a52', 'Alice Archer',  'alice@archer.dev',    '/static/avatars/alice-archer.svg'),
		  ('2f7b8e91-c4a3-4d56-b8e1-9f0a2c3d4e5f', 'Bert Birch',    'bert@birch.io',       '/static/avatars/bert-birch.svg'),
		  ('6d1e9f4a-8b2c-4c73-9d0e-5a6b7c8d9e0f', 'Carol Chen',    'carol@chenworks.com', '/static/avatars/carol-chen.svg'),
		  ('3c8a5b29-e7f1-4a84-b5c6-d0e1f2a3b4c5', 'Dmitri Volkov', 'dmitri@volkov.dev',   '/static/avatars/dmitri-volkov.svg'),
		  ('b47d2e83-9a5f-4f1b-8c3d-e6f7a8b9c0d1', 'Elena Santos',  'elena@santos.studio', '/static/avatars/elena-santos.svg'),
		  ('5e9c1d37-2b8a-4e65-a7f8-90b1c2d3e4f5', 'Farid Khan',    'farid@khan.agency',   '/static/avatars/farid-khan.svg')
		ON CONFLICT (id) DO UPDATE
		  SET name = EXCLUDED.name,
		      email = EXCLUDED.email,
		      image_url = EXCLUDED.image_url;
	`)
	if err != nil {
		log.Fatalf("Failed to seed customers: %v", err)
	}

	log.Println("Seeding invoices...")
	_, err = tx.Exec(ctx, `
		INSERT INTO invoices (customer_id, amount, status, date)
		VALUES
		  ('9a4f3c2e-51d8-4e9b-a2c7-6b8d0f1e3a52', 15795, 'pending', '2024-12-06'),
		  ('2f7b8e91-c4a3-4d56-b8e1-9f0a2c3d4e5f', 20348, 'pending', '2024-11-14'),
		  ('6d1e9f4a-8b2c-4c73-9d0e-5a6b7c8d9e0f',  3040, 'paid',    '2024-10-29'),
		  ('3c8a5b29-e7f1-4a84-b5c6-d0e1f2a3b4c5', 44800, 'paid',    '2024-09-10'),
		  ('b47d2e83-9a5f-4f1b-8c3d-e6f7a8b9c0d1', 34577, 'pending', '2024-08-05'),
		  ('b47d2e83-9a5f-4f1b-8c3d-e6f7a8b9c0d1',   500, 'paid',    '2024-08-19'),
		  ('5e9c1d37-2b8a-4e65-a7f8-90b1c2d3e4f5', 54246, 'pending', '2024-07-16'),
		  ('9a4f3c2e-51d8-4e9b-a2c7-6b8d0f1e3a52',   666, 'pending', '2024-06-27'),
		  ('6d1e9f4a-8b2c-4c73-9d0e-5a6b7c8d9e0f',  1250, 'paid',    '2024-06-17'),
		  ('2f7b8e91-c4a3-4d56-b8e1-9f0a2c3d4e5f', 32545, 'paid',    '2024-06-09'),
		  ('3c8a5b29-e7f1-4a84-b5c6-d0e1f2a3b4c5',  8546, 'paid',    '2024-06-07'),
		  ('6d1e9f4a-8b2c-4c73-9d0e-5a6b7c8d9e0f',  1000, 'paid',    '2024-06-05'),
		  ('5e9c1d37-2b8a-4e65-a7f8-90b1c2d3e4f5',  8945, 'paid',    '2024-06-03');
	`)
	if err != nil {
		log.Fatalf("Failed to seed invoices: %v", err)
	}

	log.Println("Seeding revenue...")
	_, err = tx.Exec(ctx, `
		INSERT INTO revenue (month, revenue)
		VALUES
		  ('Jan', 2000), ('Feb', 1800), ('Mar', 2200), ('Apr', 2500),
		  ('May', 2300), ('Jun', 3200), ('Jul', 3500), ('Aug', 3700),
		  ('Sep', 2500), ('Oct', 2800), ('Nov', 3000), ('Dec', 4800)
		ON CONFLICT (month) DO UPDATE
		  SET revenue = EXCLUDED.revenue;
	`)
	if err != nil {
		log.Fatalf("Failed to seed revenue: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("Failed to commit: %v", err)
	}

	log.Println("Seed data loaded successfully.")
}
