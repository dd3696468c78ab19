package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type customerService struct {
	pool *pgxpool.Pool
}

// NewCustomerService constructs a CustomerService backed by PostgreSQL.
func NewCustomerService(pool *pgxpool.Pool) CustomerService {
	return &customerService{pool: pool}
}

// GetCustomerFields returns all customers as dropdown options, ordered by name.
func (s *customerService) GetCustomerFields(ctx context.Context) ([]CustomerField, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name
		FROM customers
		ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("get customer fields: %w", err)
	}
	defer rows.Close()

	var fields []CustomerField
	for rows.Next() {
		var cf CustomerField
		if err := rows.Scan(&cf.ID, &cf.Name); err != nil {
			return nil, fmt.Errorf("scan customer field: %w", err)
		}
		fields = append(fields, cf)
	}
	return fields, rows.Err()
}

// GetFilteredCustomers returns matching customers with their invoice aggregates.
func (s *customerService) GetFilteredCustomers(ctx context.Context, query string) ([]CustomerSummary, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT c.id, c.name, c.email, c.image_url,
		       COUNT(i.id) AS total_invoices,
		       COALESCE(SUM(CASE WHEN i.status = 'pending' THEN i.amount ELSE 0 END), 0) AS total_pending,
		       COALESCE(SUM(CASE WHEN i.status = 'paid' THEN i.amount ELSE 0 END), 0) AS total_paid
		FROM customers c
		LEFT JOIN invoices i ON c.id = i.customer_id
		WHERE c.name ILIKE $1 OR c.email ILIKE $1
		GROUP BY c.id, c.name, c.email, c.image_url
		ORDER BY c.name`,
		"%"+query+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("get filtered customers: %w", err)
	}
	defer rows.Close()

	var customers []CustomerSummary
	for rows.Next() {
		var cs CustomerSummary
		if err := rows.Scan(
			&cs.ID, &cs.Name, &cs.Email, &cs.ImageURL,
			&cs.TotalInvoices, &cs.PendingCents, &cs.PaidCents,
		); err != nil {
			return nil, fmt.Errorf("scan customer summary: %w", err)
		}
		customers = append(customers, cs)
	}
	return customers, rows.Err()
}
