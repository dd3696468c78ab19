package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// invoiceSearchClause matches the query against every column a user sees in
// the listing. Amount and date are compared through their text form so a
// search for "44" or "2024-10" behaves like the rendered table suggests.
const invoiceSearchClause = `
	c.name ILIKE $1 OR
	c.email ILIKE $1 OR
	i.amount::text ILIKE $1 OR
	i.date::text ILIKE $1 OR
	i.status ILIKE $1`

type invoiceService struct {
	pool *pgxpool.Pool
}

// NewInvoiceService constructs an InvoiceService backed by PostgreSQL.
func NewInvoiceService(pool *pgxpool.Pool) InvoiceService {
	return &invoiceService{pool: pool}
}

// GetLatestInvoices returns the newest invoices joined with their customer.
func (s *invoiceService) GetLatestInvoices(ctx context.Context, limit int) ([]LatestInvoice, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT i.id, i.amount, c.name, c.email, c.image_url
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		ORDER BY i.date DESC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("get latest invoices: %w", err)
	}
	defer rows.Close()

	var latest []LatestInvoice
	for rows.Next() {
		var li LatestInvoice
		if err := rows.Scan(&li.ID, &li.AmountCents, &li.Name, &li.Email, &li.ImageURL); err != nil {
			return nil, fmt.Errorf("scan latest invoice: %w", err)
		}
		latest = append(latest, li)
	}
	return latest, rows.Err()
}

// GetFilteredInvoices returns one page of the listing for the search query.
func (s *invoiceService) GetFilteredInvoices(ctx context.Context, query string, page int) ([]InvoiceRow, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * PageSize

	rows, err := s.pool.Query(ctx, `
		SELECT i.id, i.amount, i.date, i.status, c.name, c.email, c.image_url
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE `+invoiceSearchClause+`
		ORDER BY i.date DESC
		LIMIT $2 OFFSET $3`,
		"%"+query+"%", PageSize, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("get filtered invoices: %w", err)
	}
	defer rows.Close()

	var invoices []InvoiceRow
	for rows.Next() {
		var ir InvoiceRow
		if err := rows.Scan(
			&ir.ID, &ir.AmountCents, &ir.Date, &ir.Status,
			&ir.CustomerName, &ir.Email, &ir.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("scan invoice row: %w", err)
		}
		invoices = append(invoices, ir)
	}
	return invoices, rows.Err()
}

// GetInvoicesForExport returns all matching rows in listing order, unpaginated.
func (s *invoiceService) GetInvoicesForExport(ctx context.Context, query string) ([]InvoiceRow, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT i.id, i.amount, i.date, i.status, c.name, c.email, c.image_url
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE `+invoiceSearchClause+`
		ORDER BY i.date DESC`,
		"%"+query+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("export invoices: %w", err)
	}
	defer rows.Close()

	var invoices []InvoiceRow
	for rows.Next() {
		var ir InvoiceRow
		if err := rows.Scan(
			&ir.ID, &ir.AmountCents, &ir.Date, &ir.Status,
			&ir.CustomerName, &ir.Email, &ir.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("scan invoice row: %w", err)
		}
		invoices = append(invoices, ir)
	}
	return invoices, rows.Err()
}

// CountInvoicePages returns the page count for the same filter the listing uses.
func (s *invoiceService) CountInvoicePages(ctx context.Context, query string) (int, error) {
	var count int64
	err := s.pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE `+invoiceSearchClause,
		"%"+query+"%",
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return TotalPages(count), nil
}

// GetInvoiceByID returns a single invoice, ErrNotFound when the id matches nothing.
func (s *invoiceService) GetInvoiceByID(ctx context.Context, id string) (*Invoice, error) {
	// A malformed id can never match a row; skip the round trip.
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invoice %s: %w", id, ErrNotFound)
	}

	inv := &Invoice{}
	err := s.pool.QueryRow(ctx, `
		SELECT id, customer_id, amount, status, date
		FROM invoices
		WHERE id = $1`,
		id,
	).Scan(&inv.ID, &inv.CustomerID, &inv.AmountCents, &inv.Status, &inv.Date)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("invoice %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get invoice %s: %w", id, err)
	}
	return inv, nil
}

// CreateInvoice inserts a new invoice with a generated id.
func (s *invoiceService) CreateInvoice(ctx context.Context, input InvoiceInput) (*Invoice, error) {
	inv := &Invoice{}
	err := s.pool.QueryRow(ctx, `
		INSERT INTO invoices (id, customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, customer_id, amount, status, date`,
		uuid.NewString(), input.CustomerID, input.AmountCents, input.Status, input.Date,
	).Scan(&inv.ID, &inv.CustomerID, &inv.AmountCents, &inv.Status, &inv.Date)
	if err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	return inv, nil
}

// UpdateInvoice rewrites the mutable fields; the stored date stays as created.
func (s *invoiceService) UpdateInvoice(ctx context.Context, id string, input InvoiceInput) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("update invoice %s: %w", id, ErrNotFound)
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3
		WHERE id = $4`,
		input.CustomerID, input.AmountCents, input.Status, id,
	)
	if err != nil {
		return fmt.Errorf("update invoice %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update invoice %s: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteInvoice removes an invoice, ErrNotFound when the id matches nothing.
func (s *invoiceService) DeleteInvoice(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("delete invoice %s: %w", id, ErrNotFound)
	}

	tag, err := s.pool.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete invoice %s: %w", id, ErrNotFound)
	}
	return nil
}
