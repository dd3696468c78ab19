package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

// ── Dashboard types ───────────────────────────────────────────────────────────

// RevenueMonth is one bar of the revenue chart. Revenue is the precomputed
// monthly total in whole dollars; the revenue table is seeded, never written
// by this app.
type RevenueMonth struct {
	Month   string
	Revenue int64
}

// CardData carries the four summary card values of the dashboard overview.
type CardData struct {
	InvoiceCount  int64
	CustomerCount int64
	PaidCents     Cents
	PendingCents  Cents
}

// ── Interface ─────────────────────────────────────────────────────────────────

// DashboardService provides the read-only aggregates of the overview page.
type DashboardService interface {
	// GetRevenue returns the monthly revenue series in calendar order.
	GetRevenue(ctx context.Context) ([]RevenueMonth, error)

	// GetCardData runs the three summary queries concurrently. Any one of
	// them failing fails the whole call; there are no retries.
	GetCardData(ctx context.Context) (*CardData, error)
}

// ── Implementation ────────────────────────────────────────────────────────────

type dashboardService struct {
	pool *pgxpool.Pool
}

// NewDashboardService constructs a DashboardService backed by PostgreSQL.
func NewDashboardService(pool *pgxpool.Pool) DashboardService {
	return &dashboardService{pool: pool}
}

// GetRevenue returns the revenue series ordered Jan through Dec.
func (s *dashboardService) GetRevenue(ctx context.Context) ([]RevenueMonth, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT month, revenue
		FROM revenue
		ORDER BY array_position(
			ARRAY['Jan','Feb','Mar','Apr','May','Jun','Jul','Aug','Sep','Oct','Nov','Dec'],
			month)`,
	)
	if err != nil {
		return nil, fmt.Errorf("get revenue: %w", err)
	}
	defer rows.Close()

	var revenue []RevenueMonth
	for rows.Next() {
		var rm RevenueMonth
		if err := rows.Scan(&rm.Month, &rm.Revenue); err != nil {
			return nil, fmt.Errorf("scan revenue month: %w", err)
		}
		revenue = append(revenue, rm)
	}
	return revenue, rows.Err()
}

// GetCardData fans the three independent summary statements out concurrently.
// The shared context cancels the rest as soon as one fails.
func (s *dashboardService) GetCardData(ctx context.Context) (*CardData, error) {
	card := &CardData{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&card.InvoiceCount); err != nil {
			return fmt.Errorf("count invoices: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&card.CustomerCount); err != nil {
			return fmt.Errorf("count customers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		err := s.pool.QueryRow(ctx, `
			SELECT COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0),
			       COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0)
			FROM invoices`,
		).Scan(&card.PaidCents, &card.PendingCents)
		if err != nil {
			return fmt.Errorf("sum invoice totals: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard cards: %w", err)
	}
	return card, nil
}
