package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/inventory-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-insights-api/internal/domain"
)

const (
	purchaseSummaryTable = "purchase_summary ps"
)

type PurchaseSummaryRepository interface {
	SaveOrUpdate(summary *domain.PurchaseSummary) error
	GetByDate(date time.Time) (*domain.PurchaseSummary, error)
	GetLatestBefore(date time.Time) (*domain.PurchaseSummary, error)
	ListRecent(limit uint64) ([]*domain.PurchaseSummary, error)
}

type purchaseSummaryRepository struct {
	conn *postgres.Connection
}

func NewPurchaseSummaryRepository(conn *postgres.Connection) PurchaseSummaryRepository {
	return &purchaseSummaryRepository{
		conn: conn,
	}
}

// SaveOrUpdate inserts the rollup row for summary.Date or refreshes it
// when one already exists. The id of the winning row is written back
// into summary.
func (r *purchaseSummaryRepository) SaveOrUpdate(summary *domain.PurchaseSummary) error {
	query := squirrel.StatementBuilder.
		Insert("purchase_summary").
		Columns("id", "total_purchased", "change_percentage", "date").
		Values(
			summary.ID,
			summary.TotalPurchased,
			summary.ChangePercentage,
			summary.Date.Format(time.DateOnly),
		).
		Suffix(`
			ON CONFLICT (date) DO UPDATE SET
				total_purchased = EXCLUDED.total_purchased,
				change_percentage = EXCLUDED.change_percentage,
				updated_at = NOW()
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	err = r.conn.QueryRow(sqlQuery, args...).Scan(&summary.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

func (r *purchaseSummaryRepository) GetByDate(date time.Time) (*domain.PurchaseSummary, error) {
	query, args, err := squirrel.
		Select("ps.id, ps.total_purchased, ps.change_percentage, ps.date").
		From(purchaseSummaryTable).
		Where(squirrel.Eq{"ps.date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	summary, err := r.scanSummary(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning purchase summary: %w", err)
	}

	return summary, nil
}

// GetLatestBefore returns the most recent rollup strictly before date,
// the baseline for the day-over-day change percentage.
func (r *purchaseSummaryRepository) GetLatestBefore(date time.Time) (*domain.PurchaseSummary, error) {
	query, args, err := squirrel.
		Select("ps.id, ps.total_purchased, ps.change_percentage, ps.date").
		From(purchaseSummaryTable).
		Where(squirrel.Lt{"ps.date": date.Format(time.DateOnly)}).
		OrderBy("ps.date DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	summary, err := r.scanSummary(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning purchase summary: %w", err)
	}

	return summary, nil
}

func (r *purchaseSummaryRepository) ListRecent(limit uint64) ([]*domain.PurchaseSummary, error) {
	query, args, err := squirrel.
		Select("ps.id, ps.total_purchased, ps.change_percentage, ps.date").
		From(purchaseSummaryTable).
		OrderBy("ps.date DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	summaries := make([]*domain.PurchaseSummary, 0)
	for rows.Next() {
		summary, err := r.scanSummaryRows(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning purchase summary: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}

	return summaries, nil
}

func (r *purchaseSummaryRepository) scanSummary(row *sql.Row) (*domain.PurchaseSummary, error) {
	summary := &domain.PurchaseSummary{}

	err := row.Scan(
		&summary.ID,
		&summary.TotalPurchased,
		&summary.ChangePercentage,
		&summary.Date,
	)
	if err != nil {
		return nil, err
	}

	return summary, nil
}

func (r *purchaseSummaryRepository) scanSummaryRows(rows *sql.Rows) (*domain.PurchaseSummary, error) {
	summary := &domain.PurchaseSummary{}

	err := rows.Scan(
		&summary.ID,
		&summary.TotalPurchased,
		&summary.ChangePercentage,
		&summary.Date,
	)
	if err != nil {
		return nil, err
	}

	return summary, nil
}
