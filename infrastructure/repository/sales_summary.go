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
	salesSummaryTable = "sales_summary ss"
)

type SalesSummaryRepository interface {
	SaveOrUpdate(summary *domain.SalesSummary) error
	GetByDate(date time.Time) (*domain.SalesSummary, error)
	GetLatestBefore(date time.Time) (*domain.SalesSummary, error)
	ListRecent(limit uint64) ([]*domain.SalesSummary, error)
}

type salesSummaryRepository struct {
	conn *postgres.Connection
}

func NewSalesSummaryRepository(conn *postgres.Connection) SalesSummaryRepository {
	return &salesSummaryRepository{
		conn: conn,
	}
}

// SaveOrUpdate inserts the rollup row for summary.Date or refreshes it
// when one already exists. The id of the winning row is written back
// into summary.
func (r *salesSummaryRepository) SaveOrUpdate(summary *domain.SalesSummary) error {
	query := squirrel.StatementBuilder.
		Insert("sales_summary").
		Columns("id", "total_value", "change_percentage", "date").
		Values(
			summary.ID,
			summary.TotalValue,
			summary.ChangePercentage,
			summary.Date.Format(time.DateOnly),
		).
		Suffix(`
			ON CONFLICT (date) DO UPDATE SET
				total_value = EXCLUDED.total_value,
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

func (r *salesSummaryRepository) GetByDate(date time.Time) (*domain.SalesSummary, error) {
	query, args, err := squirrel.
		Select("ss.id, ss.total_value, ss.change_percentage, ss.date").
		From(salesSummaryTable).
		Where(squirrel.Eq{"ss.date": date.Format(time.DateOnly)}).
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
		return nil, fmt.Errorf("error scanning sales summary: %w", err)
	}

	return summary, nil
}

// GetLatestBefore returns the most recent rollup strictly before date,
// the baseline for the day-over-day change percentage.
func (r *salesSummaryRepository) GetLatestBefore(date time.Time) (*domain.SalesSummary, error) {
	query, args, err := squirrel.
		Select("ss.id, ss.total_value, ss.change_percentage, ss.date").
		From(salesSummaryTable).
		Where(squirrel.Lt{"ss.date": date.Format(time.DateOnly)}).
		OrderBy("ss.date DESC").
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
		return nil, fmt.Errorf("error scanning sales summary: %w", err)
	}

	return summary, nil
}

func (r *salesSummaryRepository) ListRecent(limit uint64) ([]*domain.SalesSummary, error) {
	query, args, err := squirrel.
		Select("ss.id, ss.total_value, ss.change_percentage, ss.date").
		From(salesSummaryTable).
		OrderBy("ss.date DESC").
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

	summaries := make([]*domain.SalesSummary, 0)
	for rows.Next() {
		summary, err := r.scanSummaryRows(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning sales summary: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}

	return summaries, nil
}

func (r *salesSummaryRepository) scanSummary(row *sql.Row) (*domain.SalesSummary, error) {
	summary := &domain.SalesSummary{}

	err := row.Scan(
		&summary.ID,
		&summary.TotalValue,
		&summary.ChangePercentage,
		&summary.Date,
	)
	if err != nil {
		return nil, err
	}

	return summary, nil
}

func (r *salesSummaryRepository) scanSummaryRows(rows *sql.Rows) (*domain.SalesSummary, error) {
	summary := &domain.SalesSummary{}

	err := rows.Scan(
		&summary.ID,
		&summary.TotalValue,
		&summary.ChangePercentage,
		&summary.Date,
	)
	if err != nil {
		return nil, err
	}

	return summary, nil
}
