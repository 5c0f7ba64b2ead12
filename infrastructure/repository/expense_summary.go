package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/inventory-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-insights-api/internal/domain"
)

const (
	expenseSummaryTable    = "expense_summary es"
	expenseByCategoryTable = "expense_by_category ec"
)

type ExpenseSummaryRepository interface {
	SaveOrUpdateWithCategories(summary *domain.ExpenseSummary, categories []*domain.ExpenseByCategorySummary) error
	ListRecent(limit uint64) ([]*domain.ExpenseSummary, error)
	ListExpenseByCategory(limit uint64) ([]*domain.ExpenseByCategorySummary, error)
}

type expenseSummaryRepository struct {
	conn *postgres.Connection
}

func NewExpenseSummaryRepository(conn *postgres.Connection) ExpenseSummaryRepository {
	return &expenseSummaryRepository{
		conn: conn,
	}
}

// SaveOrUpdateWithCategories writes the daily expense rollup and its
// per-category breakdown in one transaction. Categories of a previous
// run for the same date are replaced, so reprocessing a day never
// leaves stale rows behind.
func (r *expenseSummaryRepository) SaveOrUpdateWithCategories(summary *domain.ExpenseSummary, categories []*domain.ExpenseByCategorySummary) error {
	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		if err := r.upsertSummary(tx, summary); err != nil {
			return err
		}

		deleteSQL, deleteArgs, err := squirrel.
			Delete("expense_by_category").
			Where(squirrel.Eq{"expense_summary_id": summary.ID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("error building query: %w", err)
		}

		if _, err := tx.Exec(deleteSQL, deleteArgs...); err != nil {
			return fmt.Errorf("error executing query: %w", err)
		}

		for _, category := range categories {
			category.ExpenseSummaryID = summary.ID
			if err := r.insertCategory(tx, category); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *expenseSummaryRepository) upsertSummary(q postgres.Queryer, summary *domain.ExpenseSummary) error {
	query := squirrel.StatementBuilder.
		Insert("expense_summary").
		Columns("id", "total_expenses", "date").
		Values(
			summary.ID,
			summary.TotalExpenses,
			summary.Date.Format(time.DateOnly),
		).
		Suffix(`
			ON CONFLICT (date) DO UPDATE SET
				total_expenses = EXCLUDED.total_expenses,
				updated_at = NOW()
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	err = q.QueryRow(sqlQuery, args...).Scan(&summary.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

func (r *expenseSummaryRepository) insertCategory(q postgres.Queryer, category *domain.ExpenseByCategorySummary) error {
	amount, err := strconv.ParseInt(category.Amount, 10, 64)
	if err != nil {
		return fmt.Errorf("error converting category amount %q: %w", category.Amount, err)
	}

	query := squirrel.StatementBuilder.
		Insert("expense_by_category").
		Columns("id", "expense_summary_id", "category", "amount", "date").
		Values(
			category.ID,
			category.ExpenseSummaryID,
			category.Category,
			amount,
			category.Date.Format(time.DateOnly),
		).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	if _, err := q.Exec(sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

func (r *expenseSummaryRepository) ListRecent(limit uint64) ([]*domain.ExpenseSummary, error) {
	query, args, err := squirrel.
		Select("es.id, es.total_expenses, es.date").
		From(expenseSummaryTable).
		OrderBy("es.date DESC").
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

	summaries := make([]*domain.ExpenseSummary, 0)
	for rows.Next() {
		summary := &domain.ExpenseSummary{}
		if err := rows.Scan(&summary.ID, &summary.TotalExpenses, &summary.Date); err != nil {
			return nil, fmt.Errorf("error scanning expense summary: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}

	return summaries, nil
}

// ListExpenseByCategory returns category breakdown rows newest first.
// A zero limit returns every row.
func (r *expenseSummaryRepository) ListExpenseByCategory(limit uint64) ([]*domain.ExpenseByCategorySummary, error) {
	queryBuilder := squirrel.
		Select("ec.id, ec.expense_summary_id, ec.category, ec.amount, ec.date").
		From(expenseByCategoryTable).
		OrderBy("ec.date DESC", "ec.category ASC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(limit)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	categories := make([]*domain.ExpenseByCategorySummary, 0)
	for rows.Next() {
		category, err := r.scanCategoryRows(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning category summary: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}

	return categories, nil
}

func (r *expenseSummaryRepository) scanCategoryRows(rows *sql.Rows) (*domain.ExpenseByCategorySummary, error) {
	category := &domain.ExpenseByCategorySummary{}
	var amount int64

	err := rows.Scan(
		&category.ID,
		&category.ExpenseSummaryID,
		&category.Category,
		&amount,
		&category.Date,
	)
	if err != nil {
		return nil, err
	}

	category.Amount = strconv.FormatInt(amount, 10)

	return category, nil
}
