package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/inventory-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-insights-api/internal/domain"
)

const (
	expensesTable = "expenses e"
)

type ExpenseRepository interface {
	CreateExpense(expense *domain.Expense) error
	SumByDate(date time.Time) (float64, error)
	SumByCategoryForDate(date time.Time) ([]*domain.CategoryTotal, error)
}

type expenseRepository struct {
	conn *postgres.Connection
}

func NewExpenseRepository(conn *postgres.Connection) ExpenseRepository {
	return &expenseRepository{
		conn: conn,
	}
}

func (r *expenseRepository) CreateExpense(expense *domain.Expense) error {
	queryBuilder := squirrel.
		Insert("expenses").
		Columns("id", "category", "amount", "timestamp").
		Values(expense.ID, expense.Category, expense.Amount, expense.Timestamp).
		PlaceholderFormat(squirrel.Dollar)

	expenseSQL, expenseArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	_, err = r.conn.Exec(expenseSQL, expenseArgs...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// SumByDate returns the total spent amount for a single calendar day.
func (r *expenseRepository) SumByDate(date time.Time) (float64, error) {
	queryBuilder := squirrel.
		Select("COALESCE(SUM(e.amount), 0)").
		From(expensesTable).
		Where(squirrel.Expr("DATE(e.timestamp) = ?", date.Format(time.DateOnly))).
		PlaceholderFormat(squirrel.Dollar)

	sumSQL, sumArgs, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRow(sumSQL, sumArgs...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return total, nil
}

// SumByCategoryForDate groups a single day of expenses by category.
func (r *expenseRepository) SumByCategoryForDate(date time.Time) ([]*domain.CategoryTotal, error) {
	queryBuilder := squirrel.
		Select("e.category", "COALESCE(SUM(e.amount), 0) AS total").
		From(expensesTable).
		Where(squirrel.Expr("DATE(e.timestamp) = ?", date.Format(time.DateOnly))).
		GroupBy("e.category").
		OrderBy("e.category ASC").
		PlaceholderFormat(squirrel.Dollar)

	sumSQL, sumArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.Query(sumSQL, sumArgs...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	totals := make([]*domain.CategoryTotal, 0)
	for rows.Next() {
		total := &domain.CategoryTotal{}
		if err := rows.Scan(&total.Category, &total.Amount); err != nil {
			return nil, fmt.Errorf("error scanning category total: %w", err)
		}
		totals = append(totals, total)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}

	return totals, nil
}
