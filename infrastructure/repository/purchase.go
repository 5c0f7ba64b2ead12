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
	purchasesTable = "purchases pu"
)

type PurchaseRepository interface {
	CreatePurchase(purchase *domain.Purchase) error
	SumByDate(date time.Time) (float64, error)
}

type purchaseRepository struct {
	conn *postgres.Connection
}

func NewPurchaseRepository(conn *postgres.Connection) PurchaseRepository {
	return &purchaseRepository{
		conn: conn,
	}
}

func (r *purchaseRepository) CreatePurchase(purchase *domain.Purchase) error {
	queryBuilder := squirrel.
		Insert("purchases").
		Columns("id", "product_id", "timestamp", "quantity", "unit_cost", "total_cost").
		Values(purchase.ID, purchase.ProductID, purchase.Timestamp, purchase.Quantity, purchase.UnitCost, purchase.TotalCost).
		PlaceholderFormat(squirrel.Dollar)

	purchaseSQL, purchaseArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	_, err = r.conn.Exec(purchaseSQL, purchaseArgs...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// SumByDate returns the total purchased amount for a single calendar day.
func (r *purchaseRepository) SumByDate(date time.Time) (float64, error) {
	queryBuilder := squirrel.
		Select("COALESCE(SUM(pu.total_cost), 0)").
		From(purchasesTable).
		Where(squirrel.Expr("DATE(pu.timestamp) = ?", date.Format(time.DateOnly))).
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
