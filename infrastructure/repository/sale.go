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
	salesTable = "sales s"
)

type SaleRepository interface {
	CreateSale(sale *domain.Sale) error
	SumByDate(date time.Time) (float64, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) CreateSale(sale *domain.Sale) error {
	queryBuilder := squirrel.
		Insert("sales").
		Columns("id", "product_id", "timestamp", "quantity", "unit_price", "total_amount").
		Values(sale.ID, sale.ProductID, sale.Timestamp, sale.Quantity, sale.UnitPrice, sale.TotalAmount).
		PlaceholderFormat(squirrel.Dollar)

	saleSQL, saleArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	_, err = r.conn.Exec(saleSQL, saleArgs...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// SumByDate returns the total sold amount for a single calendar day.
func (r *saleRepository) SumByDate(date time.Time) (float64, error) {
	queryBuilder := squirrel.
		Select("COALESCE(SUM(s.total_amount), 0)").
		From(salesTable).
		Where(squirrel.Expr("DATE(s.timestamp) = ?", date.Format(time.DateOnly))).
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
