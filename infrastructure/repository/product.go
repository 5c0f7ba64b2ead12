package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/inventory-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-insights-api/internal/domain"
)

const (
	productsTable = "products p"
)

type ProductRepository interface {
	ListProducts(search string) ([]*domain.Product, error)
	ListTopByStock(limit uint64) ([]*domain.Product, error)
	GetProductByID(productID string) (*domain.Product, error)
	CreateProduct(product *domain.Product) (*domain.Product, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

// ListProducts returns products ordered by name. A non-empty search
// filters by case-insensitive substring match on the name.
func (r *productRepository) ListProducts(search string) ([]*domain.Product, error) {
	queryBuilder := squirrel.
		Select("p.id", "p.name", "p.price", "p.rating", "p.stock_quantity", "p.image_url").
		From(productsTable).
		OrderBy("p.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if search != "" {
		queryBuilder = queryBuilder.Where(squirrel.ILike{"p.name": fmt.Sprintf("%%%s%%", search)})
	}

	productsSQL, productsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.Query(productsSQL, productsArgs...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := r.scanProductRows(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}

	return products, nil
}

// ListTopByStock returns the products with the largest stock quantity,
// used as the popular products block on the dashboard.
func (r *productRepository) ListTopByStock(limit uint64) ([]*domain.Product, error) {
	queryBuilder := squirrel.
		Select("p.id", "p.name", "p.price", "p.rating", "p.stock_quantity", "p.image_url").
		From(productsTable).
		OrderBy("p.stock_quantity DESC", "p.name ASC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	productsSQL, productsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.Query(productsSQL, productsArgs...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := r.scanProductRows(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}

	return products, nil
}

func (r *productRepository) GetProductByID(productID string) (*domain.Product, error) {
	queryBuilder := squirrel.
		Select("p.id", "p.name", "p.price", "p.rating", "p.stock_quantity", "p.image_url").
		From(productsTable).
		Where(squirrel.Eq{"p.id": productID}).
		PlaceholderFormat(squirrel.Dollar)

	productSQL, productArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	row := r.conn.QueryRow(productSQL, productArgs...)
	product, err := r.scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning product: %w", err)
	}

	return product, nil
}

func (r *productRepository) CreateProduct(product *domain.Product) (*domain.Product, error) {
	queryBuilder := squirrel.
		Insert("products").
		Columns("id", "name", "price", "rating", "stock_quantity", "image_url").
		Values(product.ID, product.Name, product.Price, product.Rating, product.StockQuantity, product.ImageURL).
		PlaceholderFormat(squirrel.Dollar)

	productSQL, productArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	_, err = r.conn.Exec(productSQL, productArgs...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return product, nil
}

func (r *productRepository) scanProduct(row *sql.Row) (*domain.Product, error) {
	product := &domain.Product{}

	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.Rating,
		&product.StockQuantity,
		&product.ImageURL,
	)
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) scanProductRows(rows *sql.Rows) (*domain.Product, error) {
	product := &domain.Product{}

	err := rows.Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.Rating,
		&product.StockQuantity,
		&product.ImageURL,
	)
	if err != nil {
		return nil, err
	}

	return product, nil
}
