package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/aarohi-store/storefront/internal/models"
)

type ProductRepo struct {
	db *sql.DB
}

func NewProductRepo(db *sql.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

const productColumns = `id, name, price, sale_price, images, category, in_stock, rating, review_count, badge`

// ListProducts returns the full catalog ordered by name.
func (r *ProductRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// GetProduct returns the product with the given id, or nil when unknown.
func (r *ProductRepo) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var (
		p         models.Product
		salePrice sql.NullFloat64
		badge     sql.NullString
		images    pq.StringArray
	)

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&salePrice,
		&images,
		&p.Category,
		&p.InStock,
		&p.Rating,
		&p.ReviewCount,
		&badge,
	)
	if err != nil {
		return models.Product{}, err
	}

	if salePrice.Valid {
		v := salePrice.Float64
		p.SalePrice = &v
	}
	p.Badge = badge.String
	p.Images = []string(images)
	return p, nil
}
