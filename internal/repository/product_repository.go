package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/maxcopy/maxcopy-backend/internal/models"
)

const productColumns = "id, name, sku, price, is_active, created_at"

// ProductRepository encapsulates all database operations for products.
// It returns (nil, nil) for rows that do not exist and never raises
// domain-level errors; that mapping belongs to the service layer.
type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(s scanner) (*models.Product, error) {
	var p models.Product
	var sku sql.NullString
	var price decimal.NullDecimal
	if err := s.Scan(&p.ID, &p.Name, &sku, &price, &p.IsActive, &p.CreatedAt); err != nil {
		return nil, err
	}
	if sku.Valid {
		p.SKU = &sku.String
	}
	if price.Valid {
		p.Price = &price.Decimal
	}
	return &p, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

// GetByID returns a single product by ID, or (nil, nil) if not found.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = ?", id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return p, err
}

// List returns products ordered newest-first with pagination.
func (r *ProductRepository) List(ctx context.Context, offset, limit int) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+productColumns+" FROM products ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?",
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

// Create persists a new product and returns the row as stored, including
// the server-assigned id, is_active default and created_at.
func (r *ProductRepository) Create(ctx context.Context, in models.CreateProductInput) (*models.Product, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO products (name, sku, price) VALUES (?, ?, ?)",
		in.Name, in.SKU, nullDecimal(in.Price))
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Update applies a merge-patch: the SET clause is built only from the
// fields present in the input, so omitted fields stay untouched. An empty
// patch issues no UPDATE at all and returns the current row.
func (r *ProductRepository) Update(ctx context.Context, id int64, in models.UpdateProductInput) (*models.Product, error) {
	setParts := []string{}
	args := []interface{}{}

	if in.Name != nil {
		setParts = append(setParts, "name = ?")
		args = append(args, *in.Name)
	}
	if in.SKU != nil {
		setParts = append(setParts, "sku = ?")
		args = append(args, *in.SKU)
	}
	if in.Price != nil {
		setParts = append(setParts, "price = ?")
		args = append(args, nullDecimal(in.Price))
	}
	if in.IsActive != nil {
		setParts = append(setParts, "is_active = ?")
		args = append(args, *in.IsActive)
	}

	if len(setParts) == 0 {
		return r.GetByID(ctx, id)
	}

	query := fmt.Sprintf("UPDATE products SET %s WHERE id = ?", strings.Join(setParts, ", "))
	args = append(args, id)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes the product row. Associated ai_contents rows are removed
// by the ON DELETE CASCADE foreign key in the same statement.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	return err
}
