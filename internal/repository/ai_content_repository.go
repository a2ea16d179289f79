package repository

import (
	"context"
	"database/sql"

	"github.com/maxcopy/maxcopy-backend/internal/models"
)

const aiContentColumns = "id, product_id, channel, content_type, payload, approved, last_model_used, created_at"

// AIContentRepository encapsulates all database operations for ai_contents.
// There is no update or delete: rows only disappear through the cascade
// when the parent product is deleted.
type AIContentRepository struct {
	db *sql.DB
}

func NewAIContentRepository(db *sql.DB) *AIContentRepository {
	return &AIContentRepository{db: db}
}

func scanAIContent(s scanner) (*models.AIContent, error) {
	var c models.AIContent
	var lastModel sql.NullString
	if err := s.Scan(&c.ID, &c.ProductID, &c.Channel, &c.ContentType, &c.Payload, &c.Approved, &lastModel, &c.CreatedAt); err != nil {
		return nil, err
	}
	if lastModel.Valid {
		c.LastModelUsed = &lastModel.String
	}
	return &c, nil
}

// GetByID returns a single AI content row by ID, or (nil, nil) if not found.
func (r *AIContentRepository) GetByID(ctx context.Context, id int64) (*models.AIContent, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+aiContentColumns+" FROM ai_contents WHERE id = ?", id)
	c, err := scanAIContent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return c, err
}

// ListByProduct returns AI contents for a product, newest-first. An empty
// channel or contentType means that filter is not applied; both filters are
// independent exact matches.
func (r *AIContentRepository) ListByProduct(ctx context.Context, productID int64, channel, contentType string) ([]models.AIContent, error) {
	query := "SELECT " + aiContentColumns + " FROM ai_contents WHERE product_id = ?"
	args := []interface{}{productID}

	if channel != "" {
		query += " AND channel = ?"
		args = append(args, channel)
	}
	if contentType != "" {
		query += " AND content_type = ?"
		args = append(args, contentType)
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contents := []models.AIContent{}
	for rows.Next() {
		c, err := scanAIContent(rows)
		if err != nil {
			return nil, err
		}
		contents = append(contents, *c)
	}
	return contents, rows.Err()
}

// Create persists a new AI content row and returns it as stored.
func (r *AIContentRepository) Create(ctx context.Context, in models.CreateAIContentInput) (*models.AIContent, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO ai_contents (product_id, channel, content_type, payload, approved, last_model_used) VALUES (?, ?, ?, ?, ?, ?)",
		in.ProductID, in.Channel, in.ContentType, in.Payload, in.Approved, in.LastModelUsed)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}
