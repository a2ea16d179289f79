package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// JSONMap stores an arbitrary JSON object in a JSON column.
type JSONMap map[string]interface{}

// Value implements driver.Valuer so JSONMap can be written to a JSON column.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner so JSONMap can be read back from a JSON column.
func (m *JSONMap) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported type %T for JSONMap", src)
	}
}

// AIContent is the model for the 'ai_contents' table. Each row is one AI
// result for a specific product, channel (ebay, shopify, instagram, ...)
// and content type (title, description, full_listing, caption, ...).
// Rows are never updated in place; a row leaves the table only when its
// parent product is deleted and the cascade removes it.
type AIContent struct {
	ID            int64     `json:"id" db:"id"`
	ProductID     int64     `json:"product_id" db:"product_id"`
	Channel       string    `json:"channel" db:"channel"`
	ContentType   string    `json:"content_type" db:"content_type"`
	Payload       JSONMap   `json:"payload" db:"payload"`
	Approved      bool      `json:"approved" db:"approved"`
	LastModelUsed *string   `json:"last_model_used,omitempty" db:"last_model_used"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// CreateAIContentInput is the request body for creating an AI content row
// directly, without going through the generation workflow. Approved defaults
// to false; a human approval step flips it later.
type CreateAIContentInput struct {
	ProductID     int64   `json:"product_id"`
	Channel       string  `json:"channel" binding:"required,max=50"`
	ContentType   string  `json:"content_type" binding:"required,max=50"`
	Payload       JSONMap `json:"payload" binding:"required"`
	Approved      bool    `json:"approved"`
	LastModelUsed *string `json:"last_model_used" binding:"omitempty,max=100"`
}
