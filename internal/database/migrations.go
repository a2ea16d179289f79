package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

// Migration is one step in the schema history. Versions are applied in
// order and recorded in schema_migrations, so the chain below is the single
// source of truth for the persisted schema.
type Migration struct {
	Version int
	Name    string
	Stmts   []string
}

// Migrations is the ordered, linear migration chain.
var Migrations = []Migration{
	{
		Version: 1,
		Name:    "create products table",
		Stmts: []string{`
			CREATE TABLE IF NOT EXISTS products (
				id BIGINT NOT NULL AUTO_INCREMENT,
				name VARCHAR(255) NOT NULL,
				sku VARCHAR(100) NULL,
				price DECIMAL(10,2) NULL,
				is_active BOOLEAN NOT NULL DEFAULT TRUE,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				PRIMARY KEY (id),
				UNIQUE KEY ux_products_sku (sku),
				KEY ix_products_name (name)
			) ENGINE=InnoDB`,
		},
	},
	{
		Version: 2,
		Name:    "create ai_contents table",
		Stmts: []string{`
			CREATE TABLE IF NOT EXISTS ai_contents (
				id BIGINT NOT NULL AUTO_INCREMENT,
				product_id BIGINT NOT NULL,
				channel VARCHAR(50) NOT NULL,
				content_type VARCHAR(50) NOT NULL,
				payload JSON NOT NULL,
				approved BOOLEAN NOT NULL DEFAULT FALSE,
				last_model_used VARCHAR(100) NULL,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				PRIMARY KEY (id),
				KEY ix_ai_contents_product_channel_type (product_id, channel, content_type),
				CONSTRAINT fk_ai_contents_product
					FOREIGN KEY (product_id) REFERENCES products (id)
					ON DELETE CASCADE
			) ENGINE=InnoDB`,
		},
	},
}

// Migrate brings the database up to the latest version. Each pending
// migration runs in its own transaction together with its version record.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INT NOT NULL,
			name VARCHAR(255) NOT NULL,
			applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (version)
		) ENGINE=InnoDB`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	var current int
	err = db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&current)
	if err != nil {
		return fmt.Errorf("failed to read current schema version: %w", err)
	}

	for _, m := range Migrations {
		if m.Version <= current {
			continue
		}
		if err := apply(ctx, db, m); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}
	return nil
}

func apply(ctx context.Context, db *sql.DB, m Migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range m.Stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO schema_migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
		return err
	}
	return tx.Commit()
}
