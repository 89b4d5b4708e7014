package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"rozetka-scraper/models"
)

// PostgresWriter mirrors parsed products into PostgreSQL, keyed by detail URL.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema migrations,
// and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS products (
			id              SERIAL PRIMARY KEY,
			url             TEXT        UNIQUE NOT NULL,
			title           TEXT        NOT NULL DEFAULT '',
			image_src       TEXT        NOT NULL DEFAULT '',
			price           TEXT        NOT NULL DEFAULT '',
			characteristics JSONB       NOT NULL DEFAULT '{}',
			scraped_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_products_title ON products(title);
	`)
	return err
}

const upsertProduct = `
	INSERT INTO products (url, title, image_src, price, characteristics)
	VALUES ($1, $2, $3, $4, $5::jsonb)
	ON CONFLICT (url) DO UPDATE SET
		title           = EXCLUDED.title,
		image_src       = EXCLUDED.image_src,
		price           = EXCLUDED.price,
		characteristics = EXCLUDED.characteristics,
		scraped_at      = NOW()
`

// Write upserts one product.
func (pw *PostgresWriter) Write(p *models.Product) error {
	if _, err := pw.db.Exec(upsertProduct, productArgs(p)...); err != nil {
		return fmt.Errorf("postgres: upsert %q: %w", p.URL, err)
	}
	return nil
}

func productArgs(p *models.Product) []interface{} {
	return []interface{}{p.URL, p.Title, p.ImageSrc, p.Price, p.Characteristics.String()}
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}
