package repo

import (
	"context"
	"database/sql"
	"time"

	"shortlink/shortlink/internal/model"
)

type LinkRepo interface {
	GetByURL(ctx context.Context, originalURL string) (model.ShortLink, error)
	GetByCode(ctx context.Context, code string) (model.ShortLink, error)
	Insert(ctx context.Context, id string, code string, originalURL string, expiresAt *time.Time) (model.ShortLink, error)
	IncrementClicks(ctx context.Context, code string) error
	ListAll(ctx context.Context) ([]model.ShortLink, error)
}

type PostgresRepo struct{ db *sql.DB }

func NewPostgres(db *sql.DB) *PostgresRepo { return &PostgresRepo{db} }

func (r *PostgresRepo) GetByURL(ctx context.Context, originalURL string) (model.ShortLink, error) {
	const q = `SELECT id, code, original_url, created_at, expires_at, click_count FROM short_links WHERE original_url=$1`

	var rec model.ShortLink
	err := r.db.QueryRowContext(ctx, q, originalURL).
		Scan(&rec.ID, &rec.Code, &rec.OriginalURL, &rec.CreatedAt, &rec.ExpiresAt, &rec.ClickCount)

	return rec, err
}

func (r *PostgresRepo) GetByCode(ctx context.Context, code string) (model.ShortLink, error) {
	const q = `SELECT id, code, original_url, created_at, expires_at, click_count FROM short_links WHERE code=$1`

	var rec model.ShortLink
	err := r.db.QueryRowContext(ctx, q, code).
		Scan(&rec.ID, &rec.Code, &rec.OriginalURL, &rec.CreatedAt, &rec.ExpiresAt, &rec.ClickCount)

	return rec, err
}

func (r *PostgresRepo) Insert(ctx context.Context, id string, code string, originalURL string, expiresAt *time.Time) (model.ShortLink, error) {
	const q = `
		INSERT INTO short_links (id, code, original_url, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, code, original_url, created_at, expires_at, click_count`

	var rec model.ShortLink

	err := r.db.QueryRowContext(ctx, q, id, code, originalURL, expiresAt).
		Scan(&rec.ID, &rec.Code, &rec.OriginalURL, &rec.CreatedAt, &rec.ExpiresAt, &rec.ClickCount)

	return rec, err
}

// IncrementClicks adds exactly one click. Unknown codes match zero rows and
// are not an error.
func (r *PostgresRepo) IncrementClicks(ctx context.Context, code string) error {
	const q = `UPDATE short_links SET click_count = click_count + 1 WHERE code=$1`

	_, err := r.db.ExecContext(ctx, q, code)
	return err
}

func (r *PostgresRepo) ListAll(ctx context.Context) ([]model.ShortLink, error) {
	const q = `SELECT id, code, original_url, created_at, expires_at, click_count FROM short_links ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []model.ShortLink
	for rows.Next() {
		var rec model.ShortLink
		if err := rows.Scan(&rec.ID, &rec.Code, &rec.OriginalURL, &rec.CreatedAt, &rec.ExpiresAt, &rec.ClickCount); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}
