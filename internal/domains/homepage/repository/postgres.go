package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"publishing-backend/internal/domains/homepage"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) homepage.Repository {
	return &postgresRepository{pool: pool}
}

const contentColumns = `
	id, type, title, subtitle, content,
	is_active, priority, start_date, end_date,
	settings, created_at, updated_at
`

func (r *postgresRepository) Create(ctx context.Context, c *homepage.Content) error {
	settings, err := json.Marshal(c.Settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	query := `
		INSERT INTO homepage_content (
			id, type, title, subtitle, content,
			is_active, priority, start_date, end_date,
			settings, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			$10, $11, $12
		)
	`

	_, err = r.pool.Exec(ctx, query,
		c.ID, c.Type, c.Title, c.Subtitle, []byte(c.Content),
		c.IsActive, c.Priority, c.StartDate, c.EndDate,
		settings, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert homepage content: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*homepage.Content, error) {
	query := fmt.Sprintf(`SELECT %s FROM homepage_content WHERE id = $1`, contentColumns)

	c, err := scanContent(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, homepage.ErrContentNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *postgresRepository) ListActive(ctx context.Context, contentType *homepage.Type, now time.Time) ([]homepage.Content, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM homepage_content
		WHERE is_active = true
		  AND start_date <= $1
		  AND (end_date IS NULL OR end_date > $1)
	`, contentColumns)

	args := []interface{}{now}
	if contentType != nil {
		query += ` AND type = $2`
		args = append(args, *contentType)
	}
	query += ` ORDER BY priority DESC, created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list homepage content: %w", err)
	}
	defer rows.Close()

	blocks := []homepage.Content{}
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, *c)
	}
	return blocks, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, c *homepage.Content) error {
	settings, err := json.Marshal(c.Settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	query := `
		UPDATE homepage_content SET
			type = $2, title = $3, subtitle = $4, content = $5,
			is_active = $6, priority = $7, start_date = $8, end_date = $9,
			settings = $10, updated_at = now()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		c.ID, c.Type, c.Title, c.Subtitle, []byte(c.Content),
		c.IsActive, c.Priority, c.StartDate, c.EndDate,
		settings,
	)
	if err != nil {
		return fmt.Errorf("update homepage content: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return homepage.ErrContentNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM homepage_content WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete homepage content: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return homepage.ErrContentNotFound
	}
	return nil
}

func (r *postgresRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE homepage_content
		SET is_active = false, updated_at = now()
		WHERE is_active = true AND end_date IS NOT NULL AND end_date < $1
	`
	tag, err := r.pool.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("deactivate expired homepage content: %w", err)
	}
	return tag.RowsAffected(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContent(row rowScanner) (*homepage.Content, error) {
	var c homepage.Content
	var payload, settings []byte

	err := row.Scan(
		&c.ID, &c.Type, &c.Title, &c.Subtitle, &payload,
		&c.IsActive, &c.Priority, &c.StartDate, &c.EndDate,
		&settings, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan homepage content: %w", err)
	}

	c.Content = json.RawMessage(payload)
	c.Settings = homepage.DefaultSettings()
	if len(settings) > 0 {
		if err := json.Unmarshal(settings, &c.Settings); err != nil {
			return nil, fmt.Errorf("unmarshal settings: %w", err)
		}
	}

	return &c, nil
}
