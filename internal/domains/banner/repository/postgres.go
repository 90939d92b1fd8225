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

	"publishing-backend/internal/domains/banner"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) banner.Repository {
	return &postgresRepository{pool: pool}
}

const bannerColumns = `
	id, type, title, subtitle, description, image, image_file,
	button_text, button_link, content_id, content_model,
	is_active, priority, start_date, end_date,
	background_color, text_color, settings, created_at, updated_at
`

func (r *postgresRepository) Create(ctx context.Context, b *banner.Banner) error {
	settings, err := json.Marshal(b.Settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	query := `
		INSERT INTO banners (
			id, type, title, subtitle, description, image, image_file,
			button_text, button_link, content_id, content_model,
			is_active, priority, start_date, end_date,
			background_color, text_color, settings, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11,
			$12, $13, $14, $15,
			$16, $17, $18, $19, $20
		)
	`

	_, err = r.pool.Exec(ctx, query,
		b.ID, b.Type, b.Title, b.Subtitle, b.Description, b.Image, b.ImageFile,
		b.ButtonText, b.ButtonLink, b.ContentID, b.ContentModel,
		b.IsActive, b.Priority, b.StartDate, b.EndDate,
		b.BackgroundColor, b.TextColor, settings, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert banner: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*banner.Banner, error) {
	query := fmt.Sprintf(`SELECT %s FROM banners WHERE id = $1`, bannerColumns)

	b, err := scanBanner(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, banner.ErrBannerNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *postgresRepository) ListActive(ctx context.Context, bannerType *banner.Type, limit int, now time.Time) ([]banner.Banner, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM banners
		WHERE is_active = true
		  AND start_date <= $1
		  AND (end_date IS NULL OR end_date > $1)
	`, bannerColumns)

	args := []interface{}{now}
	if bannerType != nil {
		query += ` AND type = $2`
		args = append(args, *bannerType)
	}
	query += fmt.Sprintf(` ORDER BY priority DESC, created_at DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	defer rows.Close()

	banners := []banner.Banner{}
	for rows.Next() {
		b, err := scanBanner(rows)
		if err != nil {
			return nil, err
		}
		banners = append(banners, *b)
	}
	return banners, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, b *banner.Banner) error {
	settings, err := json.Marshal(b.Settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	query := `
		UPDATE banners SET
			type = $2, title = $3, subtitle = $4, description = $5,
			image = $6, image_file = $7, button_text = $8, button_link = $9,
			content_id = $10, content_model = $11, is_active = $12,
			priority = $13, start_date = $14, end_date = $15,
			background_color = $16, text_color = $17, settings = $18,
			updated_at = now()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		b.ID, b.Type, b.Title, b.Subtitle, b.Description,
		b.Image, b.ImageFile, b.ButtonText, b.ButtonLink,
		b.ContentID, b.ContentModel, b.IsActive,
		b.Priority, b.StartDate, b.EndDate,
		b.BackgroundColor, b.TextColor, settings,
	)
	if err != nil {
		return fmt.Errorf("update banner: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return banner.ErrBannerNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete banner: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return banner.ErrBannerNotFound
	}
	return nil
}

func (r *postgresRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE banners
		SET is_active = false, updated_at = now()
		WHERE is_active = true AND end_date IS NOT NULL AND end_date < $1
	`
	tag, err := r.pool.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("deactivate expired banners: %w", err)
	}
	return tag.RowsAffected(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBanner(row rowScanner) (*banner.Banner, error) {
	var b banner.Banner
	var settings []byte

	err := row.Scan(
		&b.ID, &b.Type, &b.Title, &b.Subtitle, &b.Description, &b.Image, &b.ImageFile,
		&b.ButtonText, &b.ButtonLink, &b.ContentID, &b.ContentModel,
		&b.IsActive, &b.Priority, &b.StartDate, &b.EndDate,
		&b.BackgroundColor, &b.TextColor, &settings, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan banner: %w", err)
	}

	b.Settings = banner.DefaultSettings()
	if len(settings) > 0 {
		if err := json.Unmarshal(settings, &b.Settings); err != nil {
			return nil, fmt.Errorf("unmarshal settings: %w", err)
		}
	}

	return &b, nil
}
