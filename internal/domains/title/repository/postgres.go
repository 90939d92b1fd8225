package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"publishing-backend/internal/domains/title"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) title.Repository {
	return &postgresRepository{pool: pool}
}

const titleColumns = `
	t.id, t.title, t.author_id, t.category, t.image, t.description,
	t.priority, t.is_active, t.is_featured, t.tags, t.publish_date,
	t.purchase_links, t.reviews, t.meta_title, t.meta_description,
	t.created_at, t.updated_at,
	COALESCE(a.name, '') AS author_name
`

func (r *postgresRepository) Create(ctx context.Context, t *title.Title) error {
	links, reviews, err := marshalPayloads(t)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO titles (
			id, title, author_id, category, image, description,
			priority, is_active, is_featured, tags, publish_date,
			purchase_links, reviews, meta_title, meta_description,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11,
			$12, $13, $14, $15,
			$16, $17
		)
	`

	_, err = r.pool.Exec(ctx, query,
		t.ID, t.Title, t.AuthorID, t.Category, t.Image, t.Description,
		t.Priority, t.IsActive, t.IsFeatured, pq.Array(t.Tags), t.PublishDate,
		links, reviews, t.MetaTitle, t.MetaDescription,
		t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		// 23503 = foreign_key_violation on author_id
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return title.ErrAuthorNotFound
		}
		return fmt.Errorf("insert title: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*title.Title, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM titles t
		LEFT JOIN authors a ON t.author_id = a.id
		WHERE t.id = $1
	`, titleColumns)

	t, err := scanTitle(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, title.ErrTitleNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *postgresRepository) List(ctx context.Context, f title.Filter) ([]title.Title, int, error) {
	whereClause, args := buildWhereClause(f)

	total, err := r.count(ctx, whereClause, args)
	if err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM titles t
		LEFT JOIN authors a ON t.author_id = a.id
		WHERE %s
		ORDER BY t.priority DESC, t.publish_date DESC
	`, titleColumns, whereClause)

	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, f.Limit, f.Offset)
	}

	titles, err := r.queryMany(ctx, query, args)
	if err != nil {
		return nil, 0, err
	}
	return titles, total, nil
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]title.Title, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM titles t
		LEFT JOIN authors a ON t.author_id = a.id
		ORDER BY t.priority DESC, t.publish_date DESC
	`, titleColumns)

	return r.queryMany(ctx, query, nil)
}

func (r *postgresRepository) Update(ctx context.Context, t *title.Title) error {
	links, reviews, err := marshalPayloads(t)
	if err != nil {
		return err
	}

	query := `
		UPDATE titles SET
			title = $2, author_id = $3, category = $4, image = $5,
			description = $6, priority = $7, is_active = $8,
			is_featured = $9, tags = $10, publish_date = $11,
			purchase_links = $12, reviews = $13, meta_title = $14,
			meta_description = $15, updated_at = now()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		t.ID, t.Title, t.AuthorID, t.Category, t.Image,
		t.Description, t.Priority, t.IsActive,
		t.IsFeatured, pq.Array(t.Tags), t.PublishDate,
		links, reviews, t.MetaTitle,
		t.MetaDescription,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return title.ErrAuthorNotFound
		}
		return fmt.Errorf("update title: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return title.ErrTitleNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM titles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete title: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return title.ErrTitleNotFound
	}
	return nil
}

// ========================================
// HELPERS
// ========================================

// buildWhereClause constructs the WHERE clause from the filter.
func buildWhereClause(f title.Filter) (string, []interface{}) {
	conditions := []string{"true"}
	args := []interface{}{}
	argIndex := 1

	if f.AuthorID != nil {
		conditions = append(conditions, fmt.Sprintf("t.author_id = $%d", argIndex))
		args = append(args, *f.AuthorID)
		argIndex++
	}
	if f.Category != nil {
		conditions = append(conditions, fmt.Sprintf("t.category = $%d", argIndex))
		args = append(args, *f.Category)
		argIndex++
	}
	if f.IsActive != nil {
		conditions = append(conditions, fmt.Sprintf("t.is_active = $%d", argIndex))
		args = append(args, *f.IsActive)
		argIndex++
	}
	if f.IsFeatured != nil {
		conditions = append(conditions, fmt.Sprintf("t.is_featured = $%d", argIndex))
		args = append(args, *f.IsFeatured)
		argIndex++
	}

	return strings.Join(conditions, " AND "), args
}

func (r *postgresRepository) count(ctx context.Context, whereClause string, args []interface{}) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM titles t WHERE %s`, whereClause)

	var total int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count titles: %w", err)
	}
	return total, nil
}

func (r *postgresRepository) queryMany(ctx context.Context, query string, args []interface{}) ([]title.Title, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list titles: %w", err)
	}
	defer rows.Close()

	titles := []title.Title{}
	for rows.Next() {
		t, err := scanTitle(rows)
		if err != nil {
			return nil, err
		}
		titles = append(titles, *t)
	}
	return titles, rows.Err()
}

func marshalPayloads(t *title.Title) (links, reviews []byte, err error) {
	if t.PurchaseLinks == nil {
		t.PurchaseLinks = []title.PurchaseLink{}
	}
	if t.Reviews == nil {
		t.Reviews = []title.Review{}
	}

	links, err = json.Marshal(t.PurchaseLinks)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal purchase links: %w", err)
	}
	reviews, err = json.Marshal(t.Reviews)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal reviews: %w", err)
	}
	return links, reviews, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTitle(row rowScanner) (*title.Title, error) {
	var t title.Title
	var links, reviews []byte

	err := row.Scan(
		&t.ID, &t.Title, &t.AuthorID, &t.Category, &t.Image, &t.Description,
		&t.Priority, &t.IsActive, &t.IsFeatured, pq.Array(&t.Tags), &t.PublishDate,
		&links, &reviews, &t.MetaTitle, &t.MetaDescription,
		&t.CreatedAt, &t.UpdatedAt,
		&t.AuthorName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan title: %w", err)
	}

	if len(links) > 0 {
		if err := json.Unmarshal(links, &t.PurchaseLinks); err != nil {
			return nil, fmt.Errorf("unmarshal purchase links: %w", err)
		}
	}
	if len(reviews) > 0 {
		if err := json.Unmarshal(reviews, &t.Reviews); err != nil {
			return nil, fmt.Errorf("unmarshal reviews: %w", err)
		}
	}
	if t.PurchaseLinks == nil {
		t.PurchaseLinks = []title.PurchaseLink{}
	}
	if t.Reviews == nil {
		t.Reviews = []title.Review{}
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}

	return &t, nil
}
