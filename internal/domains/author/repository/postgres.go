package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"publishing-backend/internal/domains/author"
)

// postgresRepository is the concrete author.Repository implementation.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

const authorColumns = `
	id, name, email, password_hash, image, image_file,
	is_active, intro, bio, specialties, is_featured, priority,
	sections, role, created_at, updated_at
`

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) error {
	sections, err := json.Marshal(a.Sections)
	if err != nil {
		return fmt.Errorf("marshal sections: %w", err)
	}

	query := `
		INSERT INTO authors (
			id, name, email, password_hash, image, image_file,
			is_active, intro, bio, specialties, is_featured, priority,
			sections, role, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16
		)
	`

	_, err = r.pool.Exec(ctx, query,
		a.ID,
		a.Name,
		a.Email,
		a.PasswordHash,
		a.Image,
		a.ImageFile,
		a.IsActive,
		a.Intro,
		a.Bio,
		pq.Array(a.Specialties),
		a.IsFeatured,
		a.Priority,
		sections,
		a.Role,
		a.CreatedAt,
		a.UpdatedAt,
	)

	if err != nil {
		// 23505 = unique_violation on the email index
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return author.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert author: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	query := fmt.Sprintf(`SELECT %s FROM authors WHERE id = $1`, authorColumns)
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*author.Author, error) {
	query := fmt.Sprintf(`SELECT %s FROM authors WHERE email = lower($1)`, authorColumns)
	return r.scanOne(r.pool.QueryRow(ctx, query, email))
}

func (r *postgresRepository) List(ctx context.Context, activeOnly bool) ([]author.Author, error) {
	query := fmt.Sprintf(`SELECT %s FROM authors`, authorColumns)
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY priority DESC, name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	defer rows.Close()

	authors := []author.Author{}
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, err
		}
		authors = append(authors, *a)
	}
	return authors, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, a *author.Author) error {
	sections, err := json.Marshal(a.Sections)
	if err != nil {
		return fmt.Errorf("marshal sections: %w", err)
	}

	query := `
		UPDATE authors SET
			name = $2, email = $3, password_hash = $4, image = $5,
			image_file = $6, is_active = $7, intro = $8, bio = $9,
			specialties = $10, is_featured = $11, priority = $12,
			sections = $13, role = $14, updated_at = now()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		a.ID,
		a.Name,
		a.Email,
		a.PasswordHash,
		a.Image,
		a.ImageFile,
		a.IsActive,
		a.Intro,
		a.Bio,
		pq.Array(a.Specialties),
		a.IsFeatured,
		a.Priority,
		sections,
		a.Role,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return author.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

func (r *postgresRepository) SetVisibilityAll(ctx context.Context, isActive bool) (int64, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE authors SET is_active = $1, updated_at = now()`, isActive)
	if err != nil {
		return 0, fmt.Errorf("bulk set visibility: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ========================================
// SCAN HELPERS
// ========================================

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *postgresRepository) scanOne(row pgx.Row) (*author.Author, error) {
	a, err := scanAuthor(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, author.ErrAuthorNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func scanAuthor(row rowScanner) (*author.Author, error) {
	var a author.Author
	var sections []byte

	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Email,
		&a.PasswordHash,
		&a.Image,
		&a.ImageFile,
		&a.IsActive,
		&a.Intro,
		&a.Bio,
		pq.Array(&a.Specialties),
		&a.IsFeatured,
		&a.Priority,
		&sections,
		&a.Role,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan author: %w", err)
	}

	if len(sections) > 0 {
		if err := json.Unmarshal(sections, &a.Sections); err != nil {
			return nil, fmt.Errorf("unmarshal sections: %w", err)
		}
	}
	if a.Sections == nil {
		a.Sections = []author.Section{}
	}
	if a.Specialties == nil {
		a.Specialties = []string{}
	}

	return &a, nil
}
