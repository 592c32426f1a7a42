package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/folderforge/folderforge/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return common.ErrorAlreadyExists
	}
	return fmt.Errorf("error performing sql request: %w", err)
}

type PostgresBlogPostRepository struct {
	db *sql.DB
}

func NewPostgresBlogPostRepository(db *sql.DB) *PostgresBlogPostRepository {
	return &PostgresBlogPostRepository{db: db}
}

const blogPostColumns = `id, slug, title, content, excerpt, published, published_at, views`

func (r *PostgresBlogPostRepository) Create(ctx context.Context, p *BlogPost) (*BlogPost, error) {
	query :=
		`INSERT INTO blog_posts (id, slug, title, content, excerpt, published, published_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 `

	_, err := r.db.ExecContext(ctx, query, p.ID, p.Slug, p.Title, p.Content, p.Excerpt, p.Published, p.PublishedAt)
	if err != nil {
		return nil, mapPgError(err)
	}

	return p, nil
}

func (r *PostgresBlogPostRepository) Get(ctx context.Context, id string) (*BlogPost, error) {
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts WHERE id = $1`
	return r.scanRow(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresBlogPostRepository) GetPublishedBySlug(ctx context.Context, slug string) (*BlogPost, error) {
	// Single-statement read + counter bump keeps the increment atomic.
	query :=
		`UPDATE blog_posts SET views = views + 1
		 WHERE slug = $1 AND published
		 RETURNING ` + blogPostColumns

	return r.scanRow(r.db.QueryRowContext(ctx, query, slug))
}

func (r *PostgresBlogPostRepository) List(ctx context.Context, publishedOnly bool) ([]*BlogPost, error) {
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts`
	if publishedOnly {
		query += ` WHERE published`
	}
	query += ` ORDER BY published_at DESC NULLS LAST`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var result []*BlogPost
	for rows.Next() {
		p := &BlogPost{}
		if err := rows.Scan(&p.ID, &p.Slug, &p.Title, &p.Content, &p.Excerpt, &p.Published, &p.PublishedAt, &p.Views); err != nil {
			return nil, err
		}
		result = append(result, p)
	}

	return result, rows.Err()
}

func (r *PostgresBlogPostRepository) Update(ctx context.Context, id string, patch *BlogPostPatch) (*BlogPost, error) {
	query :=
		`UPDATE blog_posts SET
		   slug = COALESCE($2, slug),
		   title = COALESCE($3, title),
		   content = COALESCE($4, content),
		   excerpt = COALESCE($5, excerpt),
		   published = COALESCE($6, published),
		   published_at = CASE
		     WHEN COALESCE($6, published) AND published_at IS NULL THEN now()
		     ELSE published_at
		   END
		 WHERE id = $1
		 RETURNING ` + blogPostColumns

	return r.scanRow(r.db.QueryRowContext(ctx, query, id,
		patch.Slug, patch.Title, patch.Content, patch.Excerpt, patch.Published))
}

func (r *PostgresBlogPostRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (r *PostgresBlogPostRepository) scanRow(row *sql.Row) (*BlogPost, error) {
	p := &BlogPost{}
	err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Content, &p.Excerpt, &p.Published, &p.PublishedAt, &p.Views)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, mapPgError(err)
	}
	return p, nil
}

type PostgresPageRepository struct {
	db *sql.DB
}

func NewPostgresPageRepository(db *sql.DB) *PostgresPageRepository {
	return &PostgresPageRepository{db: db}
}

func (r *PostgresPageRepository) Create(ctx context.Context, p *Page) (*Page, error) {
	query :=
		`INSERT INTO pages (id, slug, title, content)
		 VALUES ($1, $2, $3, $4)
		 `

	_, err := r.db.ExecContext(ctx, query, p.ID, p.Slug, p.Title, p.Content)
	if err != nil {
		return nil, mapPgError(err)
	}

	return p, nil
}

func (r *PostgresPageRepository) GetBySlug(ctx context.Context, slug string) (*Page, error) {
	query := `SELECT id, slug, title, content FROM pages WHERE slug = $1`

	p := &Page{}
	err := r.db.QueryRowContext(ctx, query, slug).Scan(&p.ID, &p.Slug, &p.Title, &p.Content)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return p, nil
}

func (r *PostgresPageRepository) List(ctx context.Context) ([]*Page, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, slug, title, content FROM pages ORDER BY slug`)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var result []*Page
	for rows.Next() {
		p := &Page{}
		if err := rows.Scan(&p.ID, &p.Slug, &p.Title, &p.Content); err != nil {
			return nil, err
		}
		result = append(result, p)
	}

	return result, rows.Err()
}

func (r *PostgresPageRepository) Update(ctx context.Context, id string, patch *PagePatch) (*Page, error) {
	query :=
		`UPDATE pages SET
		   slug = COALESCE($2, slug),
		   title = COALESCE($3, title),
		   content = COALESCE($4, content)
		 WHERE id = $1
		 RETURNING id, slug, title, content
		 `

	p := &Page{}
	err := r.db.QueryRowContext(ctx, query, id, patch.Slug, patch.Title, patch.Content).
		Scan(&p.ID, &p.Slug, &p.Title, &p.Content)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, mapPgError(err)
	}
	return p, nil
}

func (r *PostgresPageRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM pages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}
