package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/folderforge/folderforge/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// jsonbArg marshals v for a jsonb parameter. A nil v yields a nil argument
// so COALESCE keeps the stored value.
func jsonbArg(v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

func scanJSONB(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return common.ErrorAlreadyExists
	}
	return fmt.Errorf("error performing sql request: %w", err)
}

// --- operating systems ---

type PostgresOperatingSystemRepository struct {
	db *sql.DB
}

func NewPostgresOperatingSystemRepository(db *sql.DB) *PostgresOperatingSystemRepository {
	return &PostgresOperatingSystemRepository{db: db}
}

func (r *PostgresOperatingSystemRepository) Create(ctx context.Context, os *OperatingSystem) (*OperatingSystem, error) {

	versions, err := jsonbArg(os.Versions)
	if err != nil {
		return nil, err
	}

	query :=
		`INSERT INTO operating_systems (id, name, image, brand_icon, format, versions)
		 VALUES ($1, $2, $3, $4, $5, COALESCE($6::jsonb, '[]'::jsonb))
		 `

	_, err = r.db.ExecContext(ctx, query, os.ID, os.Name, os.Image, os.BrandIcon, os.Format, versions)
	if err != nil {
		return nil, mapPgError(err)
	}

	return os, nil
}

func (r *PostgresOperatingSystemRepository) Get(ctx context.Context, id string) (*OperatingSystem, error) {
	query :=
		`SELECT id, name, image, brand_icon, format, versions FROM operating_systems
		 WHERE id = $1
		 `

	return r.scanRow(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresOperatingSystemRepository) List(ctx context.Context) ([]*OperatingSystem, error) {
	query :=
		`SELECT id, name, image, brand_icon, format, versions FROM operating_systems
		 ORDER BY name
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var result []*OperatingSystem
	for rows.Next() {
		os := &OperatingSystem{}
		var versions []byte
		if err := rows.Scan(&os.ID, &os.Name, &os.Image, &os.BrandIcon, &os.Format, &versions); err != nil {
			return nil, err
		}
		if err := scanJSONB(versions, &os.Versions); err != nil {
			return nil, err
		}
		result = append(result, os)
	}

	return result, rows.Err()
}

func (r *PostgresOperatingSystemRepository) Update(ctx context.Context, id string, patch *OperatingSystemPatch) (*OperatingSystem, error) {

	var versions *string
	if patch.Versions != nil {
		var err error
		versions, err = jsonbArg(*patch.Versions)
		if err != nil {
			return nil, err
		}
	}

	query :=
		`UPDATE operating_systems SET
		   name = COALESCE($2, name),
		   image = COALESCE($3, image),
		   brand_icon = COALESCE($4, brand_icon),
		   format = COALESCE($5, format),
		   versions = COALESCE($6::jsonb, versions)
		 WHERE id = $1
		 RETURNING id, name, image, brand_icon, format, versions
		 `

	return r.scanRow(r.db.QueryRowContext(ctx, query, id,
		patch.Name, patch.Image, patch.BrandIcon, patch.Format, versions))
}

func (r *PostgresOperatingSystemRepository) Delete(ctx context.Context, id string) error {
	// Deleting an absent row is not an error.
	_, err := r.db.ExecContext(ctx, `DELETE FROM operating_systems WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (r *PostgresOperatingSystemRepository) Upsert(ctx context.Context, os *OperatingSystem) error {

	versions, err := jsonbArg(os.Versions)
	if err != nil {
		return err
	}

	query :=
		`INSERT INTO operating_systems (id, name, image, brand_icon, format, versions)
		 VALUES ($1, $2, $3, $4, $5, COALESCE($6::jsonb, '[]'::jsonb))
		 ON CONFLICT (id) DO UPDATE SET
		   name = EXCLUDED.name, image = EXCLUDED.image, brand_icon = EXCLUDED.brand_icon,
		   format = EXCLUDED.format, versions = EXCLUDED.versions
		 `

	_, err = r.db.ExecContext(ctx, query, os.ID, os.Name, os.Image, os.BrandIcon, os.Format, versions)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}

func (r *PostgresOperatingSystemRepository) scanRow(row *sql.Row) (*OperatingSystem, error) {
	os := &OperatingSystem{}
	var versions []byte
	err := row.Scan(&os.ID, &os.Name, &os.Image, &os.BrandIcon, &os.Format, &versions)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	if err := scanJSONB(versions, &os.Versions); err != nil {
		return nil, err
	}
	return os, nil
}

// --- bundles ---

type PostgresBundleRepository struct {
	db *sql.DB
}

func NewPostgresBundleRepository(db *sql.DB) *PostgresBundleRepository {
	return &PostgresBundleRepository{db: db}
}

func (r *PostgresBundleRepository) Create(ctx context.Context, b *Bundle) (*Bundle, error) {

	tags, err := jsonbArg(b.Tags)
	if err != nil {
		return nil, err
	}
	targetOS, err := jsonbArg(b.TargetOS)
	if err != nil {
		return nil, err
	}
	icons, err := jsonbArg(b.Icons)
	if err != nil {
		return nil, err
	}

	query :=
		`INSERT INTO bundles (id, name, description, tags, preview_image, target_os, icons)
		 VALUES ($1, $2, $3, COALESCE($4::jsonb, '[]'::jsonb), $5,
		         COALESCE($6::jsonb, '[]'::jsonb), COALESCE($7::jsonb, '[]'::jsonb))
		 `

	_, err = r.db.ExecContext(ctx, query, b.ID, b.Name, b.Description, tags, b.PreviewImage, targetOS, icons)
	if err != nil {
		return nil, mapPgError(err)
	}

	return b, nil
}

func (r *PostgresBundleRepository) Get(ctx context.Context, id string) (*Bundle, error) {
	query :=
		`SELECT id, name, description, tags, preview_image, target_os, icons FROM bundles
		 WHERE id = $1
		 `

	return r.scanRow(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresBundleRepository) List(ctx context.Context) ([]*Bundle, error) {
	query :=
		`SELECT id, name, description, tags, preview_image, target_os, icons FROM bundles
		 ORDER BY name
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var result []*Bundle
	for rows.Next() {
		b := &Bundle{}
		var tags, targetOS, icons []byte
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &tags, &b.PreviewImage, &targetOS, &icons); err != nil {
			return nil, err
		}
		if err := scanJSONB(tags, &b.Tags); err != nil {
			return nil, err
		}
		if err := scanJSONB(targetOS, &b.TargetOS); err != nil {
			return nil, err
		}
		if err := scanJSONB(icons, &b.Icons); err != nil {
			return nil, err
		}
		result = append(result, b)
	}

	return result, rows.Err()
}

func (r *PostgresBundleRepository) Update(ctx context.Context, id string, patch *BundlePatch) (*Bundle, error) {

	var tags, targetOS, icons *string
	var err error
	if patch.Tags != nil {
		if tags, err = jsonbArg(*patch.Tags); err != nil {
			return nil, err
		}
	}
	if patch.TargetOS != nil {
		if targetOS, err = jsonbArg(*patch.TargetOS); err != nil {
			return nil, err
		}
	}
	if patch.Icons != nil {
		if icons, err = jsonbArg(*patch.Icons); err != nil {
			return nil, err
		}
	}

	query :=
		`UPDATE bundles SET
		   name = COALESCE($2, name),
		   description = COALESCE($3, description),
		   tags = COALESCE($4::jsonb, tags),
		   preview_image = COALESCE($5, preview_image),
		   target_os = COALESCE($6::jsonb, target_os),
		   icons = COALESCE($7::jsonb, icons)
		 WHERE id = $1
		 RETURNING id, name, description, tags, preview_image, target_os, icons
		 `

	return r.scanRow(r.db.QueryRowContext(ctx, query, id,
		patch.Name, patch.Description, tags, patch.PreviewImage, targetOS, icons))
}

func (r *PostgresBundleRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM bundles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (r *PostgresBundleRepository) Upsert(ctx context.Context, b *Bundle) error {

	tags, err := jsonbArg(b.Tags)
	if err != nil {
		return err
	}
	targetOS, err := jsonbArg(b.TargetOS)
	if err != nil {
		return err
	}
	icons, err := jsonbArg(b.Icons)
	if err != nil {
		return err
	}

	query :=
		`INSERT INTO bundles (id, name, description, tags, preview_image, target_os, icons)
		 VALUES ($1, $2, $3, COALESCE($4::jsonb, '[]'::jsonb), $5,
		         COALESCE($6::jsonb, '[]'::jsonb), COALESCE($7::jsonb, '[]'::jsonb))
		 ON CONFLICT (id) DO UPDATE SET
		   name = EXCLUDED.name, description = EXCLUDED.description, tags = EXCLUDED.tags,
		   preview_image = EXCLUDED.preview_image, target_os = EXCLUDED.target_os, icons = EXCLUDED.icons
		 `

	_, err = r.db.ExecContext(ctx, query, b.ID, b.Name, b.Description, tags, b.PreviewImage, targetOS, icons)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}

func (r *PostgresBundleRepository) scanRow(row *sql.Row) (*Bundle, error) {
	b := &Bundle{}
	var tags, targetOS, icons []byte
	err := row.Scan(&b.ID, &b.Name, &b.Description, &tags, &b.PreviewImage, &targetOS, &icons)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	if err := scanJSONB(tags, &b.Tags); err != nil {
		return nil, err
	}
	if err := scanJSONB(targetOS, &b.TargetOS); err != nil {
		return nil, err
	}
	if err := scanJSONB(icons, &b.Icons); err != nil {
		return nil, err
	}
	return b, nil
}

// --- categories ---

type PostgresCategoryRepository struct {
	db *sql.DB
}

func NewPostgresCategoryRepository(db *sql.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

func (r *PostgresCategoryRepository) Create(ctx context.Context, c *Category) (*Category, error) {

	keywords, err := jsonbArg(c.SeoKeywords)
	if err != nil {
		return nil, err
	}

	query :=
		`INSERT INTO categories (id, name, description, image_url, color, seo_title, seo_description, seo_keywords)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE($8::jsonb, '[]'::jsonb))
		 `

	_, err = r.db.ExecContext(ctx, query, c.ID, c.Name, c.Description, c.ImageURL, c.Color,
		c.SeoTitle, c.SeoDescription, keywords)
	if err != nil {
		return nil, mapPgError(err)
	}

	return c, nil
}

func (r *PostgresCategoryRepository) List(ctx context.Context) ([]*Category, error) {
	query :=
		`SELECT id, name, description, image_url, color, seo_title, seo_description, seo_keywords
		 FROM categories ORDER BY name
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var result []*Category
	for rows.Next() {
		c := &Category{}
		var keywords []byte
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL, &c.Color,
			&c.SeoTitle, &c.SeoDescription, &keywords); err != nil {
			return nil, err
		}
		if err := scanJSONB(keywords, &c.SeoKeywords); err != nil {
			return nil, err
		}
		result = append(result, c)
	}

	return result, rows.Err()
}

func (r *PostgresCategoryRepository) Update(ctx context.Context, id string, patch *CategoryPatch) (*Category, error) {

	var keywords *string
	if patch.SeoKeywords != nil {
		var err error
		if keywords, err = jsonbArg(*patch.SeoKeywords); err != nil {
			return nil, err
		}
	}

	query :=
		`UPDATE categories SET
		   name = COALESCE($2, name),
		   description = COALESCE($3, description),
		   image_url = COALESCE($4, image_url),
		   color = COALESCE($5, color),
		   seo_title = COALESCE($6, seo_title),
		   seo_description = COALESCE($7, seo_description),
		   seo_keywords = COALESCE($8::jsonb, seo_keywords)
		 WHERE id = $1
		 RETURNING id, name, description, image_url, color, seo_title, seo_description, seo_keywords
		 `

	c := &Category{}
	var kw []byte
	err := r.db.QueryRowContext(ctx, query, id, patch.Name, patch.Description, patch.ImageURL,
		patch.Color, patch.SeoTitle, patch.SeoDescription, keywords).
		Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL, &c.Color, &c.SeoTitle, &c.SeoDescription, &kw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	if err := scanJSONB(kw, &c.SeoKeywords); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *PostgresCategoryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (r *PostgresCategoryRepository) Upsert(ctx context.Context, c *Category) error {

	keywords, err := jsonbArg(c.SeoKeywords)
	if err != nil {
		return err
	}

	query :=
		`INSERT INTO categories (id, name, description, image_url, color, seo_title, seo_description, seo_keywords)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE($8::jsonb, '[]'::jsonb))
		 ON CONFLICT (id) DO UPDATE SET
		   name = EXCLUDED.name, description = EXCLUDED.description, image_url = EXCLUDED.image_url,
		   color = EXCLUDED.color, seo_title = EXCLUDED.seo_title,
		   seo_description = EXCLUDED.seo_description, seo_keywords = EXCLUDED.seo_keywords
		 `

	_, err = r.db.ExecContext(ctx, query, c.ID, c.Name, c.Description, c.ImageURL, c.Color,
		c.SeoTitle, c.SeoDescription, keywords)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}

// --- tags ---

type PostgresTagRepository struct {
	db *sql.DB
}

func NewPostgresTagRepository(db *sql.DB) *PostgresTagRepository {
	return &PostgresTagRepository{db: db}
}

func (r *PostgresTagRepository) Create(ctx context.Context, t *Tag) (*Tag, error) {
	// Slug uniqueness is enforced by the UNIQUE index, not an application scan.
	query :=
		`INSERT INTO tags (id, name, slug)
		 VALUES ($1, $2, $3)
		 `

	_, err := r.db.ExecContext(ctx, query, t.ID, t.Name, t.Slug)
	if err != nil {
		return nil, mapPgError(err)
	}

	return t, nil
}

func (r *PostgresTagRepository) List(ctx context.Context) ([]*Tag, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, slug FROM tags ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var result []*Tag
	for rows.Next() {
		t := &Tag{}
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug); err != nil {
			return nil, err
		}
		result = append(result, t)
	}

	return result, rows.Err()
}

func (r *PostgresTagRepository) Update(ctx context.Context, id string, patch *TagPatch) (*Tag, error) {
	query :=
		`UPDATE tags SET
		   name = COALESCE($2, name),
		   slug = COALESCE($3, slug)
		 WHERE id = $1
		 RETURNING id, name, slug
		 `

	t := &Tag{}
	err := r.db.QueryRowContext(ctx, query, id, patch.Name, patch.Slug).Scan(&t.ID, &t.Name, &t.Slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, mapPgError(err)
	}
	return t, nil
}

func (r *PostgresTagRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (r *PostgresTagRepository) Upsert(ctx context.Context, t *Tag) error {
	query :=
		`INSERT INTO tags (id, name, slug)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, slug = EXCLUDED.slug
		 `

	_, err := r.db.ExecContext(ctx, query, t.ID, t.Name, t.Slug)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}

// --- hero slides ---

type PostgresHeroSlideRepository struct {
	db *sql.DB
}

func NewPostgresHeroSlideRepository(db *sql.DB) *PostgresHeroSlideRepository {
	return &PostgresHeroSlideRepository{db: db}
}

func (r *PostgresHeroSlideRepository) Create(ctx context.Context, s *HeroSlide) (*HeroSlide, error) {
	query :=
		`INSERT INTO hero_slides (id, title, subtitle, description, image_url, link, sort_order)
		 VALUES ($1, $2, $3, $4, $5, $6,
		         COALESCE(NULLIF($7, 0), (SELECT COALESCE(MAX(sort_order), 0) + 1 FROM hero_slides)))
		 RETURNING sort_order
		 `

	err := r.db.QueryRowContext(ctx, query, s.ID, s.Title, s.Subtitle, s.Description,
		s.ImageURL, s.Link, s.Order).Scan(&s.Order)
	if err != nil {
		return nil, mapPgError(err)
	}

	return s, nil
}

func (r *PostgresHeroSlideRepository) List(ctx context.Context) ([]*HeroSlide, error) {
	query :=
		`SELECT id, title, subtitle, description, image_url, link, sort_order
		 FROM hero_slides ORDER BY sort_order
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var result []*HeroSlide
	for rows.Next() {
		s := &HeroSlide{}
		if err := rows.Scan(&s.ID, &s.Title, &s.Subtitle, &s.Description, &s.ImageURL, &s.Link, &s.Order); err != nil {
			return nil, err
		}
		result = append(result, s)
	}

	return result, rows.Err()
}

func (r *PostgresHeroSlideRepository) Update(ctx context.Context, id string, patch *HeroSlidePatch) (*HeroSlide, error) {
	query :=
		`UPDATE hero_slides SET
		   title = COALESCE($2, title),
		   subtitle = COALESCE($3, subtitle),
		   description = COALESCE($4, description),
		   image_url = COALESCE($5, image_url),
		   link = COALESCE($6, link),
		   sort_order = COALESCE($7, sort_order)
		 WHERE id = $1
		 RETURNING id, title, subtitle, description, image_url, link, sort_order
		 `

	s := &HeroSlide{}
	err := r.db.QueryRowContext(ctx, query, id, patch.Title, patch.Subtitle, patch.Description,
		patch.ImageURL, patch.Link, patch.Order).
		Scan(&s.ID, &s.Title, &s.Subtitle, &s.Description, &s.ImageURL, &s.Link, &s.Order)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return s, nil
}

func (r *PostgresHeroSlideRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM hero_slides WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (r *PostgresHeroSlideRepository) Upsert(ctx context.Context, s *HeroSlide) error {
	query :=
		`INSERT INTO hero_slides (id, title, subtitle, description, image_url, link, sort_order)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET
		   title = EXCLUDED.title, subtitle = EXCLUDED.subtitle, description = EXCLUDED.description,
		   image_url = EXCLUDED.image_url, link = EXCLUDED.link, sort_order = EXCLUDED.sort_order
		 `

	_, err := r.db.ExecContext(ctx, query, s.ID, s.Title, s.Subtitle, s.Description, s.ImageURL, s.Link, s.Order)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}

// --- settings ---

type PostgresSettingsRepository struct {
	db *sql.DB
}

func NewPostgresSettingsRepository(db *sql.DB) *PostgresSettingsRepository {
	return &PostgresSettingsRepository{db: db}
}

func (r *PostgresSettingsRepository) Get(ctx context.Context) (*Settings, error) {
	query := `SELECT ad_config, features FROM settings WHERE id = 'default'`

	s := &Settings{}
	var adConfig, features []byte
	err := r.db.QueryRowContext(ctx, query).Scan(&adConfig, &features)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Singleton: an unset document reads as the zero settings.
			return s, nil
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	if err := scanJSONB(adConfig, &s.AdConfig); err != nil {
		return nil, err
	}
	if err := scanJSONB(features, &s.Features); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *PostgresSettingsRepository) Save(ctx context.Context, s *Settings) error {

	adConfig, err := jsonbArg(s.AdConfig)
	if err != nil {
		return err
	}
	features, err := jsonbArg(s.Features)
	if err != nil {
		return err
	}

	query :=
		`INSERT INTO settings (id, ad_config, features)
		 VALUES ('default', COALESCE($1::jsonb, '{}'::jsonb), COALESCE($2::jsonb, '{}'::jsonb))
		 ON CONFLICT (id) DO UPDATE SET ad_config = EXCLUDED.ad_config, features = EXCLUDED.features
		 `

	_, err = r.db.ExecContext(ctx, query, adConfig, features)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}

func (r *PostgresSettingsRepository) SaveAdConfig(ctx context.Context, ad *AdConfig) error {

	adConfig, err := jsonbArg(ad)
	if err != nil {
		return err
	}

	query :=
		`INSERT INTO settings (id, ad_config)
		 VALUES ('default', COALESCE($1::jsonb, '{}'::jsonb))
		 ON CONFLICT (id) DO UPDATE SET ad_config = EXCLUDED.ad_config
		 `

	_, err = r.db.ExecContext(ctx, query, adConfig)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}
