package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/folderforge/folderforge/internal/server/catalog"
	"github.com/folderforge/folderforge/internal/server/content"
	"github.com/folderforge/folderforge/internal/server/migrations"
	"github.com/folderforge/folderforge/internal/server/plans"
	"github.com/folderforge/folderforge/internal/server/users"
)

type PostgresRepositoryManager struct {
	db         *sql.DB
	os         catalog.OperatingSystemRepository
	bundles    catalog.BundleRepository
	categories catalog.CategoryRepository
	tags       catalog.TagRepository
	hero       catalog.HeroSlideRepository
	settings   catalog.SettingsRepository
	blogPosts  content.BlogPostRepository
	pages      content.PageRepository
	plans      plans.Repository
	users      users.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) OperatingSystems() catalog.OperatingSystemRepository {
	return m.os
}

func (m *PostgresRepositoryManager) Bundles() catalog.BundleRepository {
	return m.bundles
}

func (m *PostgresRepositoryManager) Categories() catalog.CategoryRepository {
	return m.categories
}

func (m *PostgresRepositoryManager) Tags() catalog.TagRepository {
	return m.tags
}

func (m *PostgresRepositoryManager) HeroSlides() catalog.HeroSlideRepository {
	return m.hero
}

func (m *PostgresRepositoryManager) Settings() catalog.SettingsRepository {
	return m.settings
}

func (m *PostgresRepositoryManager) BlogPosts() content.BlogPostRepository {
	return m.blogPosts
}

func (m *PostgresRepositoryManager) Pages() content.PageRepository {
	return m.pages
}

func (m *PostgresRepositoryManager) Plans() plans.Repository {
	return m.plans
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresRepositoryManager(dsn string) (RepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:         db,
		os:         catalog.NewPostgresOperatingSystemRepository(db),
		bundles:    catalog.NewPostgresBundleRepository(db),
		categories: catalog.NewPostgresCategoryRepository(db),
		tags:       catalog.NewPostgresTagRepository(db),
		hero:       catalog.NewPostgresHeroSlideRepository(db),
		settings:   catalog.NewPostgresSettingsRepository(db),
		blogPosts:  content.NewPostgresBlogPostRepository(db),
		pages:      content.NewPostgresPageRepository(db),
		plans:      plans.NewPostgresRepository(db),
		users:      users.NewPostgresRepository(db),
	}

	err = m.RunMigrations(context.Background())
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
