package db

import (
	"context"
	"database/sql"

	"github.com/folderforge/folderforge/internal/server/catalog"
	"github.com/folderforge/folderforge/internal/server/content"
	"github.com/folderforge/folderforge/internal/server/plans"
	"github.com/folderforge/folderforge/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	OperatingSystems() catalog.OperatingSystemRepository
	Bundles() catalog.BundleRepository
	Categories() catalog.CategoryRepository
	Tags() catalog.TagRepository
	HeroSlides() catalog.HeroSlideRepository
	Settings() catalog.SettingsRepository
	BlogPosts() content.BlogPostRepository
	Pages() content.PageRepository
	Plans() plans.Repository
	Users() users.Repository
}
