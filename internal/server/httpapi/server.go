// Package httpapi exposes the FolderForge services over a JSON HTTP API.
package httpapi

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/folderforge/folderforge/internal/logging"
	"github.com/folderforge/folderforge/internal/server/billing"
	"github.com/folderforge/folderforge/internal/server/catalog"
	"github.com/folderforge/folderforge/internal/server/config"
	"github.com/folderforge/folderforge/internal/server/content"
	"github.com/folderforge/folderforge/internal/server/mediaproxy"
	"github.com/folderforge/folderforge/internal/server/plans"
	"github.com/folderforge/folderforge/internal/server/seed"
	"github.com/folderforge/folderforge/internal/server/uploads"
	"github.com/folderforge/folderforge/internal/server/users"
)

type Server struct {
	catalog *catalog.Service
	content *content.Service
	plans   *plans.Service
	billing *billing.Service
	users   users.Repository
	uploads *uploads.Service
	proxy   *mediaproxy.Service
	seed    *seed.Service
	db      *sql.DB
	config  *config.Config
	logger  logging.Logger
}

func NewServer(
	catalogSvc *catalog.Service,
	contentSvc *content.Service,
	plansSvc *plans.Service,
	billingSvc *billing.Service,
	usersRepo users.Repository,
	uploadsSvc *uploads.Service,
	proxySvc *mediaproxy.Service,
	seedSvc *seed.Service,
	db *sql.DB,
	cfg *config.Config,
	logger logging.Logger,
) *Server {
	return &Server{
		catalog: catalogSvc,
		content: contentSvc,
		plans:   plansSvc,
		billing: billingSvc,
		users:   usersRepo,
		uploads: uploadsSvc,
		proxy:   proxySvc,
		seed:    seedSvc,
		db:      db,
		config:  cfg,
		logger:  logger,
	}
}

// Routes builds the full route tree. Catalog reads are public; every
// mutation sits behind the admin gate.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/healthz", s.handleHealthz)

		r.Route("/os", func(r chi.Router) {
			r.Get("/", s.handleListOS)
			r.Get("/{id}", s.handleGetOS)
			r.Group(func(r chi.Router) {
				r.Use(s.requireAdmin)
				r.Post("/", s.handleCreateOS)
				r.Put("/{id}", s.handleUpdateOS)
				r.Delete("/{id}", s.handleDeleteOS)
			})
		})

		r.Route("/bundles", func(r chi.Router) {
			r.Get("/", s.handleListBundles)
			r.Get("/{id}", s.handleGetBundle)
			r.Group(func(r chi.Router) {
				r.Use(s.requireAdmin)
				r.Post("/", s.handleCreateBundle)
				r.Put("/{id}", s.handleUpdateBundle)
				r.Delete("/{id}", s.handleDeleteBundle)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Get("/categories", s.handleListCategories)
			r.Get("/tags", s.handleListTags)
			r.Get("/hero", s.handleListHeroSlides)
			r.Get("/ads", s.handleGetAds)
			r.Get("/settings", s.handleGetSettings)

			r.Post("/seed", s.handleSeed)

			r.Group(func(r chi.Router) {
				r.Use(s.requireAdmin)

				r.Post("/categories", s.handleCreateCategory)
				r.Put("/categories/{id}", s.handleUpdateCategory)
				r.Delete("/categories/{id}", s.handleDeleteCategory)

				r.Post("/tags", s.handleCreateTag)
				r.Put("/tags/{id}", s.handleUpdateTag)
				r.Delete("/tags/{id}", s.handleDeleteTag)

				r.Post("/hero", s.handleCreateHeroSlide)
				r.Put("/hero/{id}", s.handleUpdateHeroSlide)
				r.Delete("/hero/{id}", s.handleDeleteHeroSlide)

				r.Put("/ads", s.handleUpdateAds)
				r.Put("/settings", s.handleUpdateSettings)

				r.Get("/users", s.handleListUsers)

				r.Get("/posts", s.handleListPosts)
				r.Post("/posts", s.handleCreatePost)
				r.Get("/posts/{id}", s.handleGetPost)
				r.Put("/posts/{id}", s.handleUpdatePost)
				r.Delete("/posts/{id}", s.handleDeletePost)

				r.Get("/pages", s.handleListPages)
				r.Post("/pages", s.handleCreatePage)
				r.Put("/pages/{id}", s.handleUpdatePage)
				r.Delete("/pages/{id}", s.handleDeletePage)

				r.Get("/plans", s.handleListPlans)
				r.Post("/plans", s.handleCreatePlan)
				r.Get("/plans/stripe-products", s.handleStripeProducts)
				r.Post("/plans/sync-check", s.handleSyncCheck)
				r.Get("/plans/{id}", s.handleGetPlan)
				r.Put("/plans/{id}", s.handleUpdatePlan)
				r.Delete("/plans/{id}", s.handleDeletePlan)
			})
		})

		r.Get("/blog", s.handleListPublishedPosts)
		r.Get("/blog/{slug}", s.handleReadPost)
		r.Get("/pages/{slug}", s.handleReadPage)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Post("/upload", s.handleUpload)
			r.Post("/stripe/checkout", s.handleCheckout)
			r.Post("/stripe/portal", s.handlePortal)
			r.Post("/stripe/cancel", s.handleCancelSubscription)
			r.Get("/stripe/invoices", s.handleInvoices)
		})

		r.Get("/proxy", s.handleProxy)
	})

	return r
}
