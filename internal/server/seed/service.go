// Package seed loads a JSON fixture of storefront content into the
// database. It backs the one-shot bootstrap endpoint used to populate a
// fresh deployment.
package seed

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/folderforge/folderforge/internal/common"
	"github.com/folderforge/folderforge/internal/logging"
	"github.com/folderforge/folderforge/internal/server/catalog"
)

// Fixture is the on-disk seed document.
type Fixture struct {
	OperatingSystems []catalog.OperatingSystem `json:"operatingSystems"`
	Bundles          []catalog.Bundle          `json:"bundles"`
	Categories       []catalog.Category        `json:"categories"`
	Tags             []catalog.Tag             `json:"tags"`
	HeroSlides       []catalog.HeroSlide       `json:"heroSlides"`
}

// Summary reports how many records of each kind were loaded.
type Summary struct {
	OperatingSystems int `json:"operatingSystems"`
	Bundles          int `json:"bundles"`
	Categories       int `json:"categories"`
	Tags             int `json:"tags"`
	HeroSlides       int `json:"heroSlides"`
}

type Service struct {
	osRepo       catalog.OperatingSystemRepository
	bundleRepo   catalog.BundleRepository
	categoryRepo catalog.CategoryRepository
	tagRepo      catalog.TagRepository
	heroRepo     catalog.HeroSlideRepository

	secret      string
	enabled     bool
	fixturePath string
	production  bool

	logger logging.Logger
}

func NewService(
	osRepo catalog.OperatingSystemRepository,
	bundleRepo catalog.BundleRepository,
	categoryRepo catalog.CategoryRepository,
	tagRepo catalog.TagRepository,
	heroRepo catalog.HeroSlideRepository,
	secret string, enabled bool, fixturePath string, production bool,
	logger logging.Logger,
) *Service {
	return &Service{
		osRepo:       osRepo,
		bundleRepo:   bundleRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		heroRepo:     heroRepo,
		secret:       secret,
		enabled:      enabled,
		fixturePath:  fixturePath,
		production:   production,
		logger:       logger,
	}
}

// Authorize checks the caller-provided secret against configuration.
// In production the explicit enable flag is also required.
func (s *Service) Authorize(secret string) error {
	if s.production && !s.enabled {
		return fmt.Errorf("%w: seeding is disabled", common.ErrorForbidden)
	}
	if s.secret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(s.secret)) != 1 {
		return fmt.Errorf("%w: invalid seed secret", common.ErrorForbidden)
	}
	return nil
}

// RunFromFile loads the configured fixture file and applies it.
func (s *Service) RunFromFile(ctx context.Context) (*Summary, error) {
	f, err := os.Open(s.fixturePath)
	if err != nil {
		return nil, fmt.Errorf("error opening fixture: %w", err)
	}
	defer f.Close()

	return s.Run(ctx, f)
}

// Run decodes a fixture and upserts every record, so reseeding an
// existing database is safe.
func (s *Service) Run(ctx context.Context, r io.Reader) (*Summary, error) {
	var fixture Fixture
	if err := json.NewDecoder(r).Decode(&fixture); err != nil {
		return nil, fmt.Errorf("%w: invalid fixture: %v", common.ErrorValidation, err)
	}

	summary := &Summary{}

	for i := range fixture.OperatingSystems {
		os := &fixture.OperatingSystems[i]
		fillID(&os.ID)
		if os.Format == "" {
			os.Format = "png"
		}
		if err := s.osRepo.Upsert(ctx, os); err != nil {
			return nil, fmt.Errorf("error seeding operating system %q: %w", os.Name, err)
		}
		summary.OperatingSystems++
	}

	for i := range fixture.Bundles {
		b := &fixture.Bundles[i]
		fillID(&b.ID)
		if err := s.bundleRepo.Upsert(ctx, b); err != nil {
			return nil, fmt.Errorf("error seeding bundle %q: %w", b.Name, err)
		}
		summary.Bundles++
	}

	for i := range fixture.Categories {
		c := &fixture.Categories[i]
		fillID(&c.ID)
		if err := s.categoryRepo.Upsert(ctx, c); err != nil {
			return nil, fmt.Errorf("error seeding category %q: %w", c.Name, err)
		}
		summary.Categories++
	}

	for i := range fixture.Tags {
		t := &fixture.Tags[i]
		fillID(&t.ID)
		if err := s.tagRepo.Upsert(ctx, t); err != nil {
			return nil, fmt.Errorf("error seeding tag %q: %w", t.Name, err)
		}
		summary.Tags++
	}

	for i := range fixture.HeroSlides {
		h := &fixture.HeroSlides[i]
		fillID(&h.ID)
		if h.Order == 0 {
			h.Order = i + 1
		}
		if err := s.heroRepo.Upsert(ctx, h); err != nil {
			return nil, fmt.Errorf("error seeding hero slide %q: %w", h.Title, err)
		}
		summary.HeroSlides++
	}

	s.logger.Info(ctx, "seed applied",
		"operatingSystems", summary.OperatingSystems,
		"bundles", summary.Bundles,
		"categories", summary.Categories,
		"tags", summary.Tags,
		"heroSlides", summary.HeroSlides,
	)

	return summary, nil
}

func fillID(id *string) {
	if *id == "" {
		*id = uuid.New().String()
	}
}
