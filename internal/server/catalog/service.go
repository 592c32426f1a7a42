package catalog

import (
	"context"
	"fmt"

	"github.com/folderforge/folderforge/internal/common"
	"github.com/google/uuid"
)

// Service wraps the catalog repositories with field validation and
// server-side id assignment.
type Service struct {
	osRepo       OperatingSystemRepository
	bundleRepo   BundleRepository
	categoryRepo CategoryRepository
	tagRepo      TagRepository
	heroRepo     HeroSlideRepository
	settingsRepo SettingsRepository
}

func NewService(osRepo OperatingSystemRepository, bundleRepo BundleRepository,
	categoryRepo CategoryRepository, tagRepo TagRepository,
	heroRepo HeroSlideRepository, settingsRepo SettingsRepository) *Service {
	return &Service{
		osRepo:       osRepo,
		bundleRepo:   bundleRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		heroRepo:     heroRepo,
		settingsRepo: settingsRepo,
	}
}

func newID() string {
	return uuid.NewString()
}

// --- operating systems ---

func (s *Service) CreateOS(ctx context.Context, os *OperatingSystem) (*OperatingSystem, error) {
	if os.Name == "" {
		return nil, fmt.Errorf("%w: missing required fields", common.ErrorValidation)
	}
	if os.ID == "" {
		os.ID = newID()
	}
	if os.Format == "" {
		os.Format = "png"
	}
	return s.osRepo.Create(ctx, os)
}

func (s *Service) GetOS(ctx context.Context, id string) (*OperatingSystem, error) {
	return s.osRepo.Get(ctx, id)
}

func (s *Service) ListOS(ctx context.Context) ([]*OperatingSystem, error) {
	return s.osRepo.List(ctx)
}

func (s *Service) UpdateOS(ctx context.Context, id string, patch *OperatingSystemPatch) (*OperatingSystem, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: missing id", common.ErrorValidation)
	}
	return s.osRepo.Update(ctx, id, patch)
}

func (s *Service) DeleteOS(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: missing id", common.ErrorValidation)
	}
	return s.osRepo.Delete(ctx, id)
}

// --- bundles ---

func (s *Service) CreateBundle(ctx context.Context, b *Bundle) (*Bundle, error) {
	if b.Name == "" {
		return nil, fmt.Errorf("%w: missing required fields", common.ErrorValidation)
	}
	if b.ID == "" {
		b.ID = newID()
	}
	return s.bundleRepo.Create(ctx, b)
}

func (s *Service) GetBundle(ctx context.Context, id string) (*Bundle, error) {
	return s.bundleRepo.Get(ctx, id)
}

func (s *Service) ListBundles(ctx context.Context) ([]*Bundle, error) {
	return s.bundleRepo.List(ctx)
}

func (s *Service) UpdateBundle(ctx context.Context, id string, patch *BundlePatch) (*Bundle, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: missing id", common.ErrorValidation)
	}
	return s.bundleRepo.Update(ctx, id, patch)
}

func (s *Service) DeleteBundle(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: missing id", common.ErrorValidation)
	}
	return s.bundleRepo.Delete(ctx, id)
}

// --- categories ---

func (s *Service) CreateCategory(ctx context.Context, c *Category) (*Category, error) {
	if c.Name == "" {
		return nil, fmt.Errorf("%w: missing required fields", common.ErrorValidation)
	}
	if c.ID == "" {
		c.ID = newID()
	}
	return s.categoryRepo.Create(ctx, c)
}

func (s *Service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *Service) UpdateCategory(ctx context.Context, id string, patch *CategoryPatch) (*Category, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: missing id", common.ErrorValidation)
	}
	return s.categoryRepo.Update(ctx, id, patch)
}

func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: missing id", common.ErrorValidation)
	}
	return s.categoryRepo.Delete(ctx, id)
}

// --- tags ---

func (s *Service) CreateTag(ctx context.Context, t *Tag) (*Tag, error) {
	if t.Name == "" || t.Slug == "" {
		return nil, fmt.Errorf("%w: missing required fields", common.ErrorValidation)
	}
	if t.ID == "" {
		t.ID = newID()
	}
	return s.tagRepo.Create(ctx, t)
}

func (s *Service) ListTags(ctx context.Context) ([]*Tag, error) {
	return s.tagRepo.List(ctx)
}

func (s *Service) UpdateTag(ctx context.Context, id string, patch *TagPatch) (*Tag, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: missing id", common.ErrorValidation)
	}
	return s.tagRepo.Update(ctx, id, patch)
}

func (s *Service) DeleteTag(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: missing id", common.ErrorValidation)
	}
	return s.tagRepo.Delete(ctx, id)
}

// --- hero slides ---

func (s *Service) CreateHeroSlide(ctx context.Context, slide *HeroSlide) (*HeroSlide, error) {
	if slide.Title == "" || slide.ImageURL == "" {
		return nil, fmt.Errorf("%w: missing required fields", common.ErrorValidation)
	}
	if slide.ID == "" {
		slide.ID = newID()
	}
	return s.heroRepo.Create(ctx, slide)
}

func (s *Service) ListHeroSlides(ctx context.Context) ([]*HeroSlide, error) {
	return s.heroRepo.List(ctx)
}

func (s *Service) UpdateHeroSlide(ctx context.Context, id string, patch *HeroSlidePatch) (*HeroSlide, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: missing id", common.ErrorValidation)
	}
	return s.heroRepo.Update(ctx, id, patch)
}

func (s *Service) DeleteHeroSlide(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: missing id", common.ErrorValidation)
	}
	return s.heroRepo.Delete(ctx, id)
}

// --- settings ---

func (s *Service) GetSettings(ctx context.Context) (*Settings, error) {
	return s.settingsRepo.Get(ctx)
}

func (s *Service) SaveSettings(ctx context.Context, settings *Settings) error {
	return s.settingsRepo.Save(ctx, settings)
}

func (s *Service) SaveAdConfig(ctx context.Context, ad *AdConfig) error {
	return s.settingsRepo.SaveAdConfig(ctx, ad)
}
