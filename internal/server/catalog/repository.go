package catalog

import (
	"context"
)

// Patch types carry partial updates. A nil field leaves the stored value
// untouched; a set field wins (shallow, last-write-wins per field).

type OperatingSystemPatch struct {
	Name      *string      `json:"name"`
	Image     *string      `json:"image"`
	BrandIcon *string      `json:"brandIcon"`
	Format    *string      `json:"format"`
	Versions  *[]OSVersion `json:"versions"`
}

type BundlePatch struct {
	Name         *string       `json:"name"`
	Description  *string       `json:"description"`
	Tags         *[]string     `json:"tags"`
	PreviewImage *string       `json:"previewImage"`
	TargetOS     *[]string     `json:"targetOS"`
	Icons        *[]BundleIcon `json:"icons"`
}

type CategoryPatch struct {
	Name           *string   `json:"name"`
	Description    *string   `json:"description"`
	ImageURL       *string   `json:"imageUrl"`
	Color          *string   `json:"color"`
	SeoTitle       *string   `json:"seoTitle"`
	SeoDescription *string   `json:"seoDescription"`
	SeoKeywords    *[]string `json:"seoKeywords"`
}

type TagPatch struct {
	Name *string `json:"name"`
	Slug *string `json:"slug"`
}

type HeroSlidePatch struct {
	Title       *string `json:"title"`
	Subtitle    *string `json:"subtitle"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Link        *string `json:"link"`
	Order       *int    `json:"order"`
}

// OperatingSystemRepository persists OS records. Update returns
// common.ErrorNotFound for a missing id; Delete of a missing id succeeds.
// The same contract holds for every repository in this package.
type OperatingSystemRepository interface {
	Create(ctx context.Context, os *OperatingSystem) (*OperatingSystem, error)
	Get(ctx context.Context, id string) (*OperatingSystem, error)
	List(ctx context.Context) ([]*OperatingSystem, error)
	Update(ctx context.Context, id string, patch *OperatingSystemPatch) (*OperatingSystem, error)
	Delete(ctx context.Context, id string) error
	Upsert(ctx context.Context, os *OperatingSystem) error
}

type BundleRepository interface {
	Create(ctx context.Context, b *Bundle) (*Bundle, error)
	Get(ctx context.Context, id string) (*Bundle, error)
	List(ctx context.Context) ([]*Bundle, error)
	Update(ctx context.Context, id string, patch *BundlePatch) (*Bundle, error)
	Delete(ctx context.Context, id string) error
	Upsert(ctx context.Context, b *Bundle) error
}

type CategoryRepository interface {
	Create(ctx context.Context, c *Category) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	Update(ctx context.Context, id string, patch *CategoryPatch) (*Category, error)
	Delete(ctx context.Context, id string) error
	Upsert(ctx context.Context, c *Category) error
}

type TagRepository interface {
	Create(ctx context.Context, t *Tag) (*Tag, error)
	List(ctx context.Context) ([]*Tag, error)
	Update(ctx context.Context, id string, patch *TagPatch) (*Tag, error)
	Delete(ctx context.Context, id string) error
	Upsert(ctx context.Context, t *Tag) error
}

type HeroSlideRepository interface {
	Create(ctx context.Context, s *HeroSlide) (*HeroSlide, error)
	List(ctx context.Context) ([]*HeroSlide, error)
	Update(ctx context.Context, id string, patch *HeroSlidePatch) (*HeroSlide, error)
	Delete(ctx context.Context, id string) error
	Upsert(ctx context.Context, s *HeroSlide) error
}

// SettingsRepository stores the singleton settings document.
// SaveAdConfig replaces only the ad section in a single statement, so a
// concurrent full-settings save cannot be partially overwritten.
type SettingsRepository interface {
	Get(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, s *Settings) error
	SaveAdConfig(ctx context.Context, ad *AdConfig) error
}
