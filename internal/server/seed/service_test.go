package seed

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folderforge/folderforge/internal/common"
	"github.com/folderforge/folderforge/internal/logging"
	"github.com/folderforge/folderforge/internal/server/catalog"
)

type fakeOSRepo struct {
	catalog.OperatingSystemRepository
	upserted []*catalog.OperatingSystem
	err      error
}

func (f *fakeOSRepo) Upsert(ctx context.Context, os *catalog.OperatingSystem) error {
	if f.err != nil {
		return f.err
	}
	f.upserted = append(f.upserted, os)
	return nil
}

type fakeBundleRepo struct {
	catalog.BundleRepository
	upserted []*catalog.Bundle
}

func (f *fakeBundleRepo) Upsert(ctx context.Context, b *catalog.Bundle) error {
	f.upserted = append(f.upserted, b)
	return nil
}

type fakeCategoryRepo struct {
	catalog.CategoryRepository
	upserted []*catalog.Category
}

func (f *fakeCategoryRepo) Upsert(ctx context.Context, c *catalog.Category) error {
	f.upserted = append(f.upserted, c)
	return nil
}

type fakeTagRepo struct {
	catalog.TagRepository
	upserted []*catalog.Tag
}

func (f *fakeTagRepo) Upsert(ctx context.Context, t *catalog.Tag) error {
	f.upserted = append(f.upserted, t)
	return nil
}

type fakeHeroRepo struct {
	catalog.HeroSlideRepository
	upserted []*catalog.HeroSlide
}

func (f *fakeHeroRepo) Upsert(ctx context.Context, s *catalog.HeroSlide) error {
	f.upserted = append(f.upserted, s)
	return nil
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

type testRepos struct {
	os       *fakeOSRepo
	bundles  *fakeBundleRepo
	category *fakeCategoryRepo
	tags     *fakeTagRepo
	hero     *fakeHeroRepo
}

func newTestService(secret string, enabled, production bool) (*Service, *testRepos) {
	repos := &testRepos{
		os:       &fakeOSRepo{},
		bundles:  &fakeBundleRepo{},
		category: &fakeCategoryRepo{},
		tags:     &fakeTagRepo{},
		hero:     &fakeHeroRepo{},
	}
	svc := NewService(repos.os, repos.bundles, repos.category, repos.tags, repos.hero,
		secret, enabled, "fixture.json", production, testLogger())
	return svc, repos
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		enabled    bool
		production bool
		given      string
		wantErr    bool
	}{
		{"valid secret in development", "s3cret", false, false, "s3cret", false},
		{"wrong secret", "s3cret", false, false, "nope", true},
		{"empty configured secret rejects everything", "", false, false, "", true},
		{"production without enable flag", "s3cret", false, true, "s3cret", true},
		{"production with enable flag", "s3cret", true, true, "s3cret", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(tt.secret, tt.enabled, tt.production)
			err := svc.Authorize(tt.given)
			if tt.wantErr {
				assert.True(t, errors.Is(err, common.ErrorForbidden))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRun_UpsertsAllCollections(t *testing.T) {
	fixture := `{
		"operatingSystems": [{"name": "macOS", "versions": []}],
		"bundles": [{"id": "b1", "name": "Minimal", "icons": []}],
		"categories": [{"name": "Work"}],
		"tags": [{"name": "Dark", "slug": "dark"}],
		"heroSlides": [{"title": "Launch", "imageUrl": "https://x/eins.png"}]
	}`

	svc, repos := newTestService("s", false, false)

	summary, err := svc.Run(context.Background(), strings.NewReader(fixture))
	require.NoError(t, err)

	assert.Equal(t, &Summary{OperatingSystems: 1, Bundles: 1, Categories: 1, Tags: 1, HeroSlides: 1}, summary)

	require.Len(t, repos.os.upserted, 1)
	assert.NotEmpty(t, repos.os.upserted[0].ID, "missing id must be assigned")
	assert.Equal(t, "png", repos.os.upserted[0].Format)

	require.Len(t, repos.bundles.upserted, 1)
	assert.Equal(t, "b1", repos.bundles.upserted[0].ID, "fixture-provided id must be kept")

	require.Len(t, repos.hero.upserted, 1)
	assert.Equal(t, 1, repos.hero.upserted[0].Order, "unset slide order follows fixture position")
}

func TestRun_InvalidFixture(t *testing.T) {
	svc, _ := newTestService("s", false, false)

	_, err := svc.Run(context.Background(), strings.NewReader("{not json"))
	assert.True(t, errors.Is(err, common.ErrorValidation))
}

func TestRun_RepositoryFailure(t *testing.T) {
	svc, repos := newTestService("s", false, false)
	repos.os.err = errors.New("db down")

	_, err := svc.Run(context.Background(), strings.NewReader(`{"operatingSystems": [{"name": "macOS"}]}`))
	assert.ErrorContains(t, err, "error seeding operating system")
}
