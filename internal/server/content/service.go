package content

import (
	"context"
	"fmt"
	"time"

	"github.com/folderforge/folderforge/internal/common"
	"github.com/folderforge/folderforge/internal/sanitize"
	"github.com/google/uuid"
)

// Service validates and sanitizes content before it reaches the store.
// Sanitization applies to every write, including admin ones.
type Service struct {
	posts BlogPostRepository
	pages PageRepository
}

func NewService(posts BlogPostRepository, pages PageRepository) *Service {
	return &Service{posts: posts, pages: pages}
}

func (s *Service) CreatePost(ctx context.Context, p *BlogPost) (*BlogPost, error) {
	if p.Title == "" || p.Slug == "" {
		return nil, fmt.Errorf("%w: missing required fields", common.ErrorValidation)
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	p.Content = sanitize.HTML(p.Content)
	p.Excerpt = sanitize.HTML(p.Excerpt)

	if p.Published && p.PublishedAt == nil {
		now := time.Now().UTC()
		p.PublishedAt = &now
	}
	p.Views = 0

	return s.posts.Create(ctx, p)
}

func (s *Service) GetPost(ctx context.Context, id string) (*BlogPost, error) {
	return s.posts.Get(ctx, id)
}

// ReadPublishedPost serves the public blog page and bumps the view counter.
func (s *Service) ReadPublishedPost(ctx context.Context, slug string) (*BlogPost, error) {
	return s.posts.GetPublishedBySlug(ctx, slug)
}

func (s *Service) ListPosts(ctx context.Context, publishedOnly bool) ([]*BlogPost, error) {
	return s.posts.List(ctx, publishedOnly)
}

func (s *Service) UpdatePost(ctx context.Context, id string, patch *BlogPostPatch) (*BlogPost, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: missing id", common.ErrorValidation)
	}
	if patch.Content != nil {
		clean := sanitize.HTML(*patch.Content)
		patch.Content = &clean
	}
	if patch.Excerpt != nil {
		clean := sanitize.HTML(*patch.Excerpt)
		patch.Excerpt = &clean
	}
	return s.posts.Update(ctx, id, patch)
}

func (s *Service) DeletePost(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: missing id", common.ErrorValidation)
	}
	return s.posts.Delete(ctx, id)
}

func (s *Service) CreatePage(ctx context.Context, p *Page) (*Page, error) {
	if p.Title == "" || p.Slug == "" {
		return nil, fmt.Errorf("%w: missing required fields", common.ErrorValidation)
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	p.Content = sanitize.HTML(p.Content)

	return s.pages.Create(ctx, p)
}

func (s *Service) GetPage(ctx context.Context, slug string) (*Page, error) {
	return s.pages.GetBySlug(ctx, slug)
}

func (s *Service) ListPages(ctx context.Context) ([]*Page, error) {
	return s.pages.List(ctx)
}

func (s *Service) UpdatePage(ctx context.Context, id string, patch *PagePatch) (*Page, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: missing id", common.ErrorValidation)
	}
	if patch.Content != nil {
		clean := sanitize.HTML(*patch.Content)
		patch.Content = &clean
	}
	return s.pages.Update(ctx, id, patch)
}

func (s *Service) DeletePage(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: missing id", common.ErrorValidation)
	}
	return s.pages.Delete(ctx, id)
}
