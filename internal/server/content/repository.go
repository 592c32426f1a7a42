package content

import "context"

// BlogPostRepository persists posts. Update returns common.ErrorNotFound
// for a missing id; Delete of a missing id succeeds. Slug uniqueness is
// enforced by the store and surfaces as common.ErrorAlreadyExists.
type BlogPostRepository interface {
	Create(ctx context.Context, p *BlogPost) (*BlogPost, error)
	Get(ctx context.Context, id string) (*BlogPost, error)
	// GetPublishedBySlug returns a published post and atomically
	// increments its view counter.
	GetPublishedBySlug(ctx context.Context, slug string) (*BlogPost, error)
	List(ctx context.Context, publishedOnly bool) ([]*BlogPost, error)
	Update(ctx context.Context, id string, patch *BlogPostPatch) (*BlogPost, error)
	Delete(ctx context.Context, id string) error
}

type PageRepository interface {
	Create(ctx context.Context, p *Page) (*Page, error)
	GetBySlug(ctx context.Context, slug string) (*Page, error)
	List(ctx context.Context) ([]*Page, error)
	Update(ctx context.Context, id string, patch *PagePatch) (*Page, error)
	Delete(ctx context.Context, id string) error
}
