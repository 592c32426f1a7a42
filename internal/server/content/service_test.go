package content

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/folderforge/folderforge/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePostRepo struct {
	store map[string]*BlogPost
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{store: map[string]*BlogPost{}}
}

func (f *fakePostRepo) Create(ctx context.Context, p *BlogPost) (*BlogPost, error) {
	for _, existing := range f.store {
		if existing.Slug == p.Slug {
			return nil, common.ErrorAlreadyExists
		}
	}
	f.store[p.ID] = p
	return p, nil
}

func (f *fakePostRepo) Get(ctx context.Context, id string) (*BlogPost, error) {
	p, ok := f.store[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return p, nil
}

func (f *fakePostRepo) GetPublishedBySlug(ctx context.Context, slug string) (*BlogPost, error) {
	for _, p := range f.store {
		if p.Slug == slug && p.Published {
			p.Views++
			// Each read scans a fresh row, as the SQL repository does.
			read := *p
			return &read, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakePostRepo) List(ctx context.Context, publishedOnly bool) ([]*BlogPost, error) {
	var out []*BlogPost
	for _, p := range f.store {
		if publishedOnly && !p.Published {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePostRepo) Update(ctx context.Context, id string, patch *BlogPostPatch) (*BlogPost, error) {
	p, ok := f.store[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Excerpt != nil {
		p.Excerpt = *patch.Excerpt
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	return p, nil
}

func (f *fakePostRepo) Delete(ctx context.Context, id string) error {
	delete(f.store, id)
	return nil
}

type fakePageRepo struct {
	store map[string]*Page
}

func newFakePageRepo() *fakePageRepo {
	return &fakePageRepo{store: map[string]*Page{}}
}

func (f *fakePageRepo) Create(ctx context.Context, p *Page) (*Page, error) {
	f.store[p.ID] = p
	return p, nil
}

func (f *fakePageRepo) GetBySlug(ctx context.Context, slug string) (*Page, error) {
	for _, p := range f.store {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakePageRepo) List(ctx context.Context) ([]*Page, error) {
	var out []*Page
	for _, p := range f.store {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePageRepo) Update(ctx context.Context, id string, patch *PagePatch) (*Page, error) {
	p, ok := f.store[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	return p, nil
}

func (f *fakePageRepo) Delete(ctx context.Context, id string) error {
	delete(f.store, id)
	return nil
}

func newContentService(t *testing.T) (*Service, *fakePostRepo, *fakePageRepo) {
	t.Helper()
	posts := newFakePostRepo()
	pages := newFakePageRepo()
	return NewService(posts, pages), posts, pages
}

func TestCreatePost_SanitizesContentAndExcerpt(t *testing.T) {
	svc, _, _ := newContentService(t)

	p, err := svc.CreatePost(context.Background(), &BlogPost{
		Title:   "Hello",
		Slug:    "hello",
		Content: `<p>hi</p><script>alert(1)</script>`,
		Excerpt: `<img src="https://cdn/x.png" onerror="alert(1)">`,
	})
	require.NoError(t, err)

	assert.NotContains(t, strings.ToLower(p.Content), "<script")
	assert.NotContains(t, strings.ToLower(p.Excerpt), "onerror")
	assert.Contains(t, p.Content, "<p>hi</p>")
}

func TestCreatePost_PublishedGetsTimestamp(t *testing.T) {
	svc, _, _ := newContentService(t)

	p, err := svc.CreatePost(context.Background(), &BlogPost{
		Title: "Hello", Slug: "hello", Published: true,
	})
	require.NoError(t, err)
	require.NotNil(t, p.PublishedAt)
	assert.NotEmpty(t, p.ID)
	assert.Zero(t, p.Views)
}

func TestCreatePost_MissingFields(t *testing.T) {
	svc, _, _ := newContentService(t)

	_, err := svc.CreatePost(context.Background(), &BlogPost{Title: "no slug"})
	assert.True(t, errors.Is(err, common.ErrorValidation))

	_, err = svc.CreatePost(context.Background(), &BlogPost{Slug: "no-title"})
	assert.True(t, errors.Is(err, common.ErrorValidation))
}

func TestUpdatePost_SanitizesPatchedContent(t *testing.T) {
	svc, repo, _ := newContentService(t)

	created, err := svc.CreatePost(context.Background(), &BlogPost{Title: "Hello", Slug: "hello"})
	require.NoError(t, err)

	dirty := `<a href="javascript:alert(1)">x</a>`
	updated, err := svc.UpdatePost(context.Background(), created.ID, &BlogPostPatch{Content: &dirty})
	require.NoError(t, err)

	assert.NotContains(t, updated.Content, "javascript:")
	assert.NotContains(t, repo.store[created.ID].Content, "javascript:")
}

func TestUpdatePost_NotFound(t *testing.T) {
	svc, _, _ := newContentService(t)

	title := "x"
	_, err := svc.UpdatePost(context.Background(), "missing", &BlogPostPatch{Title: &title})
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestDeletePost_MissingIsSuccess(t *testing.T) {
	svc, _, _ := newContentService(t)
	assert.NoError(t, svc.DeletePost(context.Background(), "missing"))
}

func TestReadPublishedPost_IncrementsViews(t *testing.T) {
	svc, _, _ := newContentService(t)

	_, err := svc.CreatePost(context.Background(), &BlogPost{Title: "Hello", Slug: "hello", Published: true})
	require.NoError(t, err)

	p1, err := svc.ReadPublishedPost(context.Background(), "hello")
	require.NoError(t, err)
	p2, err := svc.ReadPublishedPost(context.Background(), "hello")
	require.NoError(t, err)

	assert.Equal(t, int64(1), p1.Views)
	assert.Equal(t, int64(2), p2.Views)
}

func TestCreatePage_Sanitizes(t *testing.T) {
	svc, _, _ := newContentService(t)

	p, err := svc.CreatePage(context.Background(), &Page{
		Title: "Terms", Slug: "terms",
		Content: `<h1>Terms</h1><script>x()</script>`,
	})
	require.NoError(t, err)
	assert.NotContains(t, p.Content, "<script")
	assert.Contains(t, p.Content, "<h1>Terms</h1>")
}
