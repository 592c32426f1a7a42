// Package content manages the blog posts and static pages of the site.
// Every stored HTML body passes through the sanitizer before persistence.
package content

import "time"

type BlogPost struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	Views       int64      `json:"views"`
}

type Page struct {
	ID      string `json:"id"`
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type BlogPostPatch struct {
	Slug      *string `json:"slug"`
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Excerpt   *string `json:"excerpt"`
	Published *bool   `json:"published"`
}

type PagePatch struct {
	Slug    *string `json:"slug"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
}
