package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/folderforge/folderforge/internal/server/content"
)

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.content.ListPosts(r.Context(), false)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, posts)
}

func (s *Server) handleListPublishedPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.content.ListPosts(r.Context(), true)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, posts)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	post, err := s.content.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, post)
}

// handleReadPost serves a published post by slug and counts the view.
func (s *Server) handleReadPost(w http.ResponseWriter, r *http.Request) {
	post, err := s.content.ReadPublishedPost(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, post)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var post content.BlogPost
	if err := s.decode(r, &post); err != nil {
		s.writeError(w, r, err)
		return
	}

	created, err := s.content.CreatePost(r.Context(), &post)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusCreated, created)
}

func (s *Server) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	var patch content.BlogPostPatch
	if err := s.decode(r, &patch); err != nil {
		s.writeError(w, r, err)
		return
	}

	updated, err := s.content.UpdatePost(r.Context(), chi.URLParam(r, "id"), &patch)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, updated)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	if err := s.content.DeletePost(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleListPages(w http.ResponseWriter, r *http.Request) {
	pages, err := s.content.ListPages(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, pages)
}

func (s *Server) handleReadPage(w http.ResponseWriter, r *http.Request) {
	page, err := s.content.GetPage(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, page)
}

func (s *Server) handleCreatePage(w http.ResponseWriter, r *http.Request) {
	var page content.Page
	if err := s.decode(r, &page); err != nil {
		s.writeError(w, r, err)
		return
	}

	created, err := s.content.CreatePage(r.Context(), &page)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusCreated, created)
}

func (s *Server) handleUpdatePage(w http.ResponseWriter, r *http.Request) {
	var patch content.PagePatch
	if err := s.decode(r, &patch); err != nil {
		s.writeError(w, r, err)
		return
	}

	updated, err := s.content.UpdatePage(r.Context(), chi.URLParam(r, "id"), &patch)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, updated)
}

func (s *Server) handleDeletePage(w http.ResponseWriter, r *http.Request) {
	if err := s.content.DeletePage(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}
