package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/folderforge/folderforge/internal/server/catalog"
)

func (s *Server) handleListOS(w http.ResponseWriter, r *http.Request) {
	list, err := s.catalog.ListOS(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, list)
}

func (s *Server) handleGetOS(w http.ResponseWriter, r *http.Request) {
	os, err := s.catalog.GetOS(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, os)
}

func (s *Server) handleCreateOS(w http.ResponseWriter, r *http.Request) {
	var os catalog.OperatingSystem
	if err := s.decode(r, &os); err != nil {
		s.writeError(w, r, err)
		return
	}

	created, err := s.catalog.CreateOS(r.Context(), &os)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusCreated, created)
}

func (s *Server) handleUpdateOS(w http.ResponseWriter, r *http.Request) {
	var patch catalog.OperatingSystemPatch
	if err := s.decode(r, &patch); err != nil {
		s.writeError(w, r, err)
		return
	}

	updated, err := s.catalog.UpdateOS(r.Context(), chi.URLParam(r, "id"), &patch)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, updated)
}

func (s *Server) handleDeleteOS(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.DeleteOS(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleListBundles(w http.ResponseWriter, r *http.Request) {
	list, err := s.catalog.ListBundles(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, list)
}

func (s *Server) handleGetBundle(w http.ResponseWriter, r *http.Request) {
	bundle, err := s.catalog.GetBundle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, bundle)
}

func (s *Server) handleCreateBundle(w http.ResponseWriter, r *http.Request) {
	var bundle catalog.Bundle
	if err := s.decode(r, &bundle); err != nil {
		s.writeError(w, r, err)
		return
	}

	created, err := s.catalog.CreateBundle(r.Context(), &bundle)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusCreated, created)
}

func (s *Server) handleUpdateBundle(w http.ResponseWriter, r *http.Request) {
	var patch catalog.BundlePatch
	if err := s.decode(r, &patch); err != nil {
		s.writeError(w, r, err)
		return
	}

	updated, err := s.catalog.UpdateBundle(r.Context(), chi.URLParam(r, "id"), &patch)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, updated)
}

func (s *Server) handleDeleteBundle(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.DeleteBundle(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	list, err := s.catalog.ListCategories(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, list)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var category catalog.Category
	if err := s.decode(r, &category); err != nil {
		s.writeError(w, r, err)
		return
	}

	created, err := s.catalog.CreateCategory(r.Context(), &category)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusCreated, created)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var patch catalog.CategoryPatch
	if err := s.decode(r, &patch); err != nil {
		s.writeError(w, r, err)
		return
	}

	updated, err := s.catalog.UpdateCategory(r.Context(), chi.URLParam(r, "id"), &patch)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, updated)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleListTags(w http.ResponseWriter, r *http.Request) {
	list, err := s.catalog.ListTags(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, list)
}

func (s *Server) handleCreateTag(w http.ResponseWriter, r *http.Request) {
	var tag catalog.Tag
	if err := s.decode(r, &tag); err != nil {
		s.writeError(w, r, err)
		return
	}

	created, err := s.catalog.CreateTag(r.Context(), &tag)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusCreated, created)
}

func (s *Server) handleUpdateTag(w http.ResponseWriter, r *http.Request) {
	var patch catalog.TagPatch
	if err := s.decode(r, &patch); err != nil {
		s.writeError(w, r, err)
		return
	}

	updated, err := s.catalog.UpdateTag(r.Context(), chi.URLParam(r, "id"), &patch)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, updated)
}

func (s *Server) handleDeleteTag(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.DeleteTag(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleListHeroSlides(w http.ResponseWriter, r *http.Request) {
	list, err := s.catalog.ListHeroSlides(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, list)
}

func (s *Server) handleCreateHeroSlide(w http.ResponseWriter, r *http.Request) {
	var slide catalog.HeroSlide
	if err := s.decode(r, &slide); err != nil {
		s.writeError(w, r, err)
		return
	}

	created, err := s.catalog.CreateHeroSlide(r.Context(), &slide)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusCreated, created)
}

func (s *Server) handleUpdateHeroSlide(w http.ResponseWriter, r *http.Request) {
	var patch catalog.HeroSlidePatch
	if err := s.decode(r, &patch); err != nil {
		s.writeError(w, r, err)
		return
	}

	updated, err := s.catalog.UpdateHeroSlide(r.Context(), chi.URLParam(r, "id"), &patch)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, updated)
}

func (s *Server) handleDeleteHeroSlide(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.DeleteHeroSlide(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.catalog.GetSettings(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, settings)
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings catalog.Settings
	if err := s.decode(r, &settings); err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.catalog.SaveSettings(r.Context(), &settings); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, settings)
}

// Ads are stored inside the settings singleton; the dedicated endpoints
// only touch the ad section.
func (s *Server) handleGetAds(w http.ResponseWriter, r *http.Request) {
	settings, err := s.catalog.GetSettings(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, settings.AdConfig)
}

func (s *Server) handleUpdateAds(w http.ResponseWriter, r *http.Request) {
	var adConfig catalog.AdConfig
	if err := s.decode(r, &adConfig); err != nil {
		s.writeError(w, r, err)
		return
	}

	// Written as a single statement so a concurrent full-settings save
	// cannot lose the feature toggles it carries.
	if err := s.catalog.SaveAdConfig(r.Context(), &adConfig); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, adConfig)
}
