package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/folderforge/folderforge/internal/server/plans"
)

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	list, err := s.plans.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, list)
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := s.plans.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, plan)
}

func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	var plan plans.Plan
	if err := s.decode(r, &plan); err != nil {
		s.writeError(w, r, err)
		return
	}

	created, err := s.plans.Create(r.Context(), &plan)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusCreated, created)
}

func (s *Server) handleUpdatePlan(w http.ResponseWriter, r *http.Request) {
	var patch plans.PlanPatch
	if err := s.decode(r, &patch); err != nil {
		s.writeError(w, r, err)
		return
	}

	updated, err := s.plans.Update(r.Context(), chi.URLParam(r, "id"), &patch)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, updated)
}

func (s *Server) handleDeletePlan(w http.ResponseWriter, r *http.Request) {
	if err := s.plans.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

// handleStripeProducts lists active provider prices that have no local
// plan yet, ready for import.
func (s *Server) handleStripeProducts(w http.ResponseWriter, r *http.Request) {
	prices, err := s.plans.ImportablePrices(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, prices)
}

// handleSyncCheck reports local plans whose mirrored price no longer
// exists upstream.
func (s *Server) handleSyncCheck(w http.ResponseWriter, r *http.Request) {
	stale, err := s.plans.SyncCheck(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, map[string]any{"stalePlans": stale})
}
