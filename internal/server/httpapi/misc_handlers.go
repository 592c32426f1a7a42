package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/folderforge/folderforge/internal/common"
	"github.com/folderforge/folderforge/internal/server/mediaproxy"
)

const maxUploadBytes = 32 << 20

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	identity := identityFromContext(r.Context())

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.writeError(w, r, fmt.Errorf("%w: invalid multipart form", common.ErrorValidation))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, r, fmt.Errorf("%w: missing file", common.ErrorValidation))
		return
	}
	defer file.Close()

	folder := r.FormValue("folder")
	contentType := header.Header.Get("Content-Type")

	url, err := s.uploads.Upload(r.Context(), identity.IsAdmin(), folder, header.Filename, contentType, file)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, map[string]string{"url": url})
}

func (s *Server) handleProxy(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get("url")
	nocache, _ := strconv.ParseBool(r.URL.Query().Get("nocache"))

	result, err := s.proxy.Fetch(r.Context(), rawURL, nocache)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Cache-Control", mediaproxy.CacheControl(nocache))
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	w.Write(result.Body)
}

func (s *Server) handleSeed(w http.ResponseWriter, r *http.Request) {
	if err := s.seed.Authorize(r.URL.Query().Get("secret")); err != nil {
		s.writeError(w, r, err)
		return
	}

	summary, err := s.seed.RunFromFile(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, summary)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	list, err := s.users.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, list)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.PingContext(r.Context()); err != nil {
			s.writeError(w, r, fmt.Errorf("database unreachable: %w", err))
			return
		}
	}
	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
