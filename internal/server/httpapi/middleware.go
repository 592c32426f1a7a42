package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/folderforge/folderforge/internal/common"
	"github.com/folderforge/folderforge/internal/server/auth"
)

type contextKey string

const identityKey contextKey = "identity"

// identityFromContext returns the verified caller identity, or nil on
// public routes.
func identityFromContext(ctx context.Context) *auth.Identity {
	identity, _ := ctx.Value(identityKey).(*auth.Identity)
	return identity
}

func (s *Server) authenticate(r *http.Request) (*auth.Identity, error) {
	token, err := auth.ExtractBearer(r.Header.Get("Authorization"))
	if err != nil {
		return nil, err
	}

	identity, err := auth.VerifyToken(token, []byte(s.config.SecretKey))
	if err != nil {
		return nil, err
	}

	s.logger.Debug(r.Context(), "authenticated request",
		"uid", identity.UID, "admin", identity.IsAdmin(), "path", r.URL.Path)

	return identity, nil
}

// requireAuth rejects requests without a valid bearer token.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := s.authenticate(r)
		if err != nil {
			s.logger.Warn(r.Context(), "authentication failed", "path", r.URL.Path, "error", err.Error())
			s.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey, identity)))
	})
}

// requireAdmin additionally checks the admin claim.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := s.authenticate(r)
		if err != nil {
			s.logger.Warn(r.Context(), "authentication failed", "path", r.URL.Path, "error", err.Error())
			s.writeError(w, r, err)
			return
		}

		// A non-admin credential is an auth failure, not a forbidden
		// resource: admin routes answer 401 either way.
		if !identity.IsAdmin() {
			s.logger.Warn(r.Context(), "admin access denied", "uid", identity.UID, "path", r.URL.Path)
			s.writeError(w, r, fmt.Errorf("%w: admin access required", common.ErrorUnauthorized))
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey, identity)))
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug(r.Context(), "request handled",
			"method", r.Method, "path", r.URL.Path, "duration", time.Since(start).String())
	})
}
