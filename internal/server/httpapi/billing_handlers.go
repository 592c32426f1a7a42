package httpapi

import (
	"net/http"

	"github.com/folderforge/folderforge/internal/server/billing"
)

type checkoutRequest struct {
	PriceID   string `json:"priceId"`
	Mode      string `json:"mode"`
	ReturnURL string `json:"returnUrl"`
}

type portalRequest struct {
	ReturnURL string `json:"returnUrl"`
}

type cancelRequest struct {
	Reason   string `json:"reason"`
	Feedback string `json:"feedback"`
}

// handleCheckout opens a checkout session. The payer identity comes from
// the verified token, never from the request body.
func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	identity := identityFromContext(r.Context())

	var req checkoutRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Mode == "" {
		req.Mode = billing.ModeSubscription
	}

	session, err := s.billing.Checkout(r.Context(), identity.UID, identity.Email, req.PriceID, req.Mode, req.ReturnURL)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, map[string]string{
		"sessionId": session.ID,
		"url":       session.URL,
	})
}

func (s *Server) handlePortal(w http.ResponseWriter, r *http.Request) {
	identity := identityFromContext(r.Context())

	var req portalRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	url, err := s.billing.Portal(r.Context(), identity.UID, req.ReturnURL)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, map[string]string{"url": url})
}

// handleCancelSubscription flags the caller's subscription to end at
// the close of the billing period. Access stays until then.
func (s *Server) handleCancelSubscription(w http.ResponseWriter, r *http.Request) {
	identity := identityFromContext(r.Context())

	var req cancelRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Reason != "" {
		s.logger.Info(r.Context(), "cancellation feedback",
			"uid", identity.UID, "reason", req.Reason, "feedback", req.Feedback)
	}

	cancellation, err := s.billing.CancelSubscription(r.Context(), identity.UID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, map[string]any{
		"success":          true,
		"message":          "Subscription will be canceled at the end of the billing period.",
		"currentPeriodEnd": cancellation.CurrentPeriodEnd,
	})
}

func (s *Server) handleInvoices(w http.ResponseWriter, r *http.Request) {
	identity := identityFromContext(r.Context())

	invoices, err := s.billing.Invoices(r.Context(), identity.UID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, invoices)
}
