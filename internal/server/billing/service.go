package billing

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/folderforge/folderforge/internal/common"
	"github.com/folderforge/folderforge/internal/logging"
)

const invoicePageSize = 20

// PlanInfo is the slice of a stored plan the checkout flow needs.
type PlanInfo struct {
	ID      string
	SoldOut bool
}

// PlanFinder resolves a processor price id to a stored plan. Returns
// common.ErrorNotFound when no plan mirrors the price.
type PlanFinder interface {
	FindByStripePrice(ctx context.Context, priceID string) (*PlanInfo, error)
}

// CustomerDirectory links verified users to their processor customer ids.
type CustomerDirectory interface {
	// StripeCustomerID returns "" (no error) when the user has no stored handle.
	StripeCustomerID(ctx context.Context, uid string) (string, error)
	SetStripeCustomerID(ctx context.Context, uid, customerID string) error
}

type Service struct {
	api       API
	plans     PlanFinder
	customers CustomerDirectory
	baseURL   string
	logger    logging.Logger
}

func NewService(api API, plans PlanFinder, customers CustomerDirectory, baseURL string, logger logging.Logger) *Service {
	return &Service{
		api:       api,
		plans:     plans,
		customers: customers,
		baseURL:   baseURL,
		logger:    logger,
	}
}

// CreateOrReuseCustomer looks up the processor customer by email and
// creates one when absent. The resulting handle is stored on the user
// profile for later portal/invoice calls.
func (s *Service) CreateOrReuseCustomer(ctx context.Context, uid, email string) (*Customer, error) {
	customer, err := s.api.FindCustomerByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUpstream, err)
	}

	if customer == nil {
		customer, err = s.api.CreateCustomer(ctx, email, uid)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrorUpstream, err)
		}
	}

	if err := s.customers.SetStripeCustomerID(ctx, uid, customer.ID); err != nil {
		// The handle can be re-derived from email next time; log and move on.
		s.logger.Warn(ctx, "could not store customer id", "uid", uid, "error", err.Error())
	}

	return customer, nil
}

// Checkout starts a checkout session for the verified caller.
func (s *Service) Checkout(ctx context.Context, uid, email, priceID, mode, returnURL string) (*CheckoutSession, error) {
	if priceID == "" || email == "" {
		return nil, fmt.Errorf("%w: missing required parameters", common.ErrorValidation)
	}
	if mode != ModeSubscription && mode != ModePayment {
		return nil, fmt.Errorf("%w: invalid mode %q", common.ErrorValidation, mode)
	}

	metadata := map[string]string{"userId": uid}

	plan, err := s.plans.FindByStripePrice(ctx, priceID)
	switch {
	case err == nil:
		if plan.SoldOut {
			return nil, fmt.Errorf("%w: plan is sold out", common.ErrorValidation)
		}
		metadata["planId"] = plan.ID
	case isNotFound(err):
		// A price without a local mirror is still purchasable.
	default:
		return nil, err
	}

	customer, err := s.CreateOrReuseCustomer(ctx, uid, email)
	if err != nil {
		return nil, err
	}

	base := returnURL
	if base == "" {
		base = s.baseURL
	}
	successURL := base + "?session_id={CHECKOUT_SESSION_ID}"

	session, err := s.api.CreateCheckoutSession(ctx, customer.ID, priceID, mode, successURL, base, metadata)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUpstream, err)
	}

	return session, nil
}

// Portal returns a self-service billing portal URL. A caller without a
// stored customer handle gets common.ErrorNotFound.
func (s *Service) Portal(ctx context.Context, uid, returnURL string) (string, error) {
	customerID, err := s.customers.StripeCustomerID(ctx, uid)
	if err != nil {
		return "", err
	}
	if customerID == "" {
		return "", fmt.Errorf("%w: no customer for user", common.ErrorNotFound)
	}

	if returnURL == "" {
		returnURL = s.baseURL
	}

	url, err := s.api.CreatePortalSession(ctx, customerID, returnURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorUpstream, err)
	}
	return url, nil
}

// CancelSubscription schedules the caller's subscription to end at the
// close of the current billing period. A caller without a stored
// customer handle or without a cancelable subscription gets
// common.ErrorNotFound.
func (s *Service) CancelSubscription(ctx context.Context, uid string) (*Cancellation, error) {
	customerID, err := s.customers.StripeCustomerID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if customerID == "" {
		return nil, fmt.Errorf("%w: no customer for user", common.ErrorNotFound)
	}

	cancellation, err := s.api.CancelSubscription(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUpstream, err)
	}
	if cancellation == nil {
		return nil, fmt.Errorf("%w: no subscription to cancel", common.ErrorNotFound)
	}

	s.logger.Info(ctx, "subscription scheduled for cancellation",
		"uid", uid, "subscription", cancellation.SubscriptionID)
	return cancellation, nil
}

// Invoices returns the caller's billing history, most recent first:
// invoices plus succeeded one-time payments that no invoice already
// represents. A user without a customer handle gets an empty list.
func (s *Service) Invoices(ctx context.Context, uid string) ([]Invoice, error) {
	customerID, err := s.customers.StripeCustomerID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if customerID == "" {
		return []Invoice{}, nil
	}

	invoices, intents, err := s.api.ListInvoices(ctx, customerID, invoicePageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUpstream, err)
	}

	merged := MergeHistory(invoices, intents)
	if len(merged) > invoicePageSize {
		merged = merged[:invoicePageSize]
	}
	return merged, nil
}

// MergeHistory folds succeeded stand-alone payment intents into the
// invoice list and orders the result most recent first.
func MergeHistory(invoices []Invoice, intents []PaymentIntent) []Invoice {
	merged := make([]Invoice, 0, len(invoices)+len(intents))
	merged = append(merged, invoices...)

	for _, pi := range intents {
		if pi.Status != "succeeded" {
			continue
		}
		if pi.InvoiceID != "" {
			// Already represented by its invoice.
			continue
		}
		merged = append(merged, Invoice{
			ID:       pi.ID,
			Amount:   pi.Amount,
			Currency: pi.Currency,
			Status:   "paid",
			Date:     pi.Created,
			Type:     "payment",
		})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date)
	})

	return merged
}

func isNotFound(err error) bool {
	return errors.Is(err, common.ErrorNotFound)
}
