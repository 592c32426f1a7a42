package billing

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stripe/stripe-go/v81"
)

// API is the narrow processor surface the service depends on. The
// production implementation is the Stripe client; tests supply fakes.
type API interface {
	// FindCustomerByEmail returns nil (no error) when no customer matches.
	FindCustomerByEmail(ctx context.Context, email string) (*Customer, error)
	CreateCustomer(ctx context.Context, email, externalUserID string) (*Customer, error)
	CreateCheckoutSession(ctx context.Context, customerID, priceID, mode, successURL, cancelURL string, metadata map[string]string) (*CheckoutSession, error)
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error)
	ListInvoices(ctx context.Context, customerID string, limit int) ([]Invoice, []PaymentIntent, error)
	// CancelSubscription schedules the customer's current subscription to
	// end at the close of the billing period. Returns nil (no error) when
	// the customer has no active or trialing subscription.
	CancelSubscription(ctx context.Context, customerID string) (*Cancellation, error)
	// ListActivePrices pages through the complete active price list; a
	// partial fetch is never returned.
	ListActivePrices(ctx context.Context) ([]Price, error)
}

// PriceLister is the slice of API that plan reconciliation needs.
type PriceLister interface {
	ListActivePrices(ctx context.Context) ([]Price, error)
}

const (
	maxRetries      = 3
	initialInterval = 200 * time.Millisecond
)

// withRetry runs op with bounded exponential backoff. Processor-reported
// client errors (4xx) are permanent and returned immediately.
func withRetry(ctx context.Context, op func() error) error {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(newExponential(), maxRetries), ctx)

	return backoff.Retry(func() error {
		err := op()
		if err == nil {
			return nil
		}
		if isPermanent(err) {
			return backoff.Permanent(err)
		}
		return err
	}, policy)
}

func newExponential() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = initialInterval
	return b
}

func isPermanent(err error) bool {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return stripeErr.HTTPStatusCode >= 400 && stripeErr.HTTPStatusCode < 500
	}
	return false
}
