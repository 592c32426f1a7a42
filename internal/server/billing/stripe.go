package billing

import (
	"context"
	"time"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

// StripeAPI implements API against the live Stripe backend.
type StripeAPI struct {
	sc *client.API
}

func NewStripeAPI(secretKey string) *StripeAPI {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &StripeAPI{sc: sc}
}

func (s *StripeAPI) FindCustomerByEmail(ctx context.Context, email string) (*Customer, error) {
	var found *Customer

	err := withRetry(ctx, func() error {
		params := &stripe.CustomerListParams{Email: stripe.String(email)}
		params.Context = ctx
		params.Limit = stripe.Int64(1)

		iter := s.sc.Customers.List(params)
		if iter.Next() {
			c := iter.Customer()
			found = &Customer{ID: c.ID, Email: c.Email}
		}
		return iter.Err()
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

func (s *StripeAPI) CreateCustomer(ctx context.Context, email, externalUserID string) (*Customer, error) {
	var created *Customer

	err := withRetry(ctx, func() error {
		params := &stripe.CustomerParams{Email: stripe.String(email)}
		params.Context = ctx
		params.AddMetadata("externalUserId", externalUserID)

		c, err := s.sc.Customers.New(params)
		if err != nil {
			return err
		}
		created = &Customer{ID: c.ID, Email: c.Email}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *StripeAPI) CreateCheckoutSession(ctx context.Context, customerID, priceID, mode, successURL, cancelURL string, metadata map[string]string) (*CheckoutSession, error) {
	var session *CheckoutSession

	err := withRetry(ctx, func() error {
		params := &stripe.CheckoutSessionParams{
			Customer:           stripe.String(customerID),
			Mode:               stripe.String(mode),
			PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
			LineItems: []*stripe.CheckoutSessionLineItemParams{
				{
					Price:    stripe.String(priceID),
					Quantity: stripe.Int64(1),
				},
			},
			SuccessURL: stripe.String(successURL),
			CancelURL:  stripe.String(cancelURL),
		}
		params.Context = ctx
		for k, v := range metadata {
			params.AddMetadata(k, v)
		}

		sess, err := s.sc.CheckoutSessions.New(params)
		if err != nil {
			return err
		}
		session = &CheckoutSession{ID: sess.ID, URL: sess.URL}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

func (s *StripeAPI) CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error) {
	var url string

	err := withRetry(ctx, func() error {
		params := &stripe.BillingPortalSessionParams{
			Customer:  stripe.String(customerID),
			ReturnURL: stripe.String(returnURL),
		}
		params.Context = ctx

		sess, err := s.sc.BillingPortalSessions.New(params)
		if err != nil {
			return err
		}
		url = sess.URL
		return nil
	})
	if err != nil {
		return "", err
	}

	return url, nil
}

func (s *StripeAPI) CancelSubscription(ctx context.Context, customerID string) (*Cancellation, error) {
	var result *Cancellation

	err := withRetry(ctx, func() error {
		result = nil

		subID, err := s.currentSubscriptionID(ctx, customerID)
		if err != nil {
			return err
		}
		if subID == "" {
			return nil
		}

		params := &stripe.SubscriptionParams{CancelAtPeriodEnd: stripe.Bool(true)}
		params.Context = ctx

		sub, err := s.sc.Subscriptions.Update(subID, params)
		if err != nil {
			return err
		}
		result = &Cancellation{
			SubscriptionID:   sub.ID,
			CurrentPeriodEnd: time.Unix(sub.CurrentPeriodEnd, 0).UTC(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// currentSubscriptionID prefers the active subscription and falls back
// to a trialing one. Returns "" when the customer has neither.
func (s *StripeAPI) currentSubscriptionID(ctx context.Context, customerID string) (string, error) {
	for _, status := range []string{"active", "trialing"} {
		params := &stripe.SubscriptionListParams{
			Customer: stripe.String(customerID),
			Status:   stripe.String(status),
		}
		params.Context = ctx
		params.Limit = stripe.Int64(1)

		it := s.sc.Subscriptions.List(params)
		if it.Next() {
			return it.Subscription().ID, nil
		}
		if err := it.Err(); err != nil {
			return "", err
		}
	}
	return "", nil
}

func (s *StripeAPI) ListInvoices(ctx context.Context, customerID string, limit int) ([]Invoice, []PaymentIntent, error) {
	var invoices []Invoice
	var intents []PaymentIntent

	err := withRetry(ctx, func() error {
		invoices = invoices[:0]
		intents = intents[:0]

		invParams := &stripe.InvoiceListParams{Customer: stripe.String(customerID)}
		invParams.Context = ctx
		invParams.Limit = stripe.Int64(int64(limit))

		it := s.sc.Invoices.List(invParams)
		for it.Next() {
			inv := it.Invoice()
			record := Invoice{
				ID:       inv.ID,
				Number:   inv.Number,
				Amount:   inv.Total,
				Currency: string(inv.Currency),
				Status:   string(inv.Status),
				Date:     time.Unix(inv.Created, 0).UTC(),
				PDFURL:   inv.InvoicePDF,
				Type:     "invoice",
			}
			invoices = append(invoices, record)
			if len(invoices) >= limit {
				break
			}
		}
		if err := it.Err(); err != nil {
			return err
		}

		piParams := &stripe.PaymentIntentListParams{Customer: stripe.String(customerID)}
		piParams.Context = ctx
		piParams.Limit = stripe.Int64(int64(limit))

		pit := s.sc.PaymentIntents.List(piParams)
		for pit.Next() {
			pi := pit.PaymentIntent()
			record := PaymentIntent{
				ID:       pi.ID,
				Amount:   pi.Amount,
				Currency: string(pi.Currency),
				Status:   string(pi.Status),
				Created:  time.Unix(pi.Created, 0).UTC(),
			}
			if pi.Invoice != nil {
				record.InvoiceID = pi.Invoice.ID
			}
			intents = append(intents, record)
			if len(intents) >= limit {
				break
			}
		}
		return pit.Err()
	})
	if err != nil {
		return nil, nil, err
	}

	return invoices, intents, nil
}

func (s *StripeAPI) ListActivePrices(ctx context.Context) ([]Price, error) {
	var prices []Price

	err := withRetry(ctx, func() error {
		prices = prices[:0]

		params := &stripe.PriceListParams{Active: stripe.Bool(true)}
		params.Context = ctx
		params.Limit = stripe.Int64(100)
		params.AddExpand("data.product")

		// The iterator follows the cursor until the remote list is
		// exhausted; a partial page is never treated as the full set.
		it := s.sc.Prices.List(params)
		for it.Next() {
			prices = append(prices, mapPrice(it.Price()))
		}
		return it.Err()
	})
	if err != nil {
		return nil, err
	}

	return prices, nil
}

func mapPrice(p *stripe.Price) Price {
	price := Price{
		ID:       p.ID,
		Amount:   p.UnitAmount,
		Currency: string(p.Currency),
		Interval: "one-time",
		Type:     "payment",
	}
	if p.Recurring != nil {
		price.Interval = string(p.Recurring.Interval)
	}
	if p.Type == stripe.PriceTypeRecurring {
		price.Type = "subscription"
	}
	if p.Product != nil {
		price.ProductName = p.Product.Name
		price.ProductDescription = p.Product.Description
		for _, f := range p.Product.MarketingFeatures {
			price.MarketingFeatures = append(price.MarketingFeatures, f.Name)
		}
	}
	return price
}
