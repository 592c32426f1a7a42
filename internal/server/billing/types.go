// Package billing is a stateless façade over the payment processor. It
// holds no local state: customers, sessions and invoices live upstream,
// and every operation is a network round-trip with bounded retry.
package billing

import "time"

// Customer is the processor-side customer handle.
type Customer struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// CheckoutSession is a started checkout flow.
type CheckoutSession struct {
	ID  string `json:"sessionId"`
	URL string `json:"url"`
}

const (
	ModeSubscription = "subscription"
	ModePayment      = "payment"
)

// Cancellation reports a subscription scheduled to end at the close of
// its billing period.
type Cancellation struct {
	SubscriptionID   string    `json:"subscriptionId"`
	CurrentPeriodEnd time.Time `json:"currentPeriodEnd"`
}

// Invoice is one line of a customer's billing history. One-time payments
// without an invoice document are mapped into the same shape.
type Invoice struct {
	ID       string    `json:"id"`
	Number   string    `json:"number,omitempty"`
	Amount   int64     `json:"amount"`
	Currency string    `json:"currency"`
	Status   string    `json:"status"`
	Date     time.Time `json:"date"`
	PDFURL   string    `json:"pdf_url,omitempty"`
	Type     string    `json:"type"` // invoice or payment
}

// PaymentIntent is a one-time payment record.
type PaymentIntent struct {
	ID        string
	Amount    int64
	Currency  string
	Status    string
	Created   time.Time
	InvoiceID string
}

// Price is a processor price with its product data, used for plan
// reconciliation and import.
type Price struct {
	ID                 string   `json:"id"`
	Amount             int64    `json:"amount"`
	Currency           string   `json:"currency"`
	Interval           string   `json:"interval"` // month, year or one-time
	Type               string   `json:"type"`     // subscription or payment
	ProductName        string   `json:"productName"`
	ProductDescription string   `json:"productDescription,omitempty"`
	MarketingFeatures  []string `json:"marketingFeatures,omitempty"`
}
