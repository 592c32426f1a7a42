// Package plans stores locally mirrored payment-processor prices and
// reconciles them against the processor's live price list. A plan is a
// mirror used to render pricing UI without a processor round-trip; it is
// reconciled, not owned.
package plans

type Plan struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Amount        int64  `json:"amount"` // minor units (cents)
	Currency      string `json:"currency"`
	Interval      string `json:"interval"` // month, year or one-time
	StripePriceID string `json:"stripePriceId"`
	Active        bool   `json:"active"`
	MaxQuantity   int    `json:"maxQuantity,omitempty"`
	SoldCount     int    `json:"soldCount"`
}

type PlanPatch struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	Amount        *int64  `json:"amount"`
	Currency      *string `json:"currency"`
	Interval      *string `json:"interval"`
	StripePriceID *string `json:"stripePriceId"`
	Active        *bool   `json:"active"`
	MaxQuantity   *int    `json:"maxQuantity"`
}

// SoldOut reports whether a capped plan has exhausted its quantity.
func (p *Plan) SoldOut() bool {
	return p.MaxQuantity > 0 && p.SoldCount >= p.MaxQuantity
}
