// Package users stores user profile records. Identities are issued by the
// external token provider; this package only mirrors profile data the
// server needs (role, billing linkage).
package users

import "time"

// Role is the closed set of authorization roles.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleFree     Role = "free"
	RolePaid     Role = "paid"
	RoleLifetime Role = "lifetime"
)

// ParseRole maps a stored string onto the closed role set; anything
// unknown degrades to the free tier.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin, RoleFree, RolePaid, RoleLifetime:
		return Role(s)
	default:
		return RoleFree
	}
}

type User struct {
	UID                string     `json:"uid"`
	Email              string     `json:"email"`
	DisplayName        string     `json:"displayName,omitempty"`
	PhotoURL           string     `json:"photoURL,omitempty"`
	Role               Role       `json:"role"`
	StripeCustomerID   string     `json:"stripeCustomerId,omitempty"`
	SubscriptionStatus string     `json:"subscriptionStatus,omitempty"`
	PlanID             string     `json:"planId,omitempty"`
	CurrentPeriodEnd   *time.Time `json:"currentPeriodEnd,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}
