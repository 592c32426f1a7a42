package users

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, uid string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	// Upsert creates the profile on first sight and merges on repeat.
	Upsert(ctx context.Context, user *User) (*User, error)
	SetStripeCustomerID(ctx context.Context, uid, customerID string) error
}
