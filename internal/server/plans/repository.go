package plans

import "context"

type Repository interface {
	Create(ctx context.Context, p *Plan) (*Plan, error)
	Get(ctx context.Context, id string) (*Plan, error)
	GetByStripePriceID(ctx context.Context, priceID string) (*Plan, error)
	List(ctx context.Context) ([]*Plan, error)
	Update(ctx context.Context, id string, patch *PlanPatch) (*Plan, error)
	Delete(ctx context.Context, id string) error
	IncrementSoldCount(ctx context.Context, id string) error
}
