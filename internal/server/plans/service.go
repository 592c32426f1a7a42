package plans

import (
	"context"
	"fmt"

	"github.com/folderforge/folderforge/internal/common"
	"github.com/folderforge/folderforge/internal/server/billing"
	"github.com/google/uuid"
)

// Service manages the plan mirror and its reconciliation against the
// processor's live price list.
type Service struct {
	repo   Repository
	prices billing.PriceLister
}

func NewService(repo Repository, prices billing.PriceLister) *Service {
	return &Service{repo: repo, prices: prices}
}

func (s *Service) Create(ctx context.Context, p *Plan) (*Plan, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("%w: missing required fields", common.ErrorValidation)
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id string) (*Plan, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Plan, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id string, patch *PlanPatch) (*Plan, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: missing id", common.ErrorValidation)
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: missing id", common.ErrorValidation)
	}
	return s.repo.Delete(ctx, id)
}

// SyncCheck reports stored plans whose processor price is no longer in
// the active remote set. The remote list is paged through in full before
// any plan is declared stale; plans without a price id are ignored.
func (s *Service) SyncCheck(ctx context.Context) ([]*Plan, error) {
	local, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	mirrored := local[:0:0]
	for _, p := range local {
		if p.StripePriceID != "" {
			mirrored = append(mirrored, p)
		}
	}
	if len(mirrored) == 0 {
		return []*Plan{}, nil
	}

	remote, err := s.prices.ListActivePrices(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUpstream, err)
	}

	return StalePlans(mirrored, remote), nil
}

// ImportablePrices returns active remote prices that no stored plan
// mirrors yet.
func (s *Service) ImportablePrices(ctx context.Context) ([]billing.Price, error) {
	remote, err := s.prices.ListActivePrices(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUpstream, err)
	}

	local, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return UnmirroredPrices(remote, local), nil
}

// StalePlans is the set difference: plans whose price id is absent from
// the remote active set.
func StalePlans(local []*Plan, remote []billing.Price) []*Plan {
	active := make(map[string]struct{}, len(remote))
	for _, p := range remote {
		active[p.ID] = struct{}{}
	}

	stale := []*Plan{}
	for _, p := range local {
		if _, ok := active[p.StripePriceID]; !ok {
			stale = append(stale, p)
		}
	}
	return stale
}

// UnmirroredPrices is the reverse difference: remote prices not yet
// represented by a stored plan.
func UnmirroredPrices(remote []billing.Price, local []*Plan) []billing.Price {
	mirrored := make(map[string]struct{}, len(local))
	for _, p := range local {
		if p.StripePriceID != "" {
			mirrored[p.StripePriceID] = struct{}{}
		}
	}

	importable := []billing.Price{}
	for _, price := range remote {
		if _, ok := mirrored[price.ID]; !ok {
			importable = append(importable, price)
		}
	}
	return importable
}

// FindByStripePrice implements billing.PlanFinder.
func (s *Service) FindByStripePrice(ctx context.Context, priceID string) (*billing.PlanInfo, error) {
	plan, err := s.repo.GetByStripePriceID(ctx, priceID)
	if err != nil {
		return nil, err
	}
	return &billing.PlanInfo{ID: plan.ID, SoldOut: plan.SoldOut()}, nil
}
