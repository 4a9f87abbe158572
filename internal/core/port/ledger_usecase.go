package port

import (
	"context"
	"time"

	"crowdfund/internal/core/domain"
)

// LedgerUseCase defines the business operations exposed by the ledger. This
// interface represents the primary port into the application domain. Mock
// implementations can be generated from this interface for testing.
type LedgerUseCase interface {
	// CreateCampaign registers a campaign owned by creator and returns its id.
	CreateCampaign(ctx context.Context, creator domain.Identity, goal domain.Amount) (int64, error)

	// Deadline returns the deadline a campaign created at ref would get.
	Deadline(ref time.Time) time.Time

	// Pledge moves amount from funder into the campaign's escrow. The
	// creator can never fund their own campaign and closed campaigns accept
	// nothing.
	Pledge(ctx context.Context, id int64, funder domain.Identity, amount domain.Amount) (domain.Event, error)

	// Settle pays the escrow out to the creator and closes the campaign once
	// the goal is reached. Only the creator may call it, and only once.
	Settle(ctx context.Context, id int64, caller domain.Identity) (domain.Event, error)

	// GetCampaign returns a campaign or domain.ErrUnknownCampaign.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// ListCampaigns returns every campaign, closed ones included.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// Events returns a page of the event log.
	Events(ctx context.Context, req EventsReq) ([]domain.Event, error)
	// Balance returns the net position of an account.
	Balance(ctx context.Context, account domain.Account) (domain.Amount, error)
}

// EventsReq selects a page of the event log. Limit is clamped by the use
// case; zero means its default.
type EventsReq struct {
	After int64
	Limit int
}
