package port

import (
	"context"

	"crowdfund/internal/core/domain"
)

// CampaignInit builds the creation event once storage has assigned the
// campaign its id.
type CampaignInit func(c domain.Campaign) domain.Event

// CampaignMutation is applied to a campaign while storage holds it
// exclusively. It mutates c and returns the event to append and the transfer
// to post. Returning an error aborts the whole call.
type CampaignMutation func(c *domain.Campaign) (domain.Event, domain.Transfer, error)

// LedgerRepository defines the persistence layer for the ledger. It is an
// outbound port in hexagonal architecture. Implementations must be
// concurrency-safe: mutations of one campaign are serialized, and the
// campaign change, its ledger postings and its event are stored atomically.
type LedgerRepository interface {
	// InsertCampaign assigns c the next dense id, stores it and appends the
	// event returned by init. The stored event (with Seq) is returned.
	InsertCampaign(ctx context.Context, c *domain.Campaign, init CampaignInit) (domain.Event, error)
	// ApplyToCampaign locks campaign id, runs fn against it and commits the
	// result. domain.ErrUnknownCampaign is returned for a missing id.
	ApplyToCampaign(ctx context.Context, id int64, fn CampaignMutation) (domain.Event, error)

	// GetCampaign returns a campaign by id, or nil when it does not exist.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// ListCampaigns returns all campaigns ordered by id.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// ListEvents returns up to limit events with Seq greater than afterSeq.
	ListEvents(ctx context.Context, afterSeq int64, limit int) ([]domain.Event, error)
	// Balance returns the net position of an account.
	Balance(ctx context.Context, account domain.Account) (domain.Amount, error)
}

// EventPublisher receives events after they have been committed.
// Publish must not block the caller.
type EventPublisher interface {
	Publish(ev domain.Event)
}
