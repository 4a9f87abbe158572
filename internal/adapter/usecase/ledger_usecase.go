package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

const (
	defaultEventsLimit = 100
	maxEventsLimit     = 1000
)

// LedgerUseCase provides business logic for campaigns, pledges and
// settlement. It orchestrates domain rules and the repository to implement
// the port.LedgerUseCase interface.
type LedgerUseCase struct {
	repo      port.LedgerRepository
	publisher port.EventPublisher
	logger    *slog.Logger

	// now is the clock used for creation times and event timestamps.
	now func() time.Time
}

// Option configures a LedgerUseCase.
type Option func(*LedgerUseCase)

// WithPublisher sets the publisher receiving committed events.
func WithPublisher(p port.EventPublisher) Option {
	return func(u *LedgerUseCase) { u.publisher = p }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(u *LedgerUseCase) { u.logger = l }
}

// WithClock replaces the wall clock, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(u *LedgerUseCase) { u.now = now }
}

// NewLedgerUseCase creates a new usecase with the provided repository.
// Without options events are not published anywhere and logs are discarded.
func NewLedgerUseCase(repo port.LedgerRepository, opts ...Option) *LedgerUseCase {
	u := &LedgerUseCase{
		repo:   repo,
		logger: slog.New(slog.DiscardHandler),
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CreateCampaign registers a new open campaign with the given goal. The
// deadline is one funding period after now.
func (u *LedgerUseCase) CreateCampaign(ctx context.Context, creator domain.Identity, goal domain.Amount) (int64, error) {
	if creator == "" {
		return 0, domain.ErrInvalidIdentity
	}
	if goal <= 0 {
		return 0, domain.ErrInvalidGoal
	}
	now := u.now()
	c := &domain.Campaign{
		Creator:     creator,
		FundingGoal: goal,
		Deadline:    domain.ComputeDeadline(now),
		CreatedAt:   now,
	}
	ev, err := u.repo.InsertCampaign(ctx, c, func(c domain.Campaign) domain.Event {
		return domain.CampaignCreated(uuid.NewString(), c, now)
	})
	if err != nil {
		return 0, err
	}
	u.logger.Info("campaign created",
		slog.Int64("campaign_id", ev.CampaignID),
		slog.String("creator", string(creator)),
		slog.Int64("funding_goal", int64(goal)),
		slog.Time("deadline", ev.Deadline),
	)
	u.publish(ev)
	return ev.CampaignID, nil
}

// Deadline returns ref plus the funding period.
func (u *LedgerUseCase) Deadline(ref time.Time) time.Time {
	return domain.ComputeDeadline(ref)
}

// Pledge moves amount from funder into the campaign escrow. The deadline is
// not enforced.
func (u *LedgerUseCase) Pledge(ctx context.Context, id int64, funder domain.Identity, amount domain.Amount) (domain.Event, error) {
	now := u.now()
	ev, err := u.repo.ApplyToCampaign(ctx, id, func(c *domain.Campaign) (domain.Event, domain.Transfer, error) {
		t, err := c.Pledge(funder, amount)
		if err != nil {
			return domain.Event{}, domain.Transfer{}, err
		}
		return domain.Pledged(uuid.NewString(), *c, funder, amount, now), t, nil
	})
	if err != nil {
		u.logRejection("pledge rejected", id, funder, err)
		return domain.Event{}, err
	}
	u.logger.Info("pledge accepted",
		slog.Int64("campaign_id", id),
		slog.String("funder", string(funder)),
		slog.Int64("amount", int64(amount)),
		slog.Int64("pledged_fund", int64(ev.PledgedFund)),
	)
	u.publish(ev)
	return ev, nil
}

// Settle checks the funding goal of campaign id on behalf of caller and, when
// it is reached, pays the escrow out to the creator and closes the campaign.
func (u *LedgerUseCase) Settle(ctx context.Context, id int64, caller domain.Identity) (domain.Event, error) {
	now := u.now()
	ev, err := u.repo.ApplyToCampaign(ctx, id, func(c *domain.Campaign) (domain.Event, domain.Transfer, error) {
		t, err := c.Settle(caller)
		if err != nil {
			return domain.Event{}, domain.Transfer{}, err
		}
		return domain.Settled(uuid.NewString(), *c, now), t, nil
	})
	if err != nil {
		u.logRejection("settlement rejected", id, caller, err)
		return domain.Event{}, err
	}
	u.logger.Info("campaign settled",
		slog.Int64("campaign_id", id),
		slog.String("creator", string(ev.Creator)),
		slog.Int64("pledged_fund", int64(ev.PledgedFund)),
	)
	u.publish(ev)
	return ev, nil
}

// GetCampaign returns the campaign with the given id.
func (u *LedgerUseCase) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrUnknownCampaign
	}
	return c, nil
}

// ListCampaigns returns all campaigns ordered by id.
func (u *LedgerUseCase) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return u.repo.ListCampaigns(ctx)
}

// Events returns a page of the event log in append order.
func (u *LedgerUseCase) Events(ctx context.Context, req port.EventsReq) ([]domain.Event, error) {
	limit := req.Limit
	switch {
	case limit <= 0:
		limit = defaultEventsLimit
	case limit > maxEventsLimit:
		limit = maxEventsLimit
	}
	after := req.After
	if after < 0 {
		after = 0
	}
	return u.repo.ListEvents(ctx, after, limit)
}

// Balance returns the net position of an account.
func (u *LedgerUseCase) Balance(ctx context.Context, account domain.Account) (domain.Amount, error) {
	return u.repo.Balance(ctx, account)
}

func (u *LedgerUseCase) publish(ev domain.Event) {
	if u.publisher != nil {
		u.publisher.Publish(ev)
	}
}

// logRejection logs domain rejections at debug and anything else as an error.
func (u *LedgerUseCase) logRejection(msg string, id int64, caller domain.Identity, err error) {
	level := slog.LevelError
	if isRejection(err) {
		level = slog.LevelDebug
	}
	u.logger.Log(context.Background(), level, msg,
		slog.Int64("campaign_id", id),
		slog.String("caller", string(caller)),
		slog.Any("error", err),
	)
}

var rejections = []error{
	domain.ErrInvalidGoal,
	domain.ErrInvalidAmount,
	domain.ErrInvalidIdentity,
	domain.ErrUnknownCampaign,
	domain.ErrCampaignClosed,
	domain.ErrSelfFundingForbidden,
	domain.ErrUnauthorized,
	domain.ErrGoalNotMet,
	domain.ErrAmountOverflow,
	domain.ErrAlreadySettled,
}

func isRejection(err error) bool {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}
