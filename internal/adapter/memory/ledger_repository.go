package memory

import (
	"context"
	"sync"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// campaignCell pairs a campaign with the lock serializing its mutations.
type campaignCell struct {
	mu sync.Mutex
	c  domain.Campaign
}

// LedgerRepository implements port.LedgerRepository in process memory.
// Each campaign has its own mutex so operations on different campaigns do not
// contend; the lock is held for the whole check, mutate, post and append
// sequence.
type LedgerRepository struct {
	// mu guards the campaigns index.
	mu        sync.RWMutex
	campaigns []*campaignCell

	// journal guards balances and events.
	journal  sync.Mutex
	balances map[domain.Account]domain.Amount
	events   []domain.Event
}

// NewLedgerRepository returns an empty repository.
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{balances: make(map[domain.Account]domain.Amount)}
}

var _ port.LedgerRepository = (*LedgerRepository)(nil)

// InsertCampaign appends c with the next id.
func (r *LedgerRepository) InsertCampaign(ctx context.Context, c *domain.Campaign, init port.CampaignInit) (domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return domain.Event{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = int64(len(r.campaigns))
	r.campaigns = append(r.campaigns, &campaignCell{c: *c})

	return r.append(init(*c), nil)
}

// ApplyToCampaign runs fn on a copy of the campaign under its lock and
// publishes the copy only when fn succeeds.
func (r *LedgerRepository) ApplyToCampaign(ctx context.Context, id int64, fn port.CampaignMutation) (domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return domain.Event{}, err
	}
	cell := r.cell(id)
	if cell == nil {
		return domain.Event{}, domain.ErrUnknownCampaign
	}
	cell.mu.Lock()
	defer cell.mu.Unlock()

	next := cell.c
	ev, t, err := fn(&next)
	if err != nil {
		return domain.Event{}, err
	}
	if ev, err = r.append(ev, &t); err != nil {
		return domain.Event{}, err
	}
	cell.c = next
	return ev, nil
}

// GetCampaign returns a copy of the campaign or nil.
func (r *LedgerRepository) GetCampaign(_ context.Context, id int64) (*domain.Campaign, error) {
	cell := r.cell(id)
	if cell == nil {
		return nil, nil
	}
	cell.mu.Lock()
	c := cell.c
	cell.mu.Unlock()
	return &c, nil
}

// ListCampaigns returns copies of all campaigns in id order.
func (r *LedgerRepository) ListCampaigns(_ context.Context) ([]domain.Campaign, error) {
	r.mu.RLock()
	cells := r.campaigns
	r.mu.RUnlock()

	out := make([]domain.Campaign, 0, len(cells))
	for _, cell := range cells {
		cell.mu.Lock()
		out = append(out, cell.c)
		cell.mu.Unlock()
	}
	return out, nil
}

// ListEvents returns events after afterSeq. Seq n lives at index n-1.
func (r *LedgerRepository) ListEvents(_ context.Context, afterSeq int64, limit int) ([]domain.Event, error) {
	r.journal.Lock()
	defer r.journal.Unlock()

	afterSeq = max(afterSeq, 0)
	if afterSeq >= int64(len(r.events)) || limit <= 0 {
		return []domain.Event{}, nil
	}
	end := min(int(afterSeq)+limit, len(r.events))
	out := make([]domain.Event, end-int(afterSeq))
	copy(out, r.events[afterSeq:end])
	return out, nil
}

// Balance returns the net position of account.
func (r *LedgerRepository) Balance(_ context.Context, account domain.Account) (domain.Amount, error) {
	r.journal.Lock()
	defer r.journal.Unlock()
	return r.balances[account], nil
}

func (r *LedgerRepository) cell(id int64) *campaignCell {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id < 0 || id >= int64(len(r.campaigns)) {
		return nil
	}
	return r.campaigns[id]
}

// append posts t, if any, and appends ev to the log in one critical section.
// Nothing is posted when any resulting balance would overflow.
func (r *LedgerRepository) append(ev domain.Event, t *domain.Transfer) (domain.Event, error) {
	r.journal.Lock()
	defer r.journal.Unlock()

	if t != nil {
		entries := t.Entries()
		var next [2]domain.Amount
		for i, e := range entries {
			bal, err := r.balances[e.Account].Add(e.Amount)
			if err != nil {
				return domain.Event{}, err
			}
			next[i] = bal
		}
		for i, e := range entries {
			r.balances[e.Account] = next[i]
		}
	}
	ev.Seq = int64(len(r.events)) + 1
	r.events = append(r.events, ev)
	return ev, nil
}
