package postgres

import (
	"context"
	"math"
	"net/url"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/config/configs"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/db"
)

// newTestRepository connects to PSQL_TEST_ADDRESS, migrates it and empties
// the ledger tables. Tests are skipped when the variable is unset.
func newTestRepository(t *testing.T) *LedgerRepository {
	t.Helper()
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(addr))

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, configs.Postgres{Addr: *u})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE campaign_events, ledger_entries, campaigns`)
	require.NoError(t, err)
	return NewLedgerRepository(pool)
}

func createdEvent(c domain.Campaign) domain.Event {
	return domain.CampaignCreated(uuid.NewString(), c, c.CreatedAt)
}

func newCampaign(creator domain.Identity, goal domain.Amount) *domain.Campaign {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Campaign{Creator: creator, FundingGoal: goal, Deadline: domain.ComputeDeadline(now), CreatedAt: now}
}

func pledgeMutation(funder domain.Identity, amount domain.Amount) func(*domain.Campaign) (domain.Event, domain.Transfer, error) {
	return func(c *domain.Campaign) (domain.Event, domain.Transfer, error) {
		t, err := c.Pledge(funder, amount)
		if err != nil {
			return domain.Event{}, domain.Transfer{}, err
		}
		return domain.Pledged(uuid.NewString(), *c, funder, amount, time.Now().UTC()), t, nil
	}
}

func TestLedgerRepositoryLifecycle(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := newCampaign("creator-1", 10)
	ev, err := repo.InsertCampaign(ctx, first, createdEvent)
	require.NoError(t, err)
	assert.Equal(t, int64(0), first.ID)
	assert.Equal(t, int64(1), ev.Seq)

	second := newCampaign("creator-2", 5)
	_, err = repo.InsertCampaign(ctx, second, createdEvent)
	require.NoError(t, err)
	assert.Equal(t, int64(1), second.ID)

	_, err = repo.ApplyToCampaign(ctx, first.ID, pledgeMutation("funder-1", 20))
	require.NoError(t, err)
	ev, err = repo.ApplyToCampaign(ctx, first.ID, pledgeMutation("funder-2", 15))
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(35), ev.PledgedFund)

	_, err = repo.ApplyToCampaign(ctx, first.ID, pledgeMutation("creator-1", 5))
	require.ErrorIs(t, err, domain.ErrSelfFundingForbidden)

	ev, err = repo.ApplyToCampaign(ctx, first.ID, func(c *domain.Campaign) (domain.Event, domain.Transfer, error) {
		tr, err := c.Settle("creator-1")
		if err != nil {
			return domain.Event{}, domain.Transfer{}, err
		}
		return domain.Settled(uuid.NewString(), *c, time.Now().UTC()), tr, nil
	})
	require.NoError(t, err)
	assert.True(t, ev.Closed)

	got, err := repo.GetCampaign(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, got.Closed)
	assert.Equal(t, domain.Amount(35), got.PledgedFund)

	bal, err := repo.Balance(ctx, domain.Identity("creator-1").Account())
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(35), bal)

	bal, err = repo.Balance(ctx, domain.EscrowAccount(first.ID))
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(0), bal)

	_, err = repo.ApplyToCampaign(ctx, 42, pledgeMutation("funder-1", 1))
	require.ErrorIs(t, err, domain.ErrUnknownCampaign)

	missing, err := repo.GetCampaign(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, missing)

	events, err := repo.ListEvents(ctx, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 5)
	for i, ev := range events {
		assert.Equal(t, int64(i+1), ev.Seq)
	}
	assert.Equal(t, domain.EventSettled, events[4].Type)

	list, err := repo.ListCampaigns(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestLedgerRepositoryConcurrentPledges(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	c := newCampaign("alice", 10)
	_, err := repo.InsertCampaign(ctx, c, createdEvent)
	require.NoError(t, err)

	const count = 20
	var wg sync.WaitGroup
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func() {
			defer wg.Done()
			_, err := repo.ApplyToCampaign(ctx, c.ID, pledgeMutation("bob", 2))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(count*2), got.PledgedFund)

	escrow, err := repo.Balance(ctx, domain.EscrowAccount(c.ID))
	require.NoError(t, err)
	assert.Equal(t, got.PledgedFund, escrow)
}

func TestLedgerRepositoryRejectsOverflow(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := newCampaign("alice", 10)
	_, err := repo.InsertCampaign(ctx, first, createdEvent)
	require.NoError(t, err)
	second := newCampaign("alice", 10)
	_, err = repo.InsertCampaign(ctx, second, createdEvent)
	require.NoError(t, err)
	third := newCampaign("alice", 10)
	_, err = repo.InsertCampaign(ctx, third, createdEvent)
	require.NoError(t, err)

	_, err = repo.ApplyToCampaign(ctx, first.ID, pledgeMutation("bob", math.MaxInt64))
	require.NoError(t, err)
	_, err = repo.ApplyToCampaign(ctx, first.ID, pledgeMutation("carol", 2))
	require.ErrorIs(t, err, domain.ErrAmountOverflow)

	got, err := repo.GetCampaign(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(math.MaxInt64), got.PledgedFund)

	// bob reaches MinInt64 exactly, one more unit would wrap.
	_, err = repo.ApplyToCampaign(ctx, second.ID, pledgeMutation("bob", 1))
	require.NoError(t, err)
	_, err = repo.ApplyToCampaign(ctx, third.ID, pledgeMutation("bob", 1))
	require.ErrorIs(t, err, domain.ErrAmountOverflow)

	got, err = repo.GetCampaign(ctx, third.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(0), got.PledgedFund)

	bob, err := repo.Balance(ctx, domain.Identity("bob").Account())
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(math.MinInt64), bob)

	events, err := repo.ListEvents(ctx, 0, 100)
	require.NoError(t, err)
	assert.Len(t, events, 5)
}
