package memory

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/core/domain"
)

func created(c domain.Campaign) domain.Event {
	return domain.Event{Type: domain.EventCampaignCreated, CampaignID: c.ID}
}

func pledge(funder domain.Identity, amount domain.Amount) func(c *domain.Campaign) (domain.Event, domain.Transfer, error) {
	return func(c *domain.Campaign) (domain.Event, domain.Transfer, error) {
		t, err := c.Pledge(funder, amount)
		if err != nil {
			return domain.Event{}, domain.Transfer{}, err
		}
		return domain.Event{Type: domain.EventPledged, CampaignID: c.ID, PledgedFund: c.PledgedFund}, t, nil
	}
}

func TestInsertCampaignDenseIDs(t *testing.T) {
	repo := NewLedgerRepository()
	ctx := context.Background()

	for want := int64(0); want < 3; want++ {
		c := &domain.Campaign{Creator: "alice", FundingGoal: 10}
		ev, err := repo.InsertCampaign(ctx, c, created)
		require.NoError(t, err)
		assert.Equal(t, want, c.ID)
		assert.Equal(t, want, ev.CampaignID)
		assert.Equal(t, want+1, ev.Seq)
	}

	list, err := repo.ListCampaigns(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, c := range list {
		assert.Equal(t, int64(i), c.ID)
	}
}

func TestApplyToCampaignUnknown(t *testing.T) {
	repo := NewLedgerRepository()
	_, err := repo.ApplyToCampaign(context.Background(), 7, pledge("bob", 1))
	require.ErrorIs(t, err, domain.ErrUnknownCampaign)

	c, err := repo.GetCampaign(context.Background(), -1)
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestApplyToCampaignRollsBackOnError(t *testing.T) {
	repo := NewLedgerRepository()
	ctx := context.Background()
	c := &domain.Campaign{Creator: "alice", FundingGoal: 10}
	_, err := repo.InsertCampaign(ctx, c, created)
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = repo.ApplyToCampaign(ctx, c.ID, func(c *domain.Campaign) (domain.Event, domain.Transfer, error) {
		c.PledgedFund = 999
		c.Closed = true
		return domain.Event{}, domain.Transfer{}, boom
	})
	require.ErrorIs(t, err, boom)

	got, err := repo.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(0), got.PledgedFund)
	assert.False(t, got.Closed)

	events, err := repo.ListEvents(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, events, 1, "only the creation event")
}

// TestApplyToCampaignRejectsBalanceOverflow ensures a posting that would wrap
// an account balance is refused and leaves the campaign and the journal as
// they were.
func TestApplyToCampaignRejectsBalanceOverflow(t *testing.T) {
	repo := NewLedgerRepository()
	ctx := context.Background()

	ids := make([]int64, 3)
	for i := range ids {
		c := &domain.Campaign{Creator: "alice", FundingGoal: 1}
		_, err := repo.InsertCampaign(ctx, c, created)
		require.NoError(t, err)
		ids[i] = c.ID
	}

	_, err := repo.ApplyToCampaign(ctx, ids[0], pledge("bob", math.MaxInt64))
	require.NoError(t, err)
	_, err = repo.ApplyToCampaign(ctx, ids[1], pledge("bob", 1))
	require.NoError(t, err)

	bob, err := repo.Balance(ctx, domain.Identity("bob").Account())
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(math.MinInt64), bob)

	_, err = repo.ApplyToCampaign(ctx, ids[2], pledge("bob", 1))
	require.ErrorIs(t, err, domain.ErrAmountOverflow)

	got, err := repo.GetCampaign(ctx, ids[2])
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(0), got.PledgedFund)

	escrow, err := repo.Balance(ctx, domain.EscrowAccount(ids[2]))
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(0), escrow)

	after, err := repo.Balance(ctx, domain.Identity("bob").Account())
	require.NoError(t, err)
	assert.Equal(t, bob, after)

	events, err := repo.ListEvents(ctx, 0, 100)
	require.NoError(t, err)
	assert.Len(t, events, 5, "three creations and two pledges")
}

// TestConcurrentPledges ensures concurrent pledges to one campaign never lose updates.
func TestConcurrentPledges(t *testing.T) {
	repo := NewLedgerRepository()
	ctx := context.Background()
	c := &domain.Campaign{Creator: "alice", FundingGoal: 10}
	_, err := repo.InsertCampaign(ctx, c, created)
	require.NoError(t, err)

	const workers, perWorker = 16, 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				_, _ = repo.ApplyToCampaign(ctx, c.ID, pledge("bob", 3))
			}
		}()
	}
	wg.Wait()

	got, err := repo.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(workers*perWorker*3), got.PledgedFund)

	escrow, err := repo.Balance(ctx, domain.EscrowAccount(c.ID))
	require.NoError(t, err)
	assert.Equal(t, got.PledgedFund, escrow)

	bob, err := repo.Balance(ctx, domain.Identity("bob").Account())
	require.NoError(t, err)
	assert.Equal(t, -got.PledgedFund, bob)

	events, err := repo.ListEvents(ctx, 0, 10_000)
	require.NoError(t, err)
	require.Len(t, events, 1+workers*perWorker)
	for i, ev := range events {
		assert.Equal(t, int64(i+1), ev.Seq)
	}
}

func TestListEventsPaging(t *testing.T) {
	repo := NewLedgerRepository()
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := repo.InsertCampaign(ctx, &domain.Campaign{Creator: "alice", FundingGoal: 1}, created)
		require.NoError(t, err)
	}

	page, err := repo.ListEvents(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(3), page[0].Seq)
	assert.Equal(t, int64(4), page[1].Seq)

	page, err = repo.ListEvents(ctx, 5, 10)
	require.NoError(t, err)
	assert.Empty(t, page)
}
