package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/adapter/memory"
	"crowdfund/internal/adapter/usecase"
	"crowdfund/internal/core/domain"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	ledger := usecase.NewLedgerUseCase(memory.NewLedgerRepository())

	require.NoError(t, Seed(ctx, ledger))

	campaigns, err := ledger.ListCampaigns(ctx)
	require.NoError(t, err)
	require.Len(t, campaigns, 5)

	for i, c := range campaigns {
		assert.Equal(t, int64(i), c.ID)
		assert.Equal(t, i%2 == 0, c.Closed, "campaign %d", c.ID)
		if c.Closed {
			assert.GreaterOrEqual(t, c.PledgedFund, c.FundingGoal)
			paid, err := ledger.Balance(ctx, c.Creator.Account())
			require.NoError(t, err)
			assert.Equal(t, c.PledgedFund, paid)
		} else {
			escrow, err := ledger.Balance(ctx, domain.EscrowAccount(c.ID))
			require.NoError(t, err)
			assert.Equal(t, c.PledgedFund, escrow)
		}
	}
}
