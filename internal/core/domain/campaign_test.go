package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDeadline(t *testing.T) {
	refs := []time.Time{
		time.Unix(0, 0),
		time.Unix(1_700_000_000, 0),
		time.Date(2024, time.February, 28, 23, 59, 59, 0, time.UTC),
	}
	for _, ref := range refs {
		got := ComputeDeadline(ref)
		assert.Equal(t, int64(604800), got.Unix()-ref.Unix())
	}
}

func TestPledge(t *testing.T) {
	c := &Campaign{ID: 3, Creator: "alice", FundingGoal: 10}

	tr, err := c.Pledge("bob", 20)
	require.NoError(t, err)
	assert.Equal(t, Amount(20), c.PledgedFund)
	assert.Equal(t, Transfer{From: "identity:bob", To: "escrow:3", Amount: 20}, tr)

	_, err = c.Pledge("carol", 15)
	require.NoError(t, err)
	assert.Equal(t, Amount(35), c.PledgedFund)
}

func TestPledgeRejections(t *testing.T) {
	tests := []struct {
		name   string
		c      Campaign
		funder Identity
		amount Amount
		want   error
	}{
		{"zero amount", Campaign{Creator: "alice"}, "bob", 0, ErrInvalidAmount},
		{"negative amount", Campaign{Creator: "alice"}, "bob", -5, ErrInvalidAmount},
		{"empty funder", Campaign{Creator: "alice"}, "", 5, ErrInvalidIdentity},
		{"closed", Campaign{Creator: "alice", Closed: true, PledgedFund: 12}, "bob", 5, ErrCampaignClosed},
		{"self funding", Campaign{Creator: "alice", PledgedFund: 7}, "alice", 5, ErrSelfFundingForbidden},
		{"pledged fund overflow", Campaign{Creator: "alice", PledgedFund: math.MaxInt64 - 1}, "bob", 2, ErrAmountOverflow},
		{"max amount on top of pledges", Campaign{Creator: "alice", PledgedFund: 1}, "bob", math.MaxInt64, ErrAmountOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.c
			_, err := c.Pledge(tt.funder, tt.amount)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.c, c, "campaign must be unchanged")
		})
	}
}

func TestPledgeUpToMaxAmount(t *testing.T) {
	c := &Campaign{Creator: "alice", FundingGoal: 10, PledgedFund: 1}
	_, err := c.Pledge("bob", math.MaxInt64-1)
	require.NoError(t, err)
	assert.Equal(t, Amount(math.MaxInt64), c.PledgedFund)
}

func TestAmountAdd(t *testing.T) {
	tests := []struct {
		a, b    Amount
		want    Amount
		wantErr bool
	}{
		{1, 2, 3, false},
		{math.MaxInt64, 0, math.MaxInt64, false},
		{math.MaxInt64, 1, 0, true},
		{math.MinInt64 + 1, -1, math.MinInt64, false},
		{math.MinInt64, -1, 0, true},
		{-math.MaxInt64, math.MaxInt64, 0, false},
	}
	for _, tt := range tests {
		got, err := tt.a.Add(tt.b)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrAmountOverflow, "%d + %d", tt.a, tt.b)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestSettle(t *testing.T) {
	c := &Campaign{ID: 0, Creator: "alice", FundingGoal: 10, PledgedFund: 35}

	tr, err := c.Settle("alice")
	require.NoError(t, err)
	assert.True(t, c.Closed)
	assert.Equal(t, "closed", c.State())
	assert.Equal(t, Transfer{From: "escrow:0", To: "identity:alice", Amount: 35}, tr)

	_, err = c.Settle("alice")
	require.ErrorIs(t, err, ErrAlreadySettled)
}

func TestSettleRejections(t *testing.T) {
	tests := []struct {
		name   string
		c      Campaign
		caller Identity
		want   error
	}{
		{"not creator", Campaign{Creator: "alice", FundingGoal: 10, PledgedFund: 35}, "bob", ErrUnauthorized},
		{"goal not met", Campaign{Creator: "alice", FundingGoal: 5}, "alice", ErrGoalNotMet},
		{"already closed", Campaign{Creator: "alice", FundingGoal: 5, PledgedFund: 5, Closed: true}, "alice", ErrAlreadySettled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.c
			_, err := c.Settle(tt.caller)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.c, c, "campaign must be unchanged")
		})
	}
}

func TestTransferEntriesBalance(t *testing.T) {
	tr := Transfer{From: "identity:bob", To: EscrowAccount(1), Amount: 42}
	entries := tr.Entries()
	assert.Equal(t, Amount(0), entries[0].Amount+entries[1].Amount)
	assert.True(t, entries[1].Account.IsEscrow())
	assert.False(t, entries[0].Account.IsEscrow())
}
