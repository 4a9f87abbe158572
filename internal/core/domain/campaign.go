package domain

import "time"

// FundingPeriod is how long a campaign runs from its creation.
const FundingPeriod = 7 * 24 * time.Hour

// ComputeDeadline returns the deadline of a campaign created at ref.
func ComputeDeadline(ref time.Time) time.Time {
	return ref.Add(FundingPeriod)
}

// Campaign represents a crowdfunding campaign.
// Amounts are stored in integer units.
type Campaign struct {
	ID          int64
	Creator     Identity
	FundingGoal Amount
	PledgedFund Amount
	Deadline    time.Time
	Closed      bool
	CreatedAt   time.Time
}

// State returns "closed" once the campaign has been settled, "open" otherwise.
func (c *Campaign) State() string {
	if c.Closed {
		return "closed"
	}
	return "open"
}

// GoalReached reports whether the pledged fund covers the funding goal.
func (c *Campaign) GoalReached() bool {
	return c.PledgedFund >= c.FundingGoal
}

// Pledge adds amount from funder to the campaign and returns the transfer
// into its escrow account. The campaign is left untouched on error.
func (c *Campaign) Pledge(funder Identity, amount Amount) (Transfer, error) {
	if amount <= 0 {
		return Transfer{}, ErrInvalidAmount
	}
	if funder == "" {
		return Transfer{}, ErrInvalidIdentity
	}
	if c.Closed {
		return Transfer{}, ErrCampaignClosed
	}
	if funder == c.Creator {
		return Transfer{}, ErrSelfFundingForbidden
	}
	pledged, err := c.PledgedFund.Add(amount)
	if err != nil {
		return Transfer{}, err
	}
	c.PledgedFund = pledged
	return Transfer{
		From:   funder.Account(),
		To:     EscrowAccount(c.ID),
		Amount: amount,
	}, nil
}

// Settle closes the campaign and returns the transfer paying the whole
// escrow out to the creator. Only the creator may settle, only once, and only
// after the goal has been reached.
func (c *Campaign) Settle(caller Identity) (Transfer, error) {
	if caller != c.Creator {
		return Transfer{}, ErrUnauthorized
	}
	if c.Closed {
		return Transfer{}, ErrAlreadySettled
	}
	if !c.GoalReached() {
		return Transfer{}, ErrGoalNotMet
	}
	c.Closed = true
	return Transfer{
		From:   EscrowAccount(c.ID),
		To:     c.Creator.Account(),
		Amount: c.PledgedFund,
	}, nil
}
