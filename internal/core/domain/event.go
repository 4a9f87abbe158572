package domain

import "time"

// EventType identifies the kind of ledger event.
type EventType string

const (
	// EventCampaignCreated records the creation of a campaign.
	EventCampaignCreated EventType = "CampaignCreated"
	// EventPledged records a pledge accepted into a campaign's escrow.
	EventPledged EventType = "Pledged"
	// EventSettled records the payout of a campaign to its creator.
	EventSettled EventType = "Settled"
)

// Event is an immutable record in the ledger's append-only event log.
// Exactly one event is appended per successful operation.
type Event struct {
	// ID is a unique identifier assigned when the event is built.
	ID string `json:"id"`
	// Seq is the position in the log, starting at 1. Assigned by storage on append.
	Seq        int64     `json:"seq"`
	Type       EventType `json:"type"`
	CampaignID int64     `json:"campaign_id"`
	OccurredAt time.Time `json:"occurred_at"`

	Creator     Identity  `json:"creator,omitempty"`
	Funder      Identity  `json:"funder,omitempty"`
	FundingGoal Amount    `json:"funding_goal,omitempty"`
	Amount      Amount    `json:"amount,omitempty"`
	PledgedFund Amount    `json:"pledged_fund"`
	Deadline    time.Time `json:"deadline,omitzero"`
	Closed      bool      `json:"closed"`
}

// CampaignCreated builds the event announcing a new campaign.
func CampaignCreated(id string, c Campaign, at time.Time) Event {
	return Event{
		ID:          id,
		Type:        EventCampaignCreated,
		CampaignID:  c.ID,
		OccurredAt:  at,
		Creator:     c.Creator,
		FundingGoal: c.FundingGoal,
		PledgedFund: c.PledgedFund,
		Deadline:    c.Deadline,
	}
}

// Pledged builds the event for an accepted pledge. c must already include the
// pledged amount.
func Pledged(id string, c Campaign, funder Identity, amount Amount, at time.Time) Event {
	return Event{
		ID:          id,
		Type:        EventPledged,
		CampaignID:  c.ID,
		OccurredAt:  at,
		Funder:      funder,
		Amount:      amount,
		PledgedFund: c.PledgedFund,
	}
}

// Settled builds the event for a completed settlement.
func Settled(id string, c Campaign, at time.Time) Event {
	return Event{
		ID:          id,
		Type:        EventSettled,
		CampaignID:  c.ID,
		OccurredAt:  at,
		Creator:     c.Creator,
		PledgedFund: c.PledgedFund,
		Closed:      c.Closed,
	}
}
