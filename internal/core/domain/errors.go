package domain

import "errors"

// Rejections returned by ledger operations. A rejected call leaves no trace:
// no state change, no transfer, no event.
var (
	ErrInvalidGoal          = errors.New("funding goal must be positive")
	ErrInvalidAmount        = errors.New("pledge amount must be positive")
	ErrInvalidIdentity      = errors.New("caller identity is required")
	ErrUnknownCampaign      = errors.New("campaign not found")
	ErrCampaignClosed       = errors.New("campaign is closed")
	ErrSelfFundingForbidden = errors.New("creator cannot fund own campaign")
	ErrUnauthorized         = errors.New("caller is not the campaign creator")
	ErrGoalNotMet           = errors.New("funding goal not reached")
	ErrAlreadySettled       = errors.New("campaign already settled")
	ErrAmountOverflow       = errors.New("amount exceeds the representable range")
)
