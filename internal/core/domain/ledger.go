package domain

import (
	"math"
	"strconv"
	"strings"
)

// Amount is a quantity of indivisible currency units.
type Amount int64

// Add returns a+b, or ErrAmountOverflow when the sum leaves the int64 range.
func (a Amount) Add(b Amount) (Amount, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, ErrAmountOverflow
	}
	return a + b, nil
}

// Identity is an opaque caller identity, compared by equality only.
type Identity string

// Account returns the ledger account holding the identity's net position.
func (i Identity) Account() Account {
	return Account(identityPrefix + string(i))
}

// Account names a ledger account. Identities and campaign escrows each have
// their own account.
type Account string

const (
	identityPrefix = "identity:"
	escrowPrefix   = "escrow:"
)

// EscrowAccount returns the account holding the funds pledged to a campaign.
func EscrowAccount(campaignID int64) Account {
	return Account(escrowPrefix + strconv.FormatInt(campaignID, 10))
}

// IsEscrow reports whether the account is a campaign escrow.
func (a Account) IsEscrow() bool {
	return strings.HasPrefix(string(a), escrowPrefix)
}

// Transfer moves Amount from one account to another. It is posted as a
// balanced pair of ledger entries.
type Transfer struct {
	From   Account
	To     Account
	Amount Amount
}

// Entry is a single signed ledger posting.
type Entry struct {
	Account Account
	Amount  Amount
}

// Entries returns the debit and credit postings of the transfer.
func (t Transfer) Entries() [2]Entry {
	return [2]Entry{
		{Account: t.From, Amount: -t.Amount},
		{Account: t.To, Amount: t.Amount},
	}
}
