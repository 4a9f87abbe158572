package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Seed creates demo campaigns with a handful of pledges through the ledger
// use case, so seeded data follows the same rules and emits the same events
// as real traffic. Every other campaign is funded past its goal and settled.
func Seed(ctx context.Context, ledger port.LedgerUseCase) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 1; i <= 5; i++ {
		creator := domain.Identity(fmt.Sprintf("creator-%d", i))
		goal := domain.Amount(1000 * i) // 10.00 units per step
		id, err := ledger.CreateCampaign(ctx, creator, goal)
		if err != nil {
			return fmt.Errorf("seed campaign %d: %w", i, err)
		}

		var pledged domain.Amount
		for j := 1; j <= 10; j++ {
			funder := domain.Identity(fmt.Sprintf("funder-%d", r.Intn(20)+1))
			amount := domain.Amount(100 + r.Intn(400))
			if _, err = ledger.Pledge(ctx, id, funder, amount); err != nil {
				return fmt.Errorf("seed pledge to %d: %w", id, err)
			}
			pledged += amount
		}

		if i%2 == 1 {
			if pledged < goal {
				if _, err = ledger.Pledge(ctx, id, "funder-whale", goal-pledged); err != nil {
					return fmt.Errorf("seed top-up of %d: %w", id, err)
				}
			}
			if _, err = ledger.Settle(ctx, id, creator); err != nil {
				return fmt.Errorf("seed settlement of %d: %w", id, err)
			}
		}
	}
	return nil
}
