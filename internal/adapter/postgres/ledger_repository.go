package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Advisory lock keys. Campaign ids and event sequence numbers are allocated
// as MAX()+1 under these locks, so both stay dense and events become visible
// in seq order. Accounts are locked by hashing their name with accountLockSeed.
const (
	campaignIDLockKey int64 = 0x63726f7764
	eventSeqLockKey   int64 = 0x6c6f67
	accountLockSeed   int64 = 0x616363
)

// LedgerRepository implements port.LedgerRepository using pgxpool for PostgreSQL.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository returns a new repository instance.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

var _ port.LedgerRepository = (*LedgerRepository)(nil)

// InsertCampaign stores c under the next dense id and appends its creation event.
func (r *LedgerRepository) InsertCampaign(ctx context.Context, c *domain.Campaign, init port.CampaignInit) (ev domain.Event, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return ev, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, campaignIDLockKey); err != nil {
		return ev, fmt.Errorf("lock campaign ids: %w", err)
	}
	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO campaigns (id, creator, funding_goal, pledged_fund, deadline, closed, created_at)
		SELECT COALESCE(MAX(id) + 1, 0), $1::text, $2::bigint, $3::bigint, $4::timestamptz, $5::boolean, $6::timestamptz FROM campaigns
		RETURNING id`,
		c.Creator, c.FundingGoal, c.PledgedFund, c.Deadline, c.Closed, c.CreatedAt,
	).Scan(&id)
	if err != nil {
		return ev, fmt.Errorf("insert campaign: %w", err)
	}

	created := *c
	created.ID = id
	if ev, err = appendEvent(ctx, tx, init(created)); err != nil {
		return ev, err
	}
	if err = tx.Commit(ctx); err != nil {
		return ev, fmt.Errorf("commit: %w", err)
	}
	c.ID = id
	return ev, nil
}

// ApplyToCampaign locks the campaign row, runs fn and stores the new state,
// the transfer postings and the event in one transaction.
func (r *LedgerRepository) ApplyToCampaign(ctx context.Context, id int64, fn port.CampaignMutation) (ev domain.Event, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return ev, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	// lock campaign
	c, err := scanCampaign(tx.QueryRow(ctx, selectCampaign+` WHERE id = $1 FOR UPDATE`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return ev, domain.ErrUnknownCampaign
	}
	if err != nil {
		return ev, fmt.Errorf("lock campaign: %w", err)
	}

	applied, t, err := fn(c)
	if err != nil {
		return ev, err
	}

	_, err = tx.Exec(ctx, `UPDATE campaigns SET pledged_fund = $1, closed = $2 WHERE id = $3`, c.PledgedFund, c.Closed, id)
	if err != nil {
		return ev, fmt.Errorf("update campaign: %w", err)
	}
	if err = postEntries(ctx, tx, applied, t); err != nil {
		return ev, err
	}
	if ev, err = appendEvent(ctx, tx, applied); err != nil {
		return ev, err
	}
	if err = tx.Commit(ctx); err != nil {
		return ev, fmt.Errorf("commit: %w", err)
	}
	return ev, nil
}

// GetCampaign returns a campaign by id.
func (r *LedgerRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, selectCampaign+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListCampaigns returns all campaigns ordered by id.
func (r *LedgerRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, selectCampaign+` ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

// ListEvents returns up to limit events after afterSeq in seq order.
func (r *LedgerRepository) ListEvents(ctx context.Context, afterSeq int64, limit int) ([]domain.Event, error) {
	rows, err := r.pool.Query(ctx, `SELECT seq, payload FROM campaign_events WHERE seq > $1 ORDER BY seq LIMIT $2`, afterSeq, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Event, error) {
		var (
			ev      domain.Event
			seq     int64
			payload []byte
		)
		if err := row.Scan(&seq, &payload); err != nil {
			return ev, err
		}
		if err := json.Unmarshal(payload, &ev); err != nil {
			return ev, fmt.Errorf("decode event %d: %w", seq, err)
		}
		ev.Seq = seq
		return ev, nil
	})
}

// Balance sums the postings of an account.
func (r *LedgerRepository) Balance(ctx context.Context, account domain.Account) (domain.Amount, error) {
	var sum int64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0)::bigint FROM ledger_entries WHERE account = $1`, account).Scan(&sum)
	if err != nil {
		return 0, err
	}
	return domain.Amount(sum), nil
}

const selectCampaign = `SELECT id, creator, funding_goal, pledged_fund, deadline, closed, created_at FROM campaigns`

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.Creator, &c.FundingGoal, &c.PledgedFund, &c.Deadline, &c.Closed, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// postEntries inserts the postings of t. Each account is locked in name
// order and its balance checked first, so a posting that would overflow a
// balance fails with domain.ErrAmountOverflow.
func postEntries(ctx context.Context, tx pgx.Tx, ev domain.Event, t domain.Transfer) error {
	entries := t.Entries()
	slices.SortFunc(entries[:], func(a, b domain.Entry) int {
		return strings.Compare(string(a.Account), string(b.Account))
	})
	for _, e := range entries {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1::text, $2::bigint))`, e.Account, accountLockSeed); err != nil {
			return fmt.Errorf("lock account: %w", err)
		}
		var bal int64
		err := tx.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0)::bigint FROM ledger_entries WHERE account = $1`, e.Account).Scan(&bal)
		if err != nil {
			return fmt.Errorf("account balance: %w", err)
		}
		if _, err = domain.Amount(bal).Add(e.Amount); err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `INSERT INTO ledger_entries (event_id, account, amount, created_at) VALUES ($1, $2, $3, $4)`,
			ev.ID, e.Account, e.Amount, ev.OccurredAt)
		if err != nil {
			return fmt.Errorf("insert ledger entry: %w", err)
		}
	}
	return nil
}

// appendEvent writes ev at the next seq. The advisory lock is held until the
// transaction ends, so seq order matches commit order.
func appendEvent(ctx context.Context, tx pgx.Tx, ev domain.Event) (domain.Event, error) {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, eventSeqLockKey); err != nil {
		return ev, fmt.Errorf("lock event log: %w", err)
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return ev, fmt.Errorf("encode event: %w", err)
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO campaign_events (seq, id, type, campaign_id, occurred_at, payload)
		SELECT COALESCE(MAX(seq), 0) + 1, $1::uuid, $2::text, $3::bigint, $4::timestamptz, $5::jsonb FROM campaign_events
		RETURNING seq`,
		ev.ID, ev.Type, ev.CampaignID, ev.OccurredAt, payload,
	).Scan(&ev.Seq)
	if err != nil {
		return ev, fmt.Errorf("insert event: %w", err)
	}
	return ev, nil
}
