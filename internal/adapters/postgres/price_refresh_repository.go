package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"valens/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PriceRefreshRepository struct {
	pool *pgxpool.Pool
}

func (r *PriceRefreshRepository) ScheduleNewOrGetExisting(ctx context.Context, address string) (uuid.UUID, error) {
	const q = `
		-- 1) resolve the coin; unknown addresses produce no row at all
		with coin as (
		  select id from coins where address = $1
		)
        -- 2) insert pending refresh or fetch the existing refresh_id
        insert into price_refreshes (coin_id, refresh_id, status, updated_at)
        select c.id, $2, 'pending', now() from coin c
		on conflict (coin_id) where status = 'pending'
		do update set updated_at = price_refreshes.updated_at
        returning refresh_id;
	`

	var refreshID uuid.UUID
	err := r.pool.QueryRow(ctx, q, address, uuid.New()).Scan(&refreshID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, domain.ErrCoinNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to ensure a refresh for coin %q: %w", address, err)
	}
	return refreshID, nil
}

func (r *PriceRefreshRepository) GetByRefreshID(ctx context.Context, refreshID uuid.UUID) (domain.CoinPrice, domain.PriceRefreshStatus, error) {
	const q = `
		select c.id, c.address, pr.status, pr.price_usd, pr.updated_at
		from price_refreshes pr join coins c on c.id = pr.coin_id
		where pr.refresh_id = $1;
	`

	var (
		price     domain.CoinPrice
		status    domain.PriceRefreshStatus
		value     *float64
		updatedAt time.Time
	)
	if err := r.pool.QueryRow(ctx, q, refreshID).Scan(
		&price.CoinID,
		&price.Address,
		&status,
		&value,
		&updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.CoinPrice{}, "", domain.ErrRefreshNotFound
		}
		return domain.CoinPrice{}, "", fmt.Errorf("failed to select refresh %q: %w", refreshID, err)
	}

	if value != nil {
		price.PriceUSD = *value
		price.UpdatedAt = updatedAt
	}
	return price, status, nil
}

func (r *PriceRefreshRepository) GetPending(ctx context.Context) ([]domain.PendingPriceRefresh, error) {
	const q = `
		select pr.refresh_id, pr.coin_id, c.address
		from price_refreshes pr join coins c on c.id = pr.coin_id
		where pr.status = 'pending';
	`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending refreshes: %w", err)
	}
	defer rows.Close()

	pending := make([]domain.PendingPriceRefresh, 0, 64)
	for rows.Next() {
		var pr domain.PendingPriceRefresh
		if err = rows.Scan(&pr.RefreshID, &pr.CoinID, &pr.Address); err != nil {
			return nil, fmt.Errorf("failed to scan pending refresh: %w", err)
		}
		pending = append(pending, pr)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pending refreshes: %w", err)
	}
	return pending, nil
}

func (r *PriceRefreshRepository) ApplyRefreshes(ctx context.Context, applied []domain.AppliedPriceRefresh) error {
	if len(applied) == 0 {
		return nil
	}

	payloadJSON, err := json.Marshal(applied)
	if err != nil {
		return fmt.Errorf("failed to marshal applied refreshes: %w", err)
	}

	const q = `
		with

		-- step 1: parsing input
		input_rows as (select * from json_to_recordset($1::json) as r(refresh_id uuid, coin_id bigint, price_usd numeric)),

		-- step 2: updating price_refreshes records and get updated
		update_pr as (
		  update price_refreshes pr
		  set price_usd = ir.price_usd, updated_at = now(), status = 'applied'
		  from input_rows ir
		  where pr.refresh_id = ir.refresh_id
		  returning pr.coin_id, pr.price_usd
		)

		-- step 3: updating coin_prices records
		insert into coin_prices(coin_id, price_usd, updated_at)
		select coin_id, price_usd, now() from update_pr
		on conflict (coin_id) do update
		set price_usd = excluded.price_usd, updated_at = now();
	`

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, q, json.RawMessage(payloadJSON))
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func NewPriceRefreshRepository(pool *pgxpool.Pool) *PriceRefreshRepository {
	return &PriceRefreshRepository{pool: pool}
}
