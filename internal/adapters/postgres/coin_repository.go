package postgres

import (
	"context"
	"errors"
	"fmt"
	"valens/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CoinRepository struct {
	pool *pgxpool.Pool
}

func (r *CoinRepository) List(ctx context.Context) ([]domain.Coin, error) {
	const q = `
        select id, address, symbol, name, vendor_id, active
        from coins
        where active
        order by symbol;
    `

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query coins: %w", err)
	}
	defer rows.Close()

	coins := make([]domain.Coin, 0, 64)
	for rows.Next() {
		var c domain.Coin
		if err = rows.Scan(&c.ID, &c.Address, &c.Symbol, &c.Name, &c.VendorID, &c.Active); err != nil {
			return nil, fmt.Errorf("failed to scan coin: %w", err)
		}
		coins = append(coins, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating coins: %w", err)
	}
	return coins, nil
}

func (r *CoinRepository) GetByAddress(ctx context.Context, address string) (domain.Coin, error) {
	const q = `
        select id, address, symbol, name, vendor_id, active
        from coins
        where address = $1;
    `

	var c domain.Coin
	if err := r.pool.QueryRow(ctx, q, address).Scan(
		&c.ID,
		&c.Address,
		&c.Symbol,
		&c.Name,
		&c.VendorID,
		&c.Active,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Coin{}, domain.ErrCoinNotFound
		}
		return domain.Coin{}, fmt.Errorf("failed to select coin %q: %w", address, err)
	}

	return c, nil
}

func (r *CoinRepository) GetPrice(ctx context.Context, address string) (domain.CoinPrice, error) {
	const q = `
        select c.id, c.address, cp.price_usd, cp.updated_at
        from coin_prices cp join coins c on cp.coin_id = c.id
        where c.address = $1;
    `

	var price domain.CoinPrice
	if err := r.pool.QueryRow(ctx, q, address).Scan(
		&price.CoinID,
		&price.Address,
		&price.PriceUSD,
		&price.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.CoinPrice{}, domain.ErrPriceNotFound
		}
		return domain.CoinPrice{}, fmt.Errorf("failed to select price for coin %q: %w", address, err)
	}

	return price, nil
}

func NewCoinRepository(pool *pgxpool.Pool) *CoinRepository {
	return &CoinRepository{pool: pool}
}
