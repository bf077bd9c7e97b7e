package postgres

import (
	"context"
	"errors"
	"fmt"
	"valens/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func (r *OrderRepository) Create(ctx context.Context, order domain.Order) error {
	const q = `
        insert into orders (
            order_id, side, vendor_id, coin_address,
            base_amount, platform_fee, vendor_fee, total_amount,
            token_count, token_price, status, checkout_url
        )
        values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `

	_, err := r.pool.Exec(ctx, q,
		order.OrderID, order.Side, order.VendorID, order.CoinAddress,
		order.BaseAmount, order.PlatformFee, order.VendorFee, order.TotalAmount,
		order.TokenCount, order.TokenPrice, order.Status, order.CheckoutURL,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order %q: %w", order.OrderID, err)
	}
	return nil
}

func (r *OrderRepository) SetCheckoutURL(ctx context.Context, orderID uuid.UUID, url string) error {
	const q = `
        update orders
        set checkout_url = $2, status = $3
        where order_id = $1;
    `

	tag, err := r.pool.Exec(ctx, q, orderID, url, domain.OrderCheckoutCreated)
	if err != nil {
		return fmt.Errorf("failed to set checkout url for order %q: %w", orderID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) error {
	const q = `
        update orders
        set status = $2
        where order_id = $1;
    `

	tag, err := r.pool.Exec(ctx, q, orderID, status)
	if err != nil {
		return fmt.Errorf("failed to update status for order %q: %w", orderID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) (domain.Order, error) {
	const q = `
        select order_id, side, vendor_id, coin_address,
               base_amount, platform_fee, vendor_fee, total_amount,
               token_count, token_price, status, checkout_url, created_at
        from orders
        where order_id = $1;
    `

	var o domain.Order
	if err := r.pool.QueryRow(ctx, q, orderID).Scan(
		&o.OrderID,
		&o.Side,
		&o.VendorID,
		&o.CoinAddress,
		&o.BaseAmount,
		&o.PlatformFee,
		&o.VendorFee,
		&o.TotalAmount,
		&o.TokenCount,
		&o.TokenPrice,
		&o.Status,
		&o.CheckoutURL,
		&o.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("failed to select order %q: %w", orderID, err)
	}

	return o, nil
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}
