package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/datagate7000-backend/internal/model"
)

// InsertVerifiedOrders appends verified orders to the audit table.
func (r *Repository) InsertVerifiedOrders(ctx context.Context, orders []model.OrderAudit) error {
	if len(orders) == 0 {
		return nil
	}

	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_verified_orders", err, start)
	}()

	batch, err := r.conn.PrepareBatch(ctx, `
INSERT INTO verified_orders (
    tx_id,
    asset_id,
    service_id,
    sender,
    receiver,
    amount,
    settled,
    verified_at
) VALUES`)
	if err != nil {
		return fmt.Errorf("prepare verified orders batch: %w", err)
	}

	for _, order := range orders {
		if err = batch.Append(
			order.TxID,
			order.AssetID,
			order.ServiceID,
			order.Sender,
			order.Receiver,
			order.Amount,
			order.Settled,
			order.VerifiedAt,
		); err != nil {
			return fmt.Errorf("append verified order %s: %w", order.TxID, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("send verified orders batch: %w", err)
	}
	return nil
}
