package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// ClaimIfUnique atomically records an access-token claim for the
// (assetId, consumerAddress, transactionId) tuple. It returns false when the
// tuple has already been claimed, which prevents a settlement transaction
// from minting more than one access grant.
func (r *Repository) ClaimIfUnique(ctx context.Context, assetID, consumerAddress, txID string) (bool, error) {
	r.claimMu.Lock()
	defer r.claimMu.Unlock()

	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("claim_if_unique", err, start)
	}()

	const countQuery = `
SELECT count() AS claims
FROM access_tokens
WHERE asset_id = ? AND consumer_address = ? AND tx_id = ?`

	rows, err := r.conn.Query(ctx, countQuery, assetID, consumerAddress, txID)
	if err != nil {
		return false, fmt.Errorf("query access token claims: %w", err)
	}

	var claims uint64
	if !rows.Next() {
		_ = rows.Close()
		err = fmt.Errorf("access token claim count not found")
		return false, err
	}
	if err = rows.Scan(&claims); err != nil {
		_ = rows.Close()
		return false, fmt.Errorf("scan access token claims: %w", err)
	}
	if err = rows.Close(); err != nil {
		return false, fmt.Errorf("close rows: %w", err)
	}

	if claims > 0 {
		return false, nil
	}

	const insertQuery = `
INSERT INTO access_tokens (asset_id, consumer_address, tx_id, created_at) VALUES (?, ?, ?, ?)`
	if err = r.conn.Exec(ctx, insertQuery, assetID, consumerAddress, txID, time.Now().UTC()); err != nil {
		return false, fmt.Errorf("insert access token claim: %w", err)
	}
	return true, nil
}
