package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// CurrentNonce returns the latest nonce recorded for an address, zero if
// the address has never been seen.
func (r *Repository) CurrentNonce(ctx context.Context, address string) (uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("current_nonce", err, start)
	}()

	const query = `
SELECT coalesce(max(nonce), toUInt64(0)) AS nonce
FROM user_nonces
WHERE address = ?`

	rows, err := r.conn.Query(ctx, query, address)
	if err != nil {
		return 0, fmt.Errorf("query current nonce: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var nonce uint64
	if !rows.Next() {
		return 0, fmt.Errorf("current nonce not found")
	}
	if err = rows.Scan(&nonce); err != nil {
		return 0, fmt.Errorf("scan current nonce: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate current nonce: %w", err)
	}

	return nonce, nil
}

// BumpNonce records the next nonce for an address and returns it.
func (r *Repository) BumpNonce(ctx context.Context, address string) (uint64, error) {
	r.nonceMu.Lock()
	defer r.nonceMu.Unlock()

	current, err := r.CurrentNonce(ctx, address)
	if err != nil {
		return 0, err
	}

	start := time.Now()
	defer func() {
		r.metrics.Observe("bump_nonce", err, start)
	}()

	next := current + 1
	const query = `
INSERT INTO user_nonces (address, nonce, updated_at) VALUES (?, ?, ?)`
	if err = r.conn.Exec(ctx, query, address, next, time.Now().UTC()); err != nil {
		return 0, fmt.Errorf("insert nonce: %w", err)
	}
	return next, nil
}
