package ledger

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/datagate7000-backend/internal/clock"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	defaultMaxAttempts  = 10
	defaultAttemptDelay = 1 * time.Second
	defaultQueryRPS     = 10
)

// EventReader fetches contract event logs, retrying a bounded number of
// times to tolerate the gap between transaction inclusion and log
// availability. An empty result after all attempts is not an error; callers
// decide what "no events" means in context.
type EventReader struct {
	client   Client
	token    *TokenContract
	logger   *zap.Logger
	metrics  RPCMetrics
	sleep    func(context.Context, time.Duration) error
	rl       ratelimit.Limiter
	attempts int
	delay    time.Duration
}

// EventReaderOption overrides EventReader defaults.
type EventReaderOption func(*EventReader)

// WithMaxAttempts sets the retry ceiling.
func WithMaxAttempts(n int) EventReaderOption {
	return func(r *EventReader) { r.attempts = n }
}

// WithAttemptDelay sets the fixed delay between attempts.
func WithAttemptDelay(d time.Duration) EventReaderOption {
	return func(r *EventReader) { r.delay = d }
}

// NewEventReader builds an EventReader with a fixed 1s inter-attempt delay
// and 10 attempts unless overridden.
func NewEventReader(client Client, token *TokenContract, metrics RPCMetrics, logger *zap.Logger, opts ...EventReaderOption) *EventReader {
	r := &EventReader{
		client:   client,
		token:    token,
		logger:   logger.With(zap.Stringer("contract", token.Address())),
		metrics:  metrics,
		sleep:    clock.SleepWithContext,
		rl:       ratelimit.New(defaultQueryRPS),
		attempts: defaultMaxAttempts,
		delay:    defaultAttemptDelay,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Fetch queries logs for a named token event within [fromBlock, toBlock],
// re-querying the same range until logs appear or attempts run out.
// A toBlock of zero means the latest block. Extra topic filters follow the
// event topic positionally. The returned logs keep the ledger's natural
// block/log order.
func (r *EventReader) Fetch(ctx context.Context, eventName string, filterTopics [][]common.Hash, fromBlock, toBlock uint64) ([]types.Log, error) {
	eventID, err := r.token.EventID(eventName)
	if err != nil {
		return nil, err
	}

	query := ethereum.FilterQuery{
		Addresses: []common.Address{r.token.Address()},
		Topics:    append([][]common.Hash{{eventID}}, filterTopics...),
		FromBlock: new(big.Int).SetUint64(fromBlock),
	}
	if toBlock > 0 {
		query.ToBlock = new(big.Int).SetUint64(toBlock)
	}

	for attempt := 1; attempt <= r.attempts; attempt++ {
		r.rl.Take()
		started := time.Now()
		logs, err := r.client.FilterLogs(ctx, query)
		r.metrics.Observe("filter_logs", err, started)
		if err != nil {
			return nil, fmt.Errorf("query %s logs: %w", eventName, err)
		}
		if len(logs) > 0 {
			return logs, nil
		}

		r.logger.Debug("no event logs yet",
			zap.String("event", eventName),
			zap.Int("attempt", attempt),
			zap.Duration("delay", r.delay),
		)
		if attempt < r.attempts {
			if sleepErr := r.sleep(ctx, r.delay); sleepErr != nil {
				return nil, sleepErr
			}
		}
	}

	return []types.Log{}, nil
}
