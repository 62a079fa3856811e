package ledger

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/datagate7000-backend/internal/model"
	"github.com/goodnatureofminers/datagate7000-backend/internal/utils"
	"go.uber.org/zap"
)

// paymentTolerance absorbs integer rounding from on-chain fee computation,
// in base units.
var paymentTolerance = big.NewInt(5)

// Verifier reconciles a claimed payment transaction against the token
// contract's event logs.
type Verifier struct {
	client  Client
	token   *TokenContract
	metrics RPCMetrics
	logger  *zap.Logger
}

// NewVerifier builds a Verifier.
func NewVerifier(client Client, token *TokenContract, metrics RPCMetrics, logger *zap.Logger) *Verifier {
	return &Verifier{
		client:  client,
		token:   token,
		metrics: metrics,
		logger:  logger.With(zap.Stringer("contract", token.Address())),
	}
}

// VerifyOrder proves that the order's transaction paid the required amount
// to the expected receiver for the expected asset and service. The returned
// settlement transfer is the largest single transfer to the receiver; the
// sufficiency check runs over the aggregate.
func (v *Verifier) VerifyOrder(ctx context.Context, order model.Order) (*model.VerifiedOrder, error) {
	receipt, err := v.transactionReceipt(ctx, order.TxID)
	if err != nil {
		return nil, fmt.Errorf("fetch receipt for tx %s: %w", order.TxID, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: tx %s", ErrTransactionFailed, order.TxID)
	}

	orderEvents, err := v.token.OrderStartedEvents(receipt)
	if err != nil {
		return nil, fmt.Errorf("decode order events: %w", err)
	}
	if len(orderEvents) == 0 {
		return nil, fmt.Errorf("%w: tx %s", ErrOrderEventNotFound, order.TxID)
	}
	if len(orderEvents) > 1 {
		return nil, fmt.Errorf("%w: tx %s has %d", ErrAmbiguousOrderEvent, order.TxID, len(orderEvents))
	}
	event := orderEvents[0]

	wantAsset := utils.NormalizeAssetID(order.AssetDID)
	if !strings.EqualFold(event.AssetID, wantAsset) || event.ServiceID != order.ServiceID {
		return nil, fmt.Errorf("%w: requested (did=%s, serviceId=%s), event (did=%s, serviceId=%s)",
			ErrAssetMismatch, order.AssetDID, order.ServiceID, event.AssetID, event.ServiceID)
	}
	if event.Receiver != order.Receiver {
		return nil, fmt.Errorf("%w: expected %s, event has %s",
			ErrReceiverMismatch, order.Receiver, event.Receiver)
	}

	// The sender comes from the transaction record itself, not the event,
	// so a forged event cannot attribute authorship.
	tx, sender, err := v.transactionSender(ctx, order.TxID, receipt)
	if err != nil {
		return nil, err
	}
	if sender != order.Sender {
		return nil, fmt.Errorf("%w: expected %s, tx from %s", ErrSenderMismatch, order.Sender, sender)
	}

	transfers, err := v.token.TransferEvents(receipt)
	if err != nil {
		return nil, fmt.Errorf("decode transfer events: %w", err)
	}
	toReceiver := transfersTo(transfers, order.Receiver)
	if len(toReceiver) == 0 {
		return nil, fmt.Errorf("%w: receiver %s, tx %s", ErrReceiverNotPaid, order.Receiver, order.TxID)
	}

	sort.Slice(toReceiver, func(i, j int) bool {
		return toReceiver[i].Value.Cmp(toReceiver[j].Value) < 0
	})
	total := new(big.Int)
	for _, tr := range toReceiver {
		total.Add(total, tr.Value)
	}
	required := new(big.Int).Sub(order.Amount, paymentTolerance)
	if total.Cmp(required) < 0 {
		return nil, fmt.Errorf("%w: required %s, transferred %s",
			ErrInsufficientPayment, order.Amount, total)
	}

	v.logger.Info("order verified",
		zap.Stringer("tx", order.TxID),
		zap.String("assetId", event.AssetID),
		zap.String("serviceId", event.ServiceID),
		zap.String("transferred", total.String()),
	)
	return &model.VerifiedOrder{
		Tx:         tx,
		Event:      event,
		Settlement: toReceiver[len(toReceiver)-1],
	}, nil
}

func (v *Verifier) transactionReceipt(ctx context.Context, txID common.Hash) (receipt *types.Receipt, err error) {
	started := time.Now()
	defer func() {
		v.metrics.Observe("transaction_receipt", err, started)
	}()
	return v.client.TransactionReceipt(ctx, txID)
}

func (v *Verifier) transactionSender(ctx context.Context, txID common.Hash, receipt *types.Receipt) (*types.Transaction, common.Address, error) {
	started := time.Now()
	tx, _, err := v.client.TransactionByHash(ctx, txID)
	v.metrics.Observe("transaction_by_hash", err, started)
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("fetch tx %s: %w", txID, err)
	}

	started = time.Now()
	sender, err := v.client.TransactionSender(ctx, tx, receipt.BlockHash, receipt.TransactionIndex)
	v.metrics.Observe("transaction_sender", err, started)
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("resolve sender of tx %s: %w", txID, err)
	}
	return tx, sender, nil
}

func transfersTo(transfers []model.TransferEvent, receiver common.Address) []model.TransferEvent {
	byRecipient := make(map[common.Address][]model.TransferEvent)
	for _, tr := range transfers {
		byRecipient[tr.To] = append(byRecipient[tr.To], tr)
	}
	return byRecipient[receiver]
}
