package model

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Order is a claim that a specific transaction paid for a service of an asset.
// It exists only for the duration of a verification call.
type Order struct {
	TxID      common.Hash
	AssetDID  string
	ServiceID string
	// Amount is the required payment in 18-decimal base units, net of fees.
	Amount   *big.Int
	Sender   common.Address
	Receiver common.Address
}

// OrderStartedEvent is the decoded order event emitted by the token contract.
// Exactly one is expected per order transaction.
type OrderStartedEvent struct {
	AssetID             string
	ServiceID           string
	Amount              *big.Int
	Receiver            common.Address
	FeeCollector        common.Address
	MarketFeePercentage *big.Int
	StartedAt           uint64
	Raw                 types.Log
}

// TransferEvent is a decoded ERC20 Transfer log.
type TransferEvent struct {
	From  common.Address
	To    common.Address
	Value *big.Int
	Raw   types.Log
}

// VerifiedOrder is the proof-of-payment returned by order verification.
// Settlement is the single largest transfer addressed to the receiver.
type VerifiedOrder struct {
	Tx         *types.Transaction
	Event      OrderStartedEvent
	Settlement TransferEvent
}

// OrderAudit is a flattened verified order for the audit table.
type OrderAudit struct {
	TxID       string
	AssetID    string
	ServiceID  string
	Sender     string
	Receiver   string
	Amount     string
	Settled    string
	VerifiedAt time.Time
}
