package ledger

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/datagate7000-backend/internal/model"
)

const (
	// OrderStartedEvent is emitted once per paid order.
	OrderStartedEvent = "OrderStarted"
	// OrderFinishedEvent is emitted by the provider when it proves delivery.
	OrderFinishedEvent = "OrderFinished"
	// TransferEvent is the standard ERC20 value transfer.
	TransferEvent = "Transfer"
)

const tokenABIJSON = `[
{"anonymous":false,"inputs":[
  {"indexed":true,"name":"receiver","type":"address"},
  {"indexed":false,"name":"amount","type":"uint256"},
  {"indexed":false,"name":"did","type":"bytes32"},
  {"indexed":false,"name":"serviceId","type":"uint256"},
  {"indexed":false,"name":"startedAt","type":"uint256"},
  {"indexed":false,"name":"feeCollector","type":"address"},
  {"indexed":false,"name":"marketFee","type":"uint256"}],
 "name":"OrderStarted","type":"event"},
{"anonymous":false,"inputs":[
  {"indexed":true,"name":"orderTxId","type":"bytes32"},
  {"indexed":true,"name":"consumer","type":"address"},
  {"indexed":false,"name":"amount","type":"uint256"},
  {"indexed":false,"name":"did","type":"bytes32"},
  {"indexed":false,"name":"serviceId","type":"uint256"},
  {"indexed":false,"name":"provider","type":"address"}],
 "name":"OrderFinished","type":"event"},
{"anonymous":false,"inputs":[
  {"indexed":true,"name":"from","type":"address"},
  {"indexed":true,"name":"to","type":"address"},
  {"indexed":false,"name":"value","type":"uint256"}],
 "name":"Transfer","type":"event"}]`

// TokenContract decodes event logs emitted by one data-token contract.
type TokenContract struct {
	address common.Address
	abi     abi.ABI
}

// NewTokenContract builds a decoder bound to the token contract address.
func NewTokenContract(address common.Address) (*TokenContract, error) {
	parsed, err := abi.JSON(strings.NewReader(tokenABIJSON))
	if err != nil {
		return nil, fmt.Errorf("parse token abi: %w", err)
	}
	return &TokenContract{address: address, abi: parsed}, nil
}

// Address returns the bound contract address.
func (t *TokenContract) Address() common.Address {
	return t.address
}

// EventID returns the topic hash for a named event.
func (t *TokenContract) EventID(name string) (common.Hash, error) {
	ev, ok := t.abi.Events[name]
	if !ok {
		return common.Hash{}, fmt.Errorf("unknown event %q", name)
	}
	return ev.ID, nil
}

// OrderStartedEvents decodes all OrderStarted logs emitted by the token
// contract within a receipt. Logs from other contracts are ignored.
func (t *TokenContract) OrderStartedEvents(receipt *types.Receipt) ([]model.OrderStartedEvent, error) {
	ev := t.abi.Events[OrderStartedEvent]

	var out []model.OrderStartedEvent
	for _, log := range receipt.Logs {
		if !t.matches(log, ev.ID) {
			continue
		}
		if len(log.Topics) < 2 {
			return nil, fmt.Errorf("order event log %d missing receiver topic", log.Index)
		}

		var data struct {
			Amount       *big.Int
			Did          [32]byte
			ServiceId    *big.Int
			StartedAt    *big.Int
			FeeCollector common.Address
			MarketFee    *big.Int
		}
		if err := t.abi.UnpackIntoInterface(&data, OrderStartedEvent, log.Data); err != nil {
			return nil, fmt.Errorf("unpack order event log %d: %w", log.Index, err)
		}

		out = append(out, model.OrderStartedEvent{
			AssetID:             hexutil.Encode(data.Did[:]),
			ServiceID:           data.ServiceId.String(),
			Amount:              data.Amount,
			Receiver:            common.BytesToAddress(log.Topics[1].Bytes()),
			FeeCollector:        data.FeeCollector,
			MarketFeePercentage: data.MarketFee,
			StartedAt:           data.StartedAt.Uint64(),
			Raw:                 *log,
		})
	}
	return out, nil
}

// TransferEvents decodes all Transfer logs emitted by the token contract
// within a receipt.
func (t *TokenContract) TransferEvents(receipt *types.Receipt) ([]model.TransferEvent, error) {
	ev := t.abi.Events[TransferEvent]

	var out []model.TransferEvent
	for _, log := range receipt.Logs {
		if !t.matches(log, ev.ID) {
			continue
		}
		if len(log.Topics) < 3 {
			return nil, fmt.Errorf("transfer log %d missing address topics", log.Index)
		}

		var data struct {
			Value *big.Int
		}
		if err := t.abi.UnpackIntoInterface(&data, TransferEvent, log.Data); err != nil {
			return nil, fmt.Errorf("unpack transfer log %d: %w", log.Index, err)
		}

		out = append(out, model.TransferEvent{
			From:  common.BytesToAddress(log.Topics[1].Bytes()),
			To:    common.BytesToAddress(log.Topics[2].Bytes()),
			Value: data.Value,
			Raw:   *log,
		})
	}
	return out, nil
}

func (t *TokenContract) matches(log *types.Log, topic common.Hash) bool {
	return log.Address == t.address && len(log.Topics) > 0 && log.Topics[0] == topic
}
