// Package transport exposes the provider's REST handlers.
package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/datagate7000-backend/internal/model"
	"github.com/goodnatureofminers/datagate7000-backend/internal/validation"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// OrderVerifier proves on-chain payment for an order.
	OrderVerifier interface {
		VerifyOrder(ctx context.Context, order model.Order) (*model.VerifiedOrder, error)
	}

	// ComputeValidator runs the compute-job validation pipeline.
	ComputeValidator interface {
		Validate(ctx context.Context, req *model.ComputeJobRequest, asset *model.Asset, service *model.Service) ([]model.Stage, *validation.Failure)
	}

	// AssetResolver resolves DDO metadata. Nil asset with nil error means the
	// id is unknown to the metadata store.
	AssetResolver interface {
		ResolveAsset(ctx context.Context, did string) (*model.Asset, error)
	}

	// NonceStore tracks per-consumer signing nonces.
	NonceStore interface {
		CurrentNonce(ctx context.Context, address string) (uint64, error)
		BumpNonce(ctx context.Context, address string) (uint64, error)
	}

	// AccessClaims records one access grant per settlement transaction.
	AccessClaims interface {
		ClaimIfUnique(ctx context.Context, assetID, consumerAddress, txID string) (bool, error)
	}

	// AuditSink receives verified orders for the audit trail.
	AuditSink interface {
		Add(ctx context.Context, order model.OrderAudit) error
	}

	// ValidationMetrics observes validation pipeline outcomes.
	ValidationMetrics interface {
		ObserveRequest(failed bool, started time.Time)
		ObserveFailure(stage, kind string)
	}
)
