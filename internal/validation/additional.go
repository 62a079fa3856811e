package validation

import (
	"context"

	"github.com/goodnatureofminers/datagate7000-backend/internal/model"
	"github.com/goodnatureofminers/datagate7000-backend/internal/utils"
	"go.uber.org/zap"
)

// AdditionalInputValidator validates the secondary data assets attached to
// a compute job. It owns only the per-asset input resolution; the parent
// job's already-validated algorithm and output specs are passed in
// explicitly and reused for every additional stage.
type AdditionalInputValidator struct {
	resolver  AssetResolver
	inputs    *inputResolver
	assembler StageAssembler
	logger    *zap.Logger
}

// NewAdditionalInputValidator builds an AdditionalInputValidator.
func NewAdditionalInputValidator(resolver AssetResolver, urls URLResolver, logger *zap.Logger) *AdditionalInputValidator {
	return &AdditionalInputValidator{
		resolver: resolver,
		inputs:   &inputResolver{urls: urls},
		logger:   logger,
	}
}

// Validate processes the items in array order; item at position i becomes
// stage index i+1. The first failing item stops processing and its failure
// is wrapped with the 1-based index; later items are not evaluated.
func (v *AdditionalInputValidator) Validate(ctx context.Context, items []model.AdditionalInput, algo model.AlgorithmSpec, output model.StageOutput) ([]model.Stage, *Failure) {
	var stages []model.Stage
	for i, item := range items {
		index := i + 1
		stage, fail := v.validateItem(ctx, item, index, algo, output)
		if fail != nil {
			return nil, wrapAdditional(index, fail)
		}
		stages = append(stages, stage)
	}
	return stages, nil
}

func (v *AdditionalInputValidator) validateItem(ctx context.Context, item model.AdditionalInput, index int, algo model.AlgorithmSpec, output model.StageOutput) (model.Stage, *Failure) {
	if item.DID == "" {
		return model.Stage{}, newFailure(StageAdditionalInput, index, KindMissingField, "no did in additionalInput")
	}
	if item.TransferTxID == "" {
		return model.Stage{}, newFailure(StageAdditionalInput, index, KindMissingField, "no transferTxId in additionalInput")
	}
	if item.ServiceIndex == nil {
		return model.Stage{}, newFailure(StageAdditionalInput, index, KindMissingField, "no serviceId in additionalInput")
	}

	did := utils.IDToDID(item.DID)
	asset, err := v.resolver.ResolveAsset(ctx, did)
	if err != nil {
		return model.Stage{}, newFailure(StageAdditionalInput, index, KindResolverUnavailable,
			"resolve asset %s: %v", did, err)
	}
	if asset == nil {
		return model.Stage{}, newFailure(StageAdditionalInput, index, KindAssetNotFound,
			"asset for did %s not found", did)
	}

	service := asset.ServiceByIndex(*item.ServiceIndex)
	if service == nil {
		return model.Stage{}, newFailure(StageAdditionalInput, index, KindInvalidAdditionalServiceType,
			"asset %s has no service with id %d", did, *item.ServiceIndex)
	}
	if service.Type != model.ServiceAccess && service.Type != model.ServiceCompute {
		return model.Stage{}, newFailure(StageAdditionalInput, index, KindInvalidAdditionalServiceType,
			"services in additionalInput can only be access or compute, got %q", service.Type)
	}

	input, fail := v.inputs.Resolve(ctx, asset, index)
	if fail != nil {
		return model.Stage{}, fail
	}

	v.logger.Debug("additional input validated",
		zap.String("did", did),
		zap.Int("index", index),
	)
	return v.assembler.Build(input, algo, output, index), nil
}
