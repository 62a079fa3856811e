package validation

import (
	"context"

	"github.com/goodnatureofminers/datagate7000-backend/internal/model"
	"go.uber.org/zap"
)

// RequestValidator runs the staged validation pipeline for a compute-job
// request: algorithm, primary input, output, then additional inputs. Every
// stage must succeed before the next runs; on failure no partial stage list
// is returned.
type RequestValidator struct {
	algorithms *AlgorithmValidator
	inputs     *inputResolver
	outputs    OutputBuilder
	additional *AdditionalInputValidator
	assembler  StageAssembler
	logger     *zap.Logger
}

// NewRequestValidator wires the pipeline.
func NewRequestValidator(resolver AssetResolver, urls URLResolver, defaults OutputDefaults, logger *zap.Logger) *RequestValidator {
	return &RequestValidator{
		algorithms: NewAlgorithmValidator(resolver, logger.Named("algorithm")),
		inputs:     &inputResolver{urls: urls},
		outputs:    NewOutputBuilder(defaults),
		additional: NewAdditionalInputValidator(resolver, urls, logger.Named("additionalInput")),
		logger:     logger,
	}
}

// Validate validates the request against the already-resolved primary asset
// and its compute service. On success it returns the assembled stages, with
// stage 0 for the primary input and one stage per additional input.
func (v *RequestValidator) Validate(ctx context.Context, req *model.ComputeJobRequest, asset *model.Asset, service *model.Service) ([]model.Stage, *Failure) {
	algoSpec, fail := v.algorithms.Validate(ctx, req, service)
	if fail != nil {
		return nil, fail
	}

	input, fail := v.inputs.Resolve(ctx, asset, 0)
	if fail != nil {
		return nil, fail
	}

	output := v.outputs.Build(req.Output, req.ConsumerAddress)

	stages := []model.Stage{v.assembler.Build(input, *algoSpec, output, 0)}

	extra, fail := v.additional.Validate(ctx, req.AdditionalInputs, *algoSpec, output)
	if fail != nil {
		return nil, fail
	}
	stages = append(stages, extra...)

	v.logger.Info("compute request validated",
		zap.String("documentId", req.DocumentID),
		zap.Int("stages", len(stages)),
	)
	return stages, nil
}
