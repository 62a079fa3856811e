package validation

import (
	"context"

	"github.com/goodnatureofminers/datagate7000-backend/internal/model"
	"go.uber.org/zap"
)

// AlgorithmValidator resolves and validates the algorithm definition of a
// compute-job request against the service's privacy policy and the
// completeness rules for an executable spec.
type AlgorithmValidator struct {
	resolver AssetResolver
	logger   *zap.Logger
}

// NewAlgorithmValidator builds an AlgorithmValidator.
func NewAlgorithmValidator(resolver AssetResolver, logger *zap.Logger) *AlgorithmValidator {
	return &AlgorithmValidator{resolver: resolver, logger: logger}
}

// Validate runs the policy checks in order, short-circuiting on the first
// failure. The trusted-algorithms check runs before any metadata resolution.
func (v *AlgorithmValidator) Validate(ctx context.Context, req *model.ComputeJobRequest, service *model.Service) (*model.AlgorithmSpec, *Failure) {
	if service == nil || service.Type != model.ServiceCompute {
		return nil, newFailure(StageAlgorithm, 0, KindNoComputeService,
			"this DID has no compute service %s", req.DocumentID)
	}
	if req.AlgorithmMeta != nil && !service.AllowsRawAlgorithm() {
		return nil, newFailure(StageAlgorithm, 0, KindRawAlgorithmNotAllowed,
			"cannot run raw algorithm on this did %s", req.DocumentID)
	}
	if req.AlgorithmDID != "" && !service.TrustsAlgorithm(req.AlgorithmDID) {
		return nil, newFailure(StageAlgorithm, 0, KindAlgorithmNotTrusted,
			"algorithm %s is not in the trusted algorithms of service %d for did %s",
			req.AlgorithmDID, service.Index, req.DocumentID)
	}

	spec, fail := v.build(ctx, req)
	if fail != nil {
		return nil, fail
	}
	if req.AlgorithmDID != "" && spec.URL == "" && len(spec.Remote) == 0 && spec.RawCode == "" {
		return nil, newFailure(StageAlgorithm, 0, KindMissingAlgorithmSource,
			"cannot get url for the algorithmDid %s", req.AlgorithmDID)
	}
	if !spec.HasSource() {
		return nil, newFailure(StageAlgorithm, 0, KindMissingAlgorithmSource,
			"algorithmMeta must define one of url, rawcode or remote, but all seem missing")
	}
	if !spec.Container.Complete() {
		return nil, newFailure(StageAlgorithm, 0, KindIncompleteContainerSpec,
			"algorithm container must specify values for all of entrypoint, image and tag")
	}
	return spec, nil
}

func (v *AlgorithmValidator) build(ctx context.Context, req *model.ComputeJobRequest) (*model.AlgorithmSpec, *Failure) {
	if req.AlgorithmDID == "" {
		meta := req.AlgorithmMeta
		if meta == nil {
			return nil, newFailure(StageAlgorithm, 0, KindMissingField,
				"one of algorithmDid or algorithmMeta is required")
		}
		return &model.AlgorithmSpec{
			URL:       meta.URL,
			RawCode:   meta.RawCode,
			Remote:    meta.Remote,
			Container: meta.Container,
		}, nil
	}

	algo, err := v.resolver.ResolveAsset(ctx, req.AlgorithmDID)
	if err != nil {
		return nil, newFailure(StageAlgorithm, 0, KindResolverUnavailable,
			"resolve algorithm %s: %v", req.AlgorithmDID, err)
	}
	if algo == nil {
		return nil, newFailure(StageAlgorithm, 0, KindAlgorithmNotFound,
			"algorithm asset %s not found", req.AlgorithmDID)
	}
	if algo.Metadata.Main.Type != model.AssetTypeAlgorithm {
		return nil, newFailure(StageAlgorithm, 0, KindNotAnAlgorithmAsset,
			"DID %s is not a valid algorithm", req.AlgorithmDID)
	}

	spec := &model.AlgorithmSpec{ID: req.AlgorithmDID}
	if len(algo.Metadata.Main.Files) > 0 {
		spec.URL = algo.Metadata.Main.Files[0].URL
	}
	if details := algo.Metadata.Main.Algorithm; details != nil {
		spec.Container = details.Container
	}
	return spec, nil
}
