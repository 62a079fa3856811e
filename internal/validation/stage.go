package validation

import (
	"context"

	"github.com/goodnatureofminers/datagate7000-backend/internal/model"
)

// StageAssembler combines already-validated parts into a Stage. It is
// stateless and shared between the request validator and the
// additional-input validator; each passes the parts it owns explicitly.
type StageAssembler struct{}

// Build assembles a stage at the given index.
func (StageAssembler) Build(input model.StageInput, algo model.AlgorithmSpec, output model.StageOutput, index int) model.Stage {
	input.Index = index
	return model.Stage{
		Index:     index,
		Input:     input,
		Algorithm: algo,
		Output:    output,
	}
}

// inputResolver is the input-resolution step shared by stage 0 and every
// additional input.
type inputResolver struct {
	urls URLResolver
}

func (r *inputResolver) Resolve(ctx context.Context, asset *model.Asset, index int) (model.StageInput, *Failure) {
	urls, err := r.urls.DownloadURLs(ctx, asset)
	if err != nil {
		return model.StageInput{}, newFailure(StageInput, index, KindResolverUnavailable,
			"resolve url(s) for input did %s: %v", asset.DID, err)
	}
	if len(urls) == 0 {
		return model.StageInput{}, newFailure(StageInput, index, KindMissingInputURL,
			"cannot get url(s) in input did %s", asset.DID)
	}
	return model.StageInput{Index: index, ID: asset.DID, URLs: urls}, nil
}
