package validation

import "github.com/goodnatureofminers/datagate7000-backend/internal/model"

// OutputDefaults are provider-side defaults merged under the consumer's
// requested output options.
type OutputDefaults struct {
	NodeURI         string
	ProviderURI     string
	ProviderAddress string
	MetadataURI     string
}

// OutputBuilder builds the stage output spec for a job.
type OutputBuilder struct {
	defaults OutputDefaults
}

// NewOutputBuilder returns an OutputBuilder with the given defaults.
func NewOutputBuilder(defaults OutputDefaults) OutputBuilder {
	return OutputBuilder{defaults: defaults}
}

// Build merges the requested output options over the provider defaults.
// The owner falls back to the consumer address.
func (b OutputBuilder) Build(requested *model.StageOutput, consumerAddress string) model.StageOutput {
	out := model.StageOutput{
		NodeURI:         b.defaults.NodeURI,
		ProviderURI:     b.defaults.ProviderURI,
		ProviderAddress: b.defaults.ProviderAddress,
		MetadataURI:     b.defaults.MetadataURI,
		Owner:           consumerAddress,
	}
	if requested == nil {
		return out
	}

	if requested.NodeURI != "" {
		out.NodeURI = requested.NodeURI
	}
	if requested.ProviderURI != "" {
		out.ProviderURI = requested.ProviderURI
	}
	if requested.ProviderAddress != "" {
		out.ProviderAddress = requested.ProviderAddress
	}
	if requested.MetadataURI != "" {
		out.MetadataURI = requested.MetadataURI
	}
	if requested.Owner != "" {
		out.Owner = requested.Owner
	}
	out.PublishOutput = requested.PublishOutput
	out.PublishAlgorithmLog = requested.PublishAlgorithmLog
	return out
}
