package validation

import "fmt"

// Kind identifies a validation failure class. Validation failures are data,
// not errors: they are returned to the caller so it can report which part of
// a multi-asset job was rejected.
type Kind string

const (
	KindNoComputeService             Kind = "NoComputeService"
	KindRawAlgorithmNotAllowed       Kind = "RawAlgorithmNotAllowed"
	KindAlgorithmNotTrusted          Kind = "AlgorithmNotTrusted"
	KindAlgorithmNotFound            Kind = "AlgorithmNotFound"
	KindNotAnAlgorithmAsset          Kind = "NotAnAlgorithmAsset"
	KindMissingAlgorithmSource       Kind = "MissingAlgorithmSource"
	KindIncompleteContainerSpec      Kind = "IncompleteContainerSpec"
	KindMissingField                 Kind = "MissingField"
	KindAssetNotFound                Kind = "AssetNotFound"
	KindInvalidAdditionalServiceType Kind = "InvalidAdditionalServiceType"
	KindMissingInputURL              Kind = "MissingInputURL"
	KindResolverUnavailable          Kind = "ResolverUnavailable"
)

// Stage names used in failure reports.
const (
	StageAlgorithm       = "algorithm"
	StageInput           = "input"
	StageOutput          = "output"
	StageAdditionalInput = "additionalInput"
)

// Failure describes why a validation stage rejected a request. Index is 0
// for the primary stage and 1-based for additional inputs.
type Failure struct {
	Stage   string `json:"stage"`
	Index   int    `json:"index"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (f *Failure) String() string {
	return fmt.Sprintf("%s[%d] %s: %s", f.Stage, f.Index, f.Kind, f.Message)
}

func newFailure(stage string, index int, kind Kind, format string, args ...any) *Failure {
	return &Failure{
		Stage:   stage,
		Index:   index,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// wrapAdditional rewraps an inner failure with its 1-based additional-input
// index. The inner kind is preserved for programmatic handling.
func wrapAdditional(index int, inner *Failure) *Failure {
	return &Failure{
		Stage:   StageAdditionalInput,
		Index:   index,
		Kind:    inner.Kind,
		Message: fmt.Sprintf("Error in additionalInput at index %d: %s", index, inner.Message),
	}
}
