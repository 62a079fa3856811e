package model

import "encoding/json"

// Container describes the execution environment of an algorithm.
type Container struct {
	Entrypoint string `json:"entrypoint"`
	Image      string `json:"image"`
	Tag        string `json:"tag"`
}

// Complete reports whether all container fields are set.
func (c Container) Complete() bool {
	return c.Entrypoint != "" && c.Image != "" && c.Tag != ""
}

// AlgorithmSpec is the executable algorithm definition assembled for a job.
// At least one of URL, RawCode or Remote must be set.
type AlgorithmSpec struct {
	ID        string          `json:"id,omitempty"`
	URL       string          `json:"url,omitempty"`
	RawCode   string          `json:"rawcode,omitempty"`
	Remote    json.RawMessage `json:"remote,omitempty"`
	Container Container       `json:"container"`
}

// HasSource reports whether any algorithm source field is present.
func (a AlgorithmSpec) HasSource() bool {
	return a.URL != "" || a.RawCode != "" || len(a.Remote) > 0
}

// AlgorithmMeta is an inline (raw) algorithm definition supplied by the
// consumer instead of a registered algorithm DID.
type AlgorithmMeta struct {
	URL       string          `json:"url,omitempty"`
	RawCode   string          `json:"rawcode,omitempty"`
	Remote    json.RawMessage `json:"remote,omitempty"`
	Container Container       `json:"container"`
}

// StageInput locates the data consumed by one stage.
type StageInput struct {
	Index int      `json:"index"`
	ID    string   `json:"id"`
	URLs  []string `json:"url"`
}

// StageOutput describes where and how stage results are published.
type StageOutput struct {
	NodeURI             string `json:"nodeUri,omitempty"`
	ProviderURI         string `json:"providerUri,omitempty"`
	ProviderAddress     string `json:"providerAddress,omitempty"`
	MetadataURI         string `json:"metadataUri,omitempty"`
	Owner               string `json:"owner,omitempty"`
	PublishOutput       bool   `json:"publishOutput"`
	PublishAlgorithmLog bool   `json:"publishAlgorithmLog"`
}

// Stage is one assembled {input, algorithm, output} unit of a compute job.
// Index 0 is the primary stage; indices >= 1 are additional inputs.
type Stage struct {
	Index     int           `json:"index"`
	Input     StageInput    `json:"input"`
	Algorithm AlgorithmSpec `json:"algorithm"`
	Output    StageOutput   `json:"output"`
}

// AdditionalInput references a secondary paid asset attached to a job.
type AdditionalInput struct {
	DID          string `json:"did"`
	TransferTxID string `json:"transferTxId"`
	ServiceIndex *int   `json:"serviceId"`
}

// ComputeJobRequest is a compute-job start request after transport decoding.
type ComputeJobRequest struct {
	ConsumerAddress  string            `json:"consumerAddress"`
	DocumentID       string            `json:"documentId"`
	ServiceIndex     int               `json:"serviceId"`
	TransferTxID     string            `json:"transferTxId"`
	AlgorithmDID     string            `json:"algorithmDid,omitempty"`
	AlgorithmMeta    *AlgorithmMeta    `json:"algorithmMeta,omitempty"`
	Output           *StageOutput      `json:"output,omitempty"`
	AdditionalInputs []AdditionalInput `json:"additionalInput,omitempty"`
}
