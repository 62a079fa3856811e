package transport

import (
	"sort"
	"strings"

	"github.com/goodnatureofminers/datagate7000-backend/internal/model"
)

type initializeRequest struct {
	DocumentID      string `json:"documentId"`
	ServiceIndex    int    `json:"serviceId"`
	ConsumerAddress string `json:"consumerAddress"`
	TransferTxID    string `json:"transferTxId"`
	Signature       string `json:"signature"`
}

func (r initializeRequest) missingFields() []string {
	return missing(map[string]string{
		"documentId":      r.DocumentID,
		"consumerAddress": r.ConsumerAddress,
		"transferTxId":    r.TransferTxID,
		"signature":       r.Signature,
	})
}

type computeRequest struct {
	model.ComputeJobRequest
	Signature string `json:"signature"`
}

func (r computeRequest) missingFields() []string {
	fields := missing(map[string]string{
		"documentId":      r.DocumentID,
		"consumerAddress": r.ConsumerAddress,
		"transferTxId":    r.TransferTxID,
		"signature":       r.Signature,
	})
	if r.AlgorithmDID == "" && r.AlgorithmMeta == nil {
		fields = append(fields, "algorithmDid or algorithmMeta")
	}
	return fields
}

func missing(fields map[string]string) []string {
	var names []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
