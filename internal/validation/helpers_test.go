package validation

import (
	"github.com/goodnatureofminers/datagate7000-backend/internal/model"
)

const (
	testConsumer     = "0x00000000000000000000000000000000000000c1"
	testPrimaryDID   = "did:op:1111000000000000000000000000000000000000000000000000000000001111"
	testAlgorithmDID = "did:op:aaaa000000000000000000000000000000000000000000000000000000aaaa"
)

func computeService(privacy *model.PrivacyPolicy) *model.Service {
	return &model.Service{Index: 3, Type: model.ServiceCompute, Privacy: privacy}
}

func rawAlgorithmMeta() *model.AlgorithmMeta {
	return &model.AlgorithmMeta{
		RawCode:   "print('hello')",
		Container: model.Container{Entrypoint: "python $ALGO", Image: "python", Tag: "3.11"},
	}
}

func algorithmAsset(assetType string) *model.Asset {
	return &model.Asset{
		DID: testAlgorithmDID,
		Metadata: model.Metadata{Main: model.MetadataMain{
			Type:  assetType,
			Files: []model.File{{Index: 0, URL: "https://algo.example/run.py"}},
			Algorithm: &model.AlgorithmDetails{
				Language:  "python",
				Container: model.Container{Entrypoint: "python $ALGO", Image: "python", Tag: "3.11"},
			},
		}},
	}
}

func dataAsset(did string, services ...model.Service) *model.Asset {
	return &model.Asset{
		DID:      did,
		Services: services,
		Metadata: model.Metadata{Main: model.MetadataMain{
			Type:  "dataset",
			Files: []model.File{{Index: 0, URL: "https://data.example/set.csv"}},
		}},
	}
}

func computeRequest() *model.ComputeJobRequest {
	return &model.ComputeJobRequest{
		ConsumerAddress: testConsumer,
		DocumentID:      testPrimaryDID,
		ServiceIndex:    3,
		TransferTxID:    "0xfeed",
		AlgorithmMeta:   rawAlgorithmMeta(),
	}
}

func intPtr(i int) *int {
	return &i
}
