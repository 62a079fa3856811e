package validation

import (
	"context"

	"github.com/goodnatureofminers/datagate7000-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// AssetResolver resolves DDO metadata for an asset id. A nil asset with
	// a nil error means the id is unknown to the metadata store.
	AssetResolver interface {
		ResolveAsset(ctx context.Context, did string) (*model.Asset, error)
	}

	// URLResolver resolves the downloadable file URLs behind an asset.
	URLResolver interface {
		DownloadURLs(ctx context.Context, asset *model.Asset) ([]string, error)
	}
)
