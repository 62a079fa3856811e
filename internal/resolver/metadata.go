// Package resolver talks to the external metadata store (DDO registry).
package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goodnatureofminers/datagate7000-backend/internal/model"
	"go.uber.org/zap"
)

type (
	// Metrics records metrics for metadata store calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

const defaultRequestTimeout = 10 * time.Second

// MetadataStore resolves assets against an Aquarius-style DDO registry.
type MetadataStore struct {
	baseURL string
	client  *http.Client
	metrics Metrics
	logger  *zap.Logger
}

// NewMetadataStore builds a MetadataStore client for the given base URL.
func NewMetadataStore(baseURL string, metrics Metrics, logger *zap.Logger) *MetadataStore {
	return &MetadataStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: defaultRequestTimeout},
		metrics: metrics,
		logger:  logger.With(zap.String("metadataStore", baseURL)),
	}
}

// ResolveAsset fetches the DDO for a DID. An unknown DID returns (nil, nil)
// so callers can distinguish "not registered" from a store failure.
func (s *MetadataStore) ResolveAsset(ctx context.Context, did string) (asset *model.Asset, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("resolve_asset", err, started)
	}()

	endpoint := fmt.Sprintf("%s/api/v1/aquarius/assets/ddo/%s", s.baseURL, url.PathEscape(did))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build ddo request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch ddo for %s: %w", did, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		s.logger.Debug("asset not found", zap.String("did", did))
		return nil, nil
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("metadata store returned %d for %s", resp.StatusCode, did)
	}

	asset = &model.Asset{}
	if err = json.NewDecoder(resp.Body).Decode(asset); err != nil {
		return nil, fmt.Errorf("decode ddo for %s: %w", did, err)
	}
	return asset, nil
}
