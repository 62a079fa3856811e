package resolver

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/goodnatureofminers/datagate7000-backend/internal/model"
	"github.com/goodnatureofminers/datagate7000-backend/pkg/workerpool"
	"go.uber.org/zap"
)

const defaultCheckWorkers = 4

// FileResolver resolves the downloadable URLs of an asset, probing each one
// so that validation rejects inputs whose files have gone away.
type FileResolver struct {
	client  *http.Client
	workers int
	logger  *zap.Logger
}

// NewFileResolver builds a FileResolver.
func NewFileResolver(logger *zap.Logger) *FileResolver {
	return &FileResolver{
		client:  &http.Client{Timeout: defaultRequestTimeout},
		workers: defaultCheckWorkers,
		logger:  logger,
	}
}

// DownloadURLs returns the asset's reachable file URLs in file-index order.
// Unreachable files are dropped, not fatal; an asset with no reachable file
// resolves to an empty set.
func (r *FileResolver) DownloadURLs(ctx context.Context, asset *model.Asset) ([]string, error) {
	files := asset.Metadata.Main.Files
	if len(files) == 0 {
		return nil, nil
	}

	reachable := make([]bool, len(files))
	var mu sync.Mutex

	indices := make([]int, len(files))
	for i := range files {
		indices[i] = i
	}

	err := workerpool.Process(ctx, r.workers, indices, func(ctx context.Context, i int) error {
		ok := r.check(ctx, files[i].URL)
		mu.Lock()
		reachable[i] = ok
		mu.Unlock()
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}

	var urls []string
	for i, file := range files {
		if reachable[i] {
			urls = append(urls, file.URL)
		}
	}
	return urls, nil
}

func (r *FileResolver) check(ctx context.Context, rawURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return false
	}
	started := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Warn("file url unreachable", zap.String("url", rawURL), zap.Error(err))
		return false
	}
	_ = resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		r.logger.Warn("file url rejected",
			zap.String("url", rawURL),
			zap.Int("status", resp.StatusCode),
			zap.Duration("elapsed", time.Since(started)),
		)
		return false
	}
	return true
}
