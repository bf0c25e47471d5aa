package app

import (
	"context"
)

// CacheClean evicts the cached build-info report for the product, or
// the whole cache directory with All.  Manual eviction is the only way
// a cached report is ever refreshed implicitly.
func (s Service) CacheClean(ctx context.Context, req CacheCleanRequest) (CacheCleanResult, error) {
	spec, _, err := s.loadProduct(ctx, req.ProductPath, nil)
	if err != nil {
		return CacheCleanResult{}, err
	}
	settings := resolveSettings(BuildRequest{CacheDir: req.CacheDir}, spec)
	cache := s.NewCache(settings.CacheDir)
	if req.All {
		if err := cache.Clear(); err != nil {
			return CacheCleanResult{}, err
		}
		return CacheCleanResult{Cleared: true}, nil
	}
	if err := cache.Remove(cacheKey(spec)); err != nil {
		return CacheCleanResult{}, err
	}
	return CacheCleanResult{Cleared: true}, nil
}
