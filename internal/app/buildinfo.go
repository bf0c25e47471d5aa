package app

import (
	"context"

	"kiwiforge/internal/core"
)

// BuildInfo fetches the build-dependency report for the product, through
// the write-once cache, and returns the distinct repository pairs it
// references.  Refresh bypasses the cached copy and overwrites it.
func (s Service) BuildInfo(ctx context.Context, req BuildInfoRequest) (BuildInfoResult, error) {
	spec, _, err := s.loadProduct(ctx, req.ProductPath, nil)
	if err != nil {
		return BuildInfoResult{}, err
	}
	settings := resolveSettings(BuildRequest{
		CheckoutDir: req.CheckoutDir,
		CacheDir:    req.CacheDir,
	}, spec)

	packageDir := s.Workspace.PackageDir(settings.CheckoutDir, spec.Product.Project, spec.Product.Package)
	report, fromCache, err := s.fetchBuildInfo(ctx, spec, settings, packageDir, req.Refresh)
	if err != nil {
		return BuildInfoResult{}, err
	}
	pairs, err := core.ExtractRepoPairs(report)
	if err != nil {
		return BuildInfoResult{}, err
	}
	return BuildInfoResult{
		ProductName: spec.Metadata.Name,
		FromCache:   fromCache,
		Pairs:       pairs,
	}, nil
}
