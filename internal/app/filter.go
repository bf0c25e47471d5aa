package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"kiwiforge/internal/core"
)

// Filter rewrites a build-info file in place, removing dependency
// entries whose provider a directive overrides.
func (s Service) Filter(ctx context.Context, req FilterRequest) (FilterResult, error) {
	if strings.TrimSpace(req.BuildInfoPath) == "" {
		return FilterResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("build-info path is required")
	}
	if len(req.Overrides) == 0 {
		return FilterResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one override directive is required")
	}
	set, err := core.ParseDirectives(req.Overrides)
	if err != nil {
		return FilterResult{}, err
	}
	data, err := s.Workspace.ReadBuildInfo(req.BuildInfoPath)
	if err != nil {
		return FilterResult{}, err
	}
	filtered, removed, err := core.FilterBuildInfo(data, set)
	if err != nil {
		return FilterResult{}, err
	}
	if err := s.Workspace.RewriteBuildInfo(req.BuildInfoPath, filtered); err != nil {
		return FilterResult{}, err
	}
	return FilterResult{Removed: removed}, nil
}
