package app

import (
	"context"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"kiwiforge/internal/adapters"
	"kiwiforge/internal/core"
)

// Patch runs the descriptor patcher standalone against explicit files,
// without touching a checkout or the build service.
func (s Service) Patch(ctx context.Context, req PatchRequest) (PatchResult, error) {
	if strings.TrimSpace(req.DescriptorPath) == "" {
		return PatchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("descriptor path is required")
	}
	if strings.TrimSpace(req.BuildInfoPath) == "" {
		return PatchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("build-info path is required")
	}
	set, err := core.ParseDirectives(req.Overrides)
	if err != nil {
		return PatchResult{}, err
	}
	descriptor, err := readInput(req.DescriptorPath, "image descriptor")
	if err != nil {
		return PatchResult{}, err
	}
	report, err := readInput(req.BuildInfoPath, "build-info report")
	if err != nil {
		return PatchResult{}, err
	}

	patched, err := core.PatchDescriptor(descriptor, report, set)
	if err != nil {
		return PatchResult{}, err
	}
	reportPairs, err := core.ExtractRepoPairs(report)
	if err != nil {
		return PatchResult{}, err
	}

	output := strings.TrimSpace(req.OutputPath)
	if output == "" {
		output = adapters.GeneratedDescriptorName(req.DescriptorPath)
	}
	if err := os.WriteFile(output, patched, 0o644); err != nil {
		return PatchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write patched descriptor").
			WithCause(err)
	}
	return PatchResult{
		OutputPath:   output,
		Repositories: len(reportPairs) + len(set.Pairs()),
	}, nil
}

func readInput(path string, what string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read " + what).
			WithCause(err)
	}
	return data, nil
}
