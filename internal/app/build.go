package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"kiwiforge/internal/core"
	"kiwiforge/internal/ports"
	"kiwiforge/internal/types"
)

// Build runs the whole sequence: checkout, build-info retrieval (cached),
// descriptor patch, one-time signing key generation, preliminary build,
// in-place build-info filtering, final build, artifact check.
//
// Key generation and build-info retrieval failures abort the run.  The
// build steps themselves are logged on failure and the run continues;
// the artifact existence check at the end decides the reported outcome.
func (s Service) Build(ctx context.Context, req BuildRequest) (BuildResult, error) {
	spec, set, err := s.loadProduct(ctx, req.ProductPath, req.Overrides)
	if err != nil {
		return BuildResult{}, err
	}
	settings := resolveSettings(req, spec)

	result := BuildResult{
		ProductName: spec.Metadata.Name,
		Artifact:    settings.Artifact,
	}

	packageDir, err := s.ensureCheckout(ctx, spec, settings)
	if err != nil {
		s.logStepFailure(types.BuildStepCheckout, err, ports.ExecResult{})
		result.FailedSteps = append(result.FailedSteps, types.BuildStepCheckout)
		packageDir = s.Workspace.PackageDir(settings.CheckoutDir, spec.Product.Project, spec.Product.Package)
	}

	report, fromCache, err := s.fetchBuildInfo(ctx, spec, settings, packageDir, false)
	if err != nil {
		return BuildResult{}, err
	}
	result.ReportFromCache = fromCache

	descriptor, err := s.Workspace.ReadDescriptor(packageDir, spec.Product.Descriptor)
	if err != nil {
		return BuildResult{}, err
	}
	patched, err := core.PatchDescriptor(descriptor, report, set)
	if err != nil {
		return BuildResult{}, err
	}
	generated, err := s.Workspace.WriteGeneratedDescriptor(packageDir, spec.Product.Descriptor, patched)
	if err != nil {
		return BuildResult{}, err
	}
	result.GeneratedDescriptor = generated

	created, err := s.SigningKey.Ensure(ctx, settings.BuildRoot)
	if err != nil {
		return BuildResult{}, err
	}
	result.KeyGenerated = created

	generatedName := filepath.Base(generated)
	if !req.SkipPrefetch {
		s.runBuildStep(ctx, types.BuildStepPrefetch, packageDir, spec, generatedName, &result)
	}

	if !set.Empty() {
		s.filterBuildInfoFile(spec, settings, packageDir, set, &result)
	}

	s.runBuildStep(ctx, types.BuildStepBuild, packageDir, spec, generatedName, &result)

	result.ArtifactExists = s.Workspace.ArtifactExists(settings.Artifact)
	return result, nil
}

// ensureCheckout fetches the product package on first use and updates
// an existing checkout on later runs.
func (s Service) ensureCheckout(ctx context.Context, spec types.Spec, settings buildSettings) (string, error) {
	packageDir := s.Workspace.PackageDir(settings.CheckoutDir, spec.Product.Project, spec.Product.Package)
	if _, err := os.Stat(packageDir); err == nil {
		if err := s.BuildService.Update(ctx, packageDir); err != nil {
			return packageDir, err
		}
		return packageDir, nil
	}
	if err := os.MkdirAll(settings.CheckoutDir, 0o755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create checkout directory").
			WithCause(err)
	}
	if err := s.BuildService.Checkout(ctx, settings.CheckoutDir, spec.Product.Project, spec.Product.Package); err != nil {
		return packageDir, err
	}
	return packageDir, nil
}

// fetchBuildInfo returns the build-dependency report, preferring the
// write-once cache.  A retrieval failure on a cache miss is fatal.
func (s Service) fetchBuildInfo(ctx context.Context, spec types.Spec, settings buildSettings, packageDir string, refresh bool) ([]byte, bool, error) {
	cache := s.NewCache(settings.CacheDir)
	key := cacheKey(spec)
	if !refresh {
		data, hit, err := cache.Get(key)
		if err != nil {
			return nil, false, err
		}
		if hit {
			return data, true, nil
		}
	}
	report, err := s.BuildService.BuildInfo(ctx, packageDir, spec.Product.Repository, spec.Product.Arch, spec.Product.Descriptor)
	if err != nil {
		return nil, false, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("build-info retrieval failed").
			WithCause(err)
	}
	if err := cache.Put(key, report); err != nil {
		return nil, false, err
	}
	return report, false, nil
}

// filterBuildInfoFile rewrites the build-service-internal build-info
// file in place, dropping overridden providers.  Failures here are
// step failures, not fatal: a missing file just means the preliminary
// build never produced one.
func (s Service) filterBuildInfoFile(spec types.Spec, settings buildSettings, packageDir string, set types.OverrideSet, result *BuildResult) {
	path := settings.BuildInfoFile
	if strings.TrimSpace(path) == "" {
		path = s.Workspace.BuildInfoFile(packageDir, spec.Product.Repository, spec.Product.Arch)
	}
	data, err := s.Workspace.ReadBuildInfo(path)
	if err != nil {
		s.logStepFailure(types.BuildStepFilter, err, ports.ExecResult{})
		result.FailedSteps = append(result.FailedSteps, types.BuildStepFilter)
		return
	}
	filtered, removed, err := core.FilterBuildInfo(data, set)
	if err != nil {
		s.logStepFailure(types.BuildStepFilter, err, ports.ExecResult{})
		result.FailedSteps = append(result.FailedSteps, types.BuildStepFilter)
		return
	}
	if err := s.Workspace.RewriteBuildInfo(path, filtered); err != nil {
		s.logStepFailure(types.BuildStepFilter, err, ports.ExecResult{})
		result.FailedSteps = append(result.FailedSteps, types.BuildStepFilter)
		return
	}
	result.RemovedEntries = removed
	log.Info().Str("file", path).Int("removed", removed).Msg("filtered build-info overrides")
}

func (s Service) runBuildStep(ctx context.Context, step types.BuildStep, packageDir string, spec types.Spec, descriptor string, result *BuildResult) {
	execResult, err := s.BuildService.Build(ctx, packageDir, spec.Product.Repository, spec.Product.Arch, descriptor)
	if err != nil {
		s.logStepFailure(step, err, execResult)
		result.FailedSteps = append(result.FailedSteps, step)
		return
	}
	log.Info().Str("step", string(step)).Msg("build step finished")
}

func (s Service) logStepFailure(step types.BuildStep, err error, execResult ports.ExecResult) {
	event := log.Error().Str("step", string(step)).Err(err)
	if strings.TrimSpace(execResult.Stdout) != "" {
		event = event.Str("stdout", strings.TrimSpace(execResult.Stdout))
	}
	if strings.TrimSpace(execResult.Stderr) != "" {
		event = event.Str("stderr", strings.TrimSpace(execResult.Stderr))
	}
	event.Msg("step failed")
}

// loadProduct loads and validates the product spec and accumulates the
// spec-level and request-level override directives, spec first.
func (s Service) loadProduct(ctx context.Context, productPath string, overrides []string) (types.Spec, types.OverrideSet, error) {
	path := strings.TrimSpace(productPath)
	if path == "" {
		path = discoverProduct()
	}
	if path == "" {
		return types.Spec{}, types.OverrideSet{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("product spec path is required")
	}
	spec, err := s.SpecLoader.LoadProduct(path)
	if err != nil {
		return types.Spec{}, types.OverrideSet{}, err
	}
	if err := core.NewSpecValidator().ValidateSpec(ctx, spec); err != nil {
		return types.Spec{}, types.OverrideSet{}, err
	}
	combined := append(append([]string{}, spec.Overrides...), overrides...)
	set, err := core.ParseDirectives(combined)
	if err != nil {
		return types.Spec{}, types.OverrideSet{}, err
	}
	return spec, set, nil
}
