package types

type SpecKind string

const (
	SpecKindProduct SpecKind = "product"
)

// BuildStep identifies a phase of the orchestrated image build. Used in
// logs and in step-failure reporting.
type BuildStep string

const (
	BuildStepCheckout  BuildStep = "checkout"
	BuildStepBuildInfo BuildStep = "buildinfo"
	BuildStepPatch     BuildStep = "patch"
	BuildStepKeygen    BuildStep = "keygen"
	BuildStepPrefetch  BuildStep = "prefetch"
	BuildStepFilter    BuildStep = "filter"
	BuildStepBuild     BuildStep = "build"
)
