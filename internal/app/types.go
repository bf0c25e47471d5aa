package app

import "kiwiforge/internal/types"

type BuildRequest struct {
	ProductPath string
	Overrides   []string
	CheckoutDir string
	CacheDir    string
	Artifact    string

	// SkipPrefetch skips the preliminary build that populates the
	// chroot before the build-info file is filtered.
	SkipPrefetch bool
}

type BuildResult struct {
	ProductName         string
	GeneratedDescriptor string
	Artifact            string
	ArtifactExists      bool
	KeyGenerated        bool
	ReportFromCache     bool
	RemovedEntries      int
	FailedSteps         []types.BuildStep
}

type PatchRequest struct {
	DescriptorPath string
	BuildInfoPath  string
	OutputPath     string
	Overrides      []string
}

type PatchResult struct {
	OutputPath   string
	Repositories int
}

type FilterRequest struct {
	BuildInfoPath string
	Overrides     []string
}

type FilterResult struct {
	Removed int
}

type BuildInfoRequest struct {
	ProductPath string
	CheckoutDir string
	CacheDir    string
	Refresh     bool
}

type BuildInfoResult struct {
	ProductName string
	FromCache   bool
	Pairs       []types.RepoPair
}

type ValidateRequest struct {
	ProductPath string
}

type ValidateResult struct {
	ProductName string

	// DescriptorChecked is set when the descriptor was already present
	// in the checkout and parsed successfully.
	DescriptorChecked bool
}

type CacheCleanRequest struct {
	ProductPath string
	CacheDir    string
	All         bool
}

type CacheCleanResult struct {
	Cleared bool
}
