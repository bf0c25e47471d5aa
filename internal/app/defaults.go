package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"kiwiforge/internal/types"
)

const (
	defaultCheckoutDir = "build"
	defaultCacheDir    = ".kiwiforge-cache"
	buildRootBase      = "/var/tmp/build-root"
)

// buildSettings are the resolved filesystem locations for one run:
// explicit request values win over spec defaults, which win over the
// conventional locations.
type buildSettings struct {
	CheckoutDir   string
	CacheDir      string
	Artifact      string
	BuildRoot     string
	BuildInfoFile string
}

func resolveSettings(req BuildRequest, spec types.Spec) buildSettings {
	settings := buildSettings{
		CheckoutDir:   firstNonEmpty(req.CheckoutDir, spec.Defaults.CheckoutDir, defaultCheckoutDir),
		CacheDir:      firstNonEmpty(req.CacheDir, spec.Defaults.CacheDir, defaultCacheDir),
		BuildRoot:     firstNonEmpty(spec.Defaults.BuildRoot, defaultBuildRoot(spec.Product)),
		BuildInfoFile: strings.TrimSpace(spec.Defaults.BuildInfoFile),
	}
	settings.Artifact = firstNonEmpty(req.Artifact, spec.Defaults.Artifact, defaultArtifact(spec, settings.BuildRoot))
	return settings
}

// defaultBuildRoot is the build tool's conventional chroot location for
// a repository/arch combination.
func defaultBuildRoot(product types.Product) string {
	return filepath.Join(buildRootBase, product.Repository+"-"+product.Arch)
}

// defaultArtifact is where the image builder drops the finished ISO
// inside the chroot.
func defaultArtifact(spec types.Spec, buildRoot string) string {
	name := fmt.Sprintf("%s.%s.iso", spec.Metadata.Name, spec.Product.Arch)
	return filepath.Join(buildRoot, "home", "abuild", "rpmbuild", "KIWI", name)
}

// cacheKey names the cached build-info report for one product and
// architecture.
func cacheKey(spec types.Spec) string {
	return fmt.Sprintf("%s-%s.buildinfo.xml", spec.Metadata.Name, spec.Product.Arch)
}

// discoverProduct looks for a product spec in the current directory so
// simple layouts need no --product flag.
func discoverProduct() string {
	for _, candidate := range []string{"kiwiforge.yaml", "product.yaml"} {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
