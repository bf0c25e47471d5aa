package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kiwiforge/internal/types"
)

const sampleSpecYAML = `api_version: v1
kind: product
metadata:
  name: leap-live
  version: "1.0"
  owners: [images-team]
product:
  project: home:images:live
  package: livecd-leap
  repository: images
  arch: x86_64
  descriptor: config.kiwi
defaults:
  checkout_dir: build
  cache_dir: .kiwiforge-cache
  artifact: /var/tmp/build-root/images-x86_64/image.iso
overrides:
  - devel:languages:go/standard:go1.24
`

func writeSpec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "product.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProduct(t *testing.T) {
	adapter := NewSpecFileAdapter()
	spec, err := adapter.LoadProduct(writeSpec(t, sampleSpecYAML))
	require.NoError(t, err)

	assert.Equal(t, types.SpecKindProduct, spec.Kind)
	assert.Equal(t, "leap-live", spec.Metadata.Name)
	assert.Equal(t, "home:images:live", spec.Product.Project)
	assert.Equal(t, "livecd-leap", spec.Product.Package)
	assert.Equal(t, "images", spec.Product.Repository)
	assert.Equal(t, "x86_64", spec.Product.Arch)
	assert.Equal(t, "config.kiwi", spec.Product.Descriptor)
	assert.Equal(t, "build", spec.Defaults.CheckoutDir)
	assert.Equal(t, ".kiwiforge-cache", spec.Defaults.CacheDir)
	assert.Equal(t, []string{"devel:languages:go/standard:go1.24"}, spec.Overrides)
}

func TestLoadProductWrongKind(t *testing.T) {
	adapter := NewSpecFileAdapter()
	_, err := adapter.LoadProduct(writeSpec(t, "api_version: v1\nkind: profile\n"))
	require.Error(t, err)
}

func TestLoadProductMissingFile(t *testing.T) {
	adapter := NewSpecFileAdapter()
	_, err := adapter.LoadProduct(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadProductBadYAML(t *testing.T) {
	adapter := NewSpecFileAdapter()
	_, err := adapter.LoadProduct(writeSpec(t, "kind: [unterminated"))
	require.Error(t, err)
}
