package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"kiwiforge/internal/ports"
)

// WorkspaceAdapter maps the build-service checkout layout: the client
// checks project/pkg out into <root>/<project>/<pkg>, keeps its
// bookkeeping under .osc/, and the image descriptor sits next to it.
type WorkspaceAdapter struct{}

func NewWorkspaceAdapter() WorkspaceAdapter {
	return WorkspaceAdapter{}
}

func (a WorkspaceAdapter) PackageDir(checkoutDir string, project string, pkg string) string {
	return filepath.Join(checkoutDir, project, pkg)
}

func (a WorkspaceAdapter) ReadDescriptor(packageDir string, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(packageDir, name))
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read image descriptor").
			WithCause(err)
	}
	return data, nil
}

func (a WorkspaceAdapter) WriteGeneratedDescriptor(packageDir string, name string, data []byte) (string, error) {
	path := filepath.Join(packageDir, GeneratedDescriptorName(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write generated descriptor").
			WithCause(err)
	}
	return path, nil
}

func (a WorkspaceAdapter) BuildInfoFile(packageDir string, repository string, arch string) string {
	return filepath.Join(packageDir, ".osc", "_buildinfo-"+repository+"-"+arch+".xml")
}

func (a WorkspaceAdapter) ReadBuildInfo(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read build-info file").
			WithCause(err)
	}
	return data, nil
}

func (a WorkspaceAdapter) RewriteBuildInfo(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to rewrite build-info file").
			WithCause(err)
	}
	return nil
}

func (a WorkspaceAdapter) ArtifactExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// GeneratedDescriptorName derives the patched descriptor's file name
// from the original, keeping it alongside in the same directory:
// config.kiwi becomes config.generated.kiwi.
func GeneratedDescriptorName(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return name + ".generated"
	}
	return strings.TrimSuffix(name, ext) + ".generated" + ext
}

var _ ports.WorkspacePort = WorkspaceAdapter{}
