package ports

// WorkspacePort maps the checkout tree layout and reads/writes the
// files this tool patches.
type WorkspacePort interface {
	// PackageDir returns the directory of project/pkg inside the
	// checkout root.
	PackageDir(checkoutDir string, project string, pkg string) string

	// ReadDescriptor reads the named image descriptor from packageDir.
	ReadDescriptor(packageDir string, name string) ([]byte, error)

	// WriteGeneratedDescriptor writes the patched descriptor alongside
	// the original and returns the generated file's path.
	WriteGeneratedDescriptor(packageDir string, name string, data []byte) (string, error)

	// BuildInfoFile returns the path of the build-service-internal
	// build-info file for repository/arch inside packageDir.
	BuildInfoFile(packageDir string, repository string, arch string) string

	// ReadBuildInfo reads a build-info file.
	ReadBuildInfo(path string) ([]byte, error)

	// RewriteBuildInfo replaces a build-info file's content in place.
	RewriteBuildInfo(path string, data []byte) error

	// ArtifactExists reports whether the final build artifact is
	// present at path.
	ArtifactExists(path string) bool
}
