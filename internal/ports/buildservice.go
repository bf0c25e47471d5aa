package ports

import "context"

// BuildServicePort wraps the external build-service client.  All heavy
// lifting (fetching sources, resolving dependencies, chrooted building)
// happens inside the client; credentials come from the client's own
// configuration and are never read here.
type BuildServicePort interface {
	// Checkout fetches project/pkg into dir.
	Checkout(ctx context.Context, dir string, project string, pkg string) error

	// Update refreshes an existing checkout at packageDir.
	Update(ctx context.Context, packageDir string) error

	// BuildInfo retrieves the build-dependency report for the descriptor
	// in packageDir against repository/arch.
	BuildInfo(ctx context.Context, packageDir string, repository string, arch string, descriptor string) ([]byte, error)

	// Build runs a local image build of descriptor in packageDir.  The
	// captured output is returned even when the build fails so callers
	// can include it in diagnostics.
	Build(ctx context.Context, packageDir string, repository string, arch string, descriptor string) (ExecResult, error)
}
