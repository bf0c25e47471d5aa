package adapters

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"kiwiforge/internal/ports"
	"kiwiforge/internal/shared"
)

const defaultOscBinary = "osc"

// OscAdapter drives the build-service command-line client.  API
// endpoint and credentials come from the client's own ~/.config/osc
// configuration; this adapter only sequences invocations.
type OscAdapter struct {
	Executor ports.ExecutorPort
	Binary   string
}

func NewOscAdapter(executor ports.ExecutorPort) OscAdapter {
	return OscAdapter{Executor: executor, Binary: defaultOscBinary}
}

func (a OscAdapter) Checkout(ctx context.Context, dir string, project string, pkg string) error {
	_, err := a.run(ctx, dir, "checkout", project, pkg)
	return err
}

func (a OscAdapter) Update(ctx context.Context, packageDir string) error {
	_, err := a.run(ctx, packageDir, "update")
	return err
}

func (a OscAdapter) BuildInfo(ctx context.Context, packageDir string, repository string, arch string, descriptor string) ([]byte, error) {
	result, err := a.run(ctx, packageDir, "buildinfo", repository, arch, descriptor)
	if err != nil {
		return nil, err
	}
	report := strings.TrimSpace(result.Stdout)
	if report == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("build service returned an empty build-info report")
	}
	return []byte(result.Stdout), nil
}

func (a OscAdapter) Build(ctx context.Context, packageDir string, repository string, arch string, descriptor string) (ports.ExecResult, error) {
	return a.run(ctx, packageDir,
		"build", "--local-package", "--trust-all-projects", "--no-verify",
		repository, arch, descriptor)
}

func (a OscAdapter) run(ctx context.Context, dir string, args ...string) (ports.ExecResult, error) {
	binary := a.Binary
	if strings.TrimSpace(binary) == "" {
		binary = defaultOscBinary
	}
	result, err := a.Executor.Run(ctx, ports.Command{Name: binary, Args: args, Dir: dir})
	if err != nil {
		return result, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(shared.CommandLine(binary, args) + " failed").
			WithCause(shared.CommandError([]byte(result.Stderr), err))
	}
	return result, nil
}

var _ ports.BuildServicePort = OscAdapter{}
