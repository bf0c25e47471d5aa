package adapters

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kiwiforge/internal/ports"
)

// fakeExecutor records commands and replays scripted results.
type fakeExecutor struct {
	commands []ports.Command
	results  []fakeResult
	onRun    func(cmd ports.Command)
}

type fakeResult struct {
	result ports.ExecResult
	err    error
}

func (f *fakeExecutor) Run(_ context.Context, cmd ports.Command) (ports.ExecResult, error) {
	f.commands = append(f.commands, cmd)
	if f.onRun != nil {
		f.onRun(cmd)
	}
	if len(f.results) == 0 {
		return ports.ExecResult{}, nil
	}
	next := f.results[0]
	f.results = f.results[1:]
	return next.result, next.err
}

func TestOscCheckout(t *testing.T) {
	executor := &fakeExecutor{}
	osc := NewOscAdapter(executor)

	require.NoError(t, osc.Checkout(t.Context(), "build", "home:images:live", "livecd-leap"))
	require.Len(t, executor.commands, 1)
	cmd := executor.commands[0]
	assert.Equal(t, "osc", cmd.Name)
	assert.Equal(t, []string{"checkout", "home:images:live", "livecd-leap"}, cmd.Args)
	assert.Equal(t, "build", cmd.Dir)
}

func TestOscUpdate(t *testing.T) {
	executor := &fakeExecutor{}
	osc := NewOscAdapter(executor)

	require.NoError(t, osc.Update(t.Context(), "build/prj/pkg"))
	require.Len(t, executor.commands, 1)
	assert.Equal(t, []string{"update"}, executor.commands[0].Args)
	assert.Equal(t, "build/prj/pkg", executor.commands[0].Dir)
}

func TestOscBuildInfo(t *testing.T) {
	executor := &fakeExecutor{results: []fakeResult{
		{result: ports.ExecResult{Stdout: "<buildinfo>\n</buildinfo>\n"}},
	}}
	osc := NewOscAdapter(executor)

	report, err := osc.BuildInfo(t.Context(), "build/prj/pkg", "images", "x86_64", "config.kiwi")
	require.NoError(t, err)
	assert.Equal(t, "<buildinfo>\n</buildinfo>\n", string(report))
	assert.Equal(t, []string{"buildinfo", "images", "x86_64", "config.kiwi"}, executor.commands[0].Args)
}

func TestOscBuildInfoEmptyOutput(t *testing.T) {
	executor := &fakeExecutor{results: []fakeResult{
		{result: ports.ExecResult{Stdout: "  \n"}},
	}}
	osc := NewOscAdapter(executor)

	_, err := osc.BuildInfo(t.Context(), "pkg", "images", "x86_64", "config.kiwi")
	require.Error(t, err)
}

func TestOscBuildArgs(t *testing.T) {
	executor := &fakeExecutor{}
	osc := NewOscAdapter(executor)

	_, err := osc.Build(t.Context(), "build/prj/pkg", "images", "x86_64", "config.generated.kiwi")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"build", "--local-package", "--trust-all-projects", "--no-verify",
		"images", "x86_64", "config.generated.kiwi",
	}, executor.commands[0].Args)
}

func TestOscBuildFailureKeepsOutput(t *testing.T) {
	executor := &fakeExecutor{results: []fakeResult{
		{
			result: ports.ExecResult{Stdout: "building", Stderr: "chroot broke"},
			err:    errors.New("exit status 1"),
		},
	}}
	osc := NewOscAdapter(executor)

	result, err := osc.Build(t.Context(), "pkg", "images", "x86_64", "config.kiwi")
	require.Error(t, err)
	assert.Equal(t, "building", result.Stdout)
	assert.Equal(t, "chroot broke", result.Stderr)
}

func TestOscCustomBinary(t *testing.T) {
	executor := &fakeExecutor{}
	osc := OscAdapter{Executor: executor, Binary: "osc-wrapper"}

	require.NoError(t, osc.Update(t.Context(), "pkg"))
	assert.Equal(t, "osc-wrapper", executor.commands[0].Name)
}
