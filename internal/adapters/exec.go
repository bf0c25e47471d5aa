package adapters

import (
	"context"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"kiwiforge/internal/ports"
)

// ExecAdapter is the real subprocess executor.  It captures stdout and
// stderr separately so failures can be reported with full command
// output.
type ExecAdapter struct{}

func NewExecAdapter() ExecAdapter {
	return ExecAdapter{}
}

func (a ExecAdapter) Run(ctx context.Context, command ports.Command) (ports.ExecResult, error) {
	if strings.TrimSpace(command.Name) == "" {
		return ports.ExecResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("command name is empty")
	}
	cmd := exec.CommandContext(ctx, command.Name, command.Args...)
	cmd.Dir = command.Dir
	var stdout strings.Builder
	var stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	result := ports.ExecResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		return result, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("command failed").
			WithCause(err)
	}
	return result, nil
}

var _ ports.ExecutorPort = ExecAdapter{}
