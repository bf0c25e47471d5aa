package ports

import "context"

// Command is one external invocation: program name, arguments, and an
// optional working directory.
type Command struct {
	Name string
	Args []string
	Dir  string
}

// ExecResult carries the captured output of a finished command.
type ExecResult struct {
	Stdout string
	Stderr string
}

// ExecutorPort runs external commands and captures their output.  A
// non-zero exit is returned as an error alongside whatever output the
// command produced.  Orchestration code is tested against a fake
// implementation of this interface.
type ExecutorPort interface {
	Run(ctx context.Context, cmd Command) (ExecResult, error)
}
