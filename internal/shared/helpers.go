// Package shared provides common utility functions used across multiple
// packages in the kiwiforge codebase.
package shared

import (
	"fmt"
	"strings"
)

const obsScheme = "obs://"

// SourcePath renders the locally resolved source location for a
// build-service (project, repository) pair.  The obs scheme tells the
// build client to resolve the repository through its own configured API
// endpoint and credentials.
func SourcePath(project string, repository string) string {
	return obsScheme + project + "/" + repository
}

// CommandLine renders a command and its arguments the way a shell
// invocation would look, for log and error output.
func CommandLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}
