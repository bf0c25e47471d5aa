package adapters

import (
	"context"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"kiwiforge/internal/ports"
	"kiwiforge/internal/shared"
)

const signingKeyUserID = "Image Signing Key <image-builder@localhost>"

// SigningKeyAdapter generates the image signing key inside the build
// chroot, once.  Presence of the gpg keyring under the chroot's root
// home is the "already done" marker; generation runs via chroot and is
// fatal on failure.
type SigningKeyAdapter struct {
	Executor ports.ExecutorPort
}

func NewSigningKeyAdapter(executor ports.ExecutorPort) SigningKeyAdapter {
	return SigningKeyAdapter{Executor: executor}
}

func (a SigningKeyAdapter) Ensure(ctx context.Context, buildRoot string) (bool, error) {
	if a.keyExists(buildRoot) {
		return false, nil
	}
	args := []string{
		buildRoot,
		"/usr/bin/gpg", "--batch", "--passphrase", "",
		"--quick-generate-key", signingKeyUserID, "rsa2048", "sign", "never",
	}
	result, err := a.Executor.Run(ctx, ports.Command{Name: "chroot", Args: args})
	if err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("signing key generation failed").
			WithCause(shared.CommandError([]byte(result.Stderr), err))
	}
	if !a.keyExists(buildRoot) {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("signing key generation left no keyring in the build root")
	}
	return true, nil
}

func (a SigningKeyAdapter) keyExists(buildRoot string) bool {
	for _, keyring := range []string{"pubring.kbx", "pubring.gpg"} {
		if _, err := os.Stat(filepath.Join(buildRoot, "root", ".gnupg", keyring)); err == nil {
			return true
		}
	}
	return false
}

var _ ports.SigningKeyPort = SigningKeyAdapter{}
