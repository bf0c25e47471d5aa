package ports

import "context"

// SigningKeyPort manages the one-time signing-key generation inside the
// build chroot.  Ensure is idempotent: it reports created=false without
// side effects when the key already exists.  A generation failure is
// fatal to the whole run.
type SigningKeyPort interface {
	Ensure(ctx context.Context, buildRoot string) (created bool, err error)
}
