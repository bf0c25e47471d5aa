package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"kiwiforge/internal/ports"
)

// FileCacheAdapter stores build-info reports as plain files under a
// cache directory, one file per key.  Entries are written once and
// reused until removed by hand; there is no locking, so concurrent
// runs against one cache directory are unsupported.
type FileCacheAdapter struct {
	Dir string
}

func NewFileCacheAdapter(dir string) FileCacheAdapter {
	return FileCacheAdapter{Dir: dir}
}

func (a FileCacheAdapter) Get(key string) ([]byte, bool, error) {
	path, err := a.path(key)
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read cache entry").
			WithCause(err)
	}
	return data, true, nil
}

func (a FileCacheAdapter) Put(key string, data []byte) error {
	path, err := a.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(a.Dir, 0o755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create cache directory").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write cache entry").
			WithCause(err)
	}
	return nil
}

func (a FileCacheAdapter) Remove(key string) error {
	path, err := a.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to remove cache entry").
			WithCause(err)
	}
	return nil
}

func (a FileCacheAdapter) Clear() error {
	if err := os.RemoveAll(a.Dir); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to clear cache directory").
			WithCause(err)
	}
	return nil
}

func (a FileCacheAdapter) path(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" || trimmed != filepath.Base(trimmed) {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("cache key must be a plain file name")
	}
	return filepath.Join(a.Dir, trimmed), nil
}

var _ ports.BuildInfoCachePort = FileCacheAdapter{}
