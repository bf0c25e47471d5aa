package app

import (
	"kiwiforge/internal/adapters"
	"kiwiforge/internal/ports"
)

type Service struct {
	SpecLoader   ports.ProductSpecPort
	Workspace    ports.WorkspacePort
	BuildService ports.BuildServicePort
	SigningKey   ports.SigningKeyPort

	// NewCache builds the cache adapter for a resolved cache directory.
	NewCache func(dir string) ports.BuildInfoCachePort
}

func NewService() Service {
	executor := adapters.NewExecAdapter()
	return Service{
		SpecLoader:   adapters.NewSpecFileAdapter(),
		Workspace:    adapters.NewWorkspaceAdapter(),
		BuildService: adapters.NewOscAdapter(executor),
		SigningKey:   adapters.NewSigningKeyAdapter(executor),
		NewCache: func(dir string) ports.BuildInfoCachePort {
			return adapters.NewFileCacheAdapter(dir)
		},
	}
}
