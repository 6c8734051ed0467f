package actions

import (
	"sync/atomic"

	"github.com/reusee/pal/logs"
)

// Defaults are the built-in action declarations.
type Defaults []Decl

// LoadUserDecls reads the user's action declarations from configuration.
// Called again on every rebuild so config edits are picked up.
type LoadUserDecls func() ([]Decl, error)

// ConfigPaths are the files whose changes trigger a registry rebuild.
type ConfigPaths []string

type GetRegistry func() *Registry

type RebuildRegistry func() error

type RegistryHolder struct {
	ptr     *atomic.Pointer[Registry]
	rebuild func() error
}

func (Module) RegistryHolder(
	defaults Defaults,
	loadUserDecls LoadUserDecls,
	logger logs.Logger,
) RegistryHolder {
	ptr := new(atomic.Pointer[Registry])

	rebuild := func() error {
		userDecls, err := loadUserDecls()
		if err != nil {
			return err
		}
		ptr.Store(Build(defaults, userDecls, logger))
		return nil
	}

	if err := rebuild(); err != nil {
		// defaults still work when user config is broken
		logger.Error("load user actions", "error", err)
		ptr.Store(Build(defaults, nil, logger))
	}

	return RegistryHolder{
		ptr:     ptr,
		rebuild: rebuild,
	}
}

func (Module) GetRegistry(
	holder RegistryHolder,
) GetRegistry {
	return func() *Registry {
		return holder.ptr.Load()
	}
}

func (Module) RebuildRegistry(
	holder RegistryHolder,
) RebuildRegistry {
	return RebuildRegistry(holder.rebuild)
}
