// Package viewer defines the contract between the bootstrap and a
// visualization module, and a registry modules are loaded from.
package viewer

import (
	"context"
	"errors"

	"dacti/hal"
)

var (
	// ErrModuleNotFound is returned by Load for an unregistered module name.
	ErrModuleNotFound = errors.New("viewer module not found")

	// ErrSurfaceUnusable is returned by modules that cannot render into the
	// surface they were given.
	ErrSurfaceUnusable = errors.New("surface unusable")
)

// Viewer is a constructed viewer instance bound to one surface.
type Viewer interface {
	// Tick performs one unit of rendering/simulation work.
	Tick() error
}

// Module constructs viewers.
type Module interface {
	NewViewer(ctx context.Context, h hal.HAL, s hal.Surface) (Viewer, error)
}

// ModuleFunc adapts a function to Module.
type ModuleFunc func(ctx context.Context, h hal.HAL, s hal.Surface) (Viewer, error)

func (f ModuleFunc) NewViewer(ctx context.Context, h hal.HAL, s hal.Surface) (Viewer, error) {
	return f(ctx, h, s)
}

// Loader makes a named module available.
type Loader interface {
	Load(ctx context.Context, name string) (Module, error)
}
