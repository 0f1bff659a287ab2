package bootstrap

import "errors"

var (
	// ErrModuleUnavailable marks a startup that failed to load the viewer module.
	ErrModuleUnavailable = errors.New("viewer module unavailable")

	// ErrConstruction marks a startup that failed to construct the viewer.
	ErrConstruction = errors.New("viewer construction failed")

	// ErrFrame marks a per-frame update failure.
	ErrFrame = errors.New("viewer frame failed")

	// ErrAlreadyInitialized is returned by a second Initialize on one Sequencer.
	ErrAlreadyInitialized = errors.New("viewer already initialized")
)
