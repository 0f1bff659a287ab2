//go:build !cgo && !js

package hal

import "errors"

// WindowConfig controls the windowed host runner.
type WindowConfig struct {
	Title string
	Scale int
	TPS   int
	Hold  bool
	Host  HostConfig
}

func RunWindow(_ WindowConfig, _ func(HAL, Scheduler) error) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
