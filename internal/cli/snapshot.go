package cli

import (
	"fmt"
	"image/png"
	"os"

	"dacti/hal"
)

func writeSnapshot(h hal.HAL, path string) error {
	p := h.Surfaces().Primary()
	if p == nil {
		return fmt.Errorf("no surface to snapshot")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, hal.Snapshot(p.Framebuffer())); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	h.Logger().WriteLineString("snapshot: wrote " + path)
	return nil
}
