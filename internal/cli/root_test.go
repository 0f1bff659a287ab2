package cli

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"dacti/bootstrap"
	"dacti/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)
	reg, err := NewRegistry(cfg)
	require.NoError(t, err)

	cmd := NewRootCommand(cfg, reg)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), err
}

func TestHeadlessRunsFrames(t *testing.T) {
	snap := filepath.Join(t.TempDir(), "frame.png")
	out, err := runCLI(t, "--headless", "--hz", "1000", "--ticks", "3",
		"--width", "64", "--height", "48", "--snapshot", snap)
	require.NoError(t, err)

	assert.Contains(t, out, `bootstrap: loading module "triangle"`)
	assert.Contains(t, out, `triangle: bound to surface "viewer" (64x48)`)
	assert.Contains(t, out, "loop: host stopped after 3 frames")

	f, err := os.Open(snap)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	r, g, b, _ := img.At(63, 47).RGBA()
	assert.Equal(t, [3]uint32{0, 0xFFFF, 0}, [3]uint32{r, g, b})
	r, g, b, _ = img.At(32, 24).RGBA()
	assert.Equal(t, [3]uint32{0xFFFF, 0, 0}, [3]uint32{r, g, b})
}

func TestHeadlessMissingCanvas(t *testing.T) {
	snap := filepath.Join(t.TempDir(), "frame.png")
	out, err := runCLI(t, "--headless", "--hz", "1000", "--ticks", "3",
		"--width", "320", "--height", "240", "--canvas", "nope", "--snapshot", snap)

	require.ErrorIs(t, err, bootstrap.ErrConstruction)
	assert.NotContains(t, out, "triangle: bound")
	assert.NotContains(t, out, "loop:")

	f, err := os.Open(snap)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	r, g, b, _ := img.At(0, 239).RGBA()
	assert.Equal(t, [3]uint32{0x2020, 0x2020, 0x2020}, [3]uint32{r, g, b}, "failure screen background")
}

func TestHeadlessUnknownModule(t *testing.T) {
	_, err := runCLI(t, "--headless", "--hz", "1000", "--ticks", "1", "--module", "nope")
	require.ErrorIs(t, err, bootstrap.ErrModuleUnavailable)
}

func TestInvalidConfig(t *testing.T) {
	_, err := runCLI(t, "--headless", "--width", "0")
	require.Error(t, err)
}

func TestBadPolicyFlag(t *testing.T) {
	_, err := runCLI(t, "--headless", "--on-frame-error", "retry")
	require.Error(t, err)
}

func TestModulesCommand(t *testing.T) {
	out, err := runCLI(t, "modules")
	require.NoError(t, err)
	assert.Equal(t, "triangle\n", out)
}
