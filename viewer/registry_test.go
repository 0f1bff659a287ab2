package viewer

import (
	"context"
	"errors"
	"testing"

	"dacti/hal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopViewer struct{}

func (nopViewer) Tick() error { return nil }

func nopModule(context.Context) (Module, error) {
	return ModuleFunc(func(context.Context, hal.HAL, hal.Surface) (Viewer, error) {
		return nopViewer{}, nil
	}), nil
}

func TestRegistryLoad(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("b", nopModule))
	require.NoError(t, r.Register("a", nopModule))

	assert.Equal(t, []string{"a", "b"}, r.Names())

	m, err := r.Load(context.Background(), "a")
	require.NoError(t, err)
	v, err := m.NewViewer(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.NoError(t, v.Tick())
}

func TestRegistryRegisterErrors(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("a", nopModule))

	assert.Error(t, r.Register("a", nopModule))
	assert.Error(t, r.Register("", nopModule))
	assert.Error(t, r.Register("c", nil))
}

func TestRegistryLoadErrors(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	require.NoError(t, r.Register("broken", func(context.Context) (Module, error) { return nil, boom }))
	require.NoError(t, r.Register("empty", func(context.Context) (Module, error) { return nil, nil }))

	_, err := r.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrModuleNotFound)

	_, err = r.Load(context.Background(), "broken")
	assert.ErrorIs(t, err, boom)

	_, err = r.Load(context.Background(), "empty")
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Load(ctx, "broken")
	assert.ErrorIs(t, err, context.Canceled)
}
