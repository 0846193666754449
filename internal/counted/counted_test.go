package counted_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lucasgdosr/deque/v2/internal/counted"
	"github.com/lucasgdosr/deque/v2/internal/faultinject"
)

func TestLifecycle(t *testing.T) {
	reg := counted.NewRegistry(nil)
	v := reg.New(1)
	require.Equal(t, 1, reg.Live())

	c, err := v.Copy()
	require.NoError(t, err)
	require.Equal(t, 2, reg.Live())
	require.Equal(t, v.N, c.N)
	require.NotEqual(t, v, c)

	v.Destroy()
	c.Destroy()
	require.Zero(t, reg.Live())
	require.NoError(t, reg.Err())
	require.Equal(t, "1", v.String())
}

func TestDoubleDestroy(t *testing.T) {
	reg := counted.NewRegistry(nil)
	v := reg.New(7)
	v.Destroy()
	v.Destroy()
	require.Error(t, reg.Err())
	require.Zero(t, reg.Live())
}

func TestZeroValue(t *testing.T) {
	var v counted.Value
	c, err := v.Copy()
	require.NoError(t, err)
	require.Equal(t, v, c)
	v.Destroy()
}

func TestCopyFails(t *testing.T) {
	reg := counted.NewRegistry(faultinject.At(0))
	v := reg.New(1)
	_, err := v.Copy()
	require.ErrorIs(t, err, faultinject.ErrInjected)
	require.Equal(t, 1, reg.Live())
	v.Destroy()
}

func TestNs(t *testing.T) {
	reg := counted.NewRegistry(nil)
	require.Equal(t, []int{3, 1}, counted.Ns([]counted.Value{reg.New(3), reg.New(1)}))
}
