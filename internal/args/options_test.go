package args

import (
	"github.com/bokysan/radixace/internal/radix"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_AlphabetOptions_Preset(t *testing.T) {
	o := AlphabetOptions{}
	a, err := o.Build()
	require.NoError(t, err)
	require.Same(t, radix.Default(), a)

	o = AlphabetOptions{Preset: radix.Web64}
	a, err = o.Build()
	require.NoError(t, err)
	require.Equal(t, radix.Web64, a.Name())

	o = AlphabetOptions{Preset: "nope"}
	_, err = o.Build()
	require.Error(t, err)
}

func Test_AlphabetOptions_Overrides(t *testing.T) {
	o := AlphabetOptions{Preset: radix.URL64, Zero: "pad"}
	a, err := o.Build()
	require.NoError(t, err)
	require.Equal(t, radix.ZeroPad, a.Zero())
	require.Equal(t, radix.Default().Symbols(), a.Symbols())
	pad, ok := a.Pad()
	require.True(t, ok)
	require.Equal(t, '.', pad)

	o = AlphabetOptions{Symbols: "0123456789abcdef", Pad: "="}
	a, err = o.Build()
	require.NoError(t, err)
	require.Equal(t, "custom", a.Name())
	require.Equal(t, 16, a.Radix())
	require.Equal(t, "ff", a.EncodeUint64(255))
}

func Test_AlphabetOptions_Invalid(t *testing.T) {
	for _, o := range []AlphabetOptions{
		{Symbols: "0123456789", Pad: "=="},
		{Symbols: "00"},
		{Symbols: "01", Zero: "pad", Pad: "1"},
		{Zero: "nothing"},
	} {
		_, err := o.Build()
		require.Error(t, err, "Expected %+v to fail", o)
	}
}
