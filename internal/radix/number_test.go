package radix

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"math/big"
	"strings"
	"testing"
)

func bigPow(base, exp int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(base), big.NewInt(exp), nil)
}

func Test_EncodeNumber_Zero(t *testing.T) {
	tests := []struct {
		preset   string
		expected string
	}{
		{URL64, "0"},
		{Web64, "~"},
		{Tilde64, "0"},
	}
	for _, tc := range tests {
		t.Run(tc.preset, func(t *testing.T) {
			a, err := Preset(tc.preset)
			require.NoError(t, err)

			encoded := a.EncodeNumber(big.NewInt(0))
			require.Equal(t, tc.expected, encoded)

			decoded, err := a.DecodeNumber(encoded)
			require.NoError(t, err)
			require.Equal(t, 0, decoded.Sign())
		})
	}
}

func Test_EncodeNumber_Url64(t *testing.T) {
	a := Default()
	tests := []struct {
		value    uint64
		expected string
	}{
		{1, "1"},
		{9, "9"},
		{10, "A"},
		{35, "Z"},
		{36, "a"},
		{61, "z"},
		{62, "-"},
		{63, "_"},
		{64, "10"},
		{65, "11"},
		{4095, "__"},
		{4096, "100"},
	}
	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			require.Equal(t, tc.expected, a.EncodeUint64(tc.value))

			decoded, err := a.DecodeUint64(tc.expected)
			require.NoError(t, err)
			require.Equal(t, tc.value, decoded)
		})
	}
}

func Test_EncodeNumber_64(t *testing.T) {
	a := Default()
	encoded := a.EncodeNumber(big.NewInt(64))
	require.Len(t, encoded, 2)

	runes := []rune(encoded)
	most, err := a.ValueOf(runes[0])
	require.NoError(t, err)
	least, err := a.ValueOf(runes[1])
	require.NoError(t, err)
	require.Equal(t, 1, most)
	require.Equal(t, 0, least)
}

func Test_DecodeNumber_10(t *testing.T) {
	v, err := Default().DecodeNumber("10")
	require.NoError(t, err)
	require.Equal(t, int64(64), v.Int64())
}

func Test_EncodeNumber_ZeroNeverEmpty(t *testing.T) {
	for _, name := range PresetNames() {
		a, err := Preset(name)
		require.NoError(t, err)
		require.NotEmpty(t, a.EncodeNumber(big.NewInt(0)), "zero must have a spelling in %v", a)
		for base := 2; base <= a.Radix(); base++ {
			encoded, err := a.EncodeNumberBase(big.NewInt(0), base)
			require.NoError(t, err)
			require.Len(t, []rune(encoded), 1, "zero in base %d with %v", base, a)
		}
	}
}

func Test_DecodeNumber_Empty(t *testing.T) {
	for _, name := range PresetNames() {
		a, err := Preset(name)
		require.NoError(t, err)
		v, err := a.DecodeNumber("")
		require.NoError(t, err)
		require.Equal(t, 0, v.Sign(), "empty string should decode to zero for %v", a)
	}
}

func Test_NumberRoundTrip(t *testing.T) {
	values := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(63),
		big.NewInt(64),
		big.NewInt(1234567890123456789),
		new(big.Int).SetUint64(^uint64(0)),
		new(big.Int).Add(new(big.Int).SetUint64(^uint64(0)), big.NewInt(1)),
		bigPow(2, 200),
		new(big.Int).Sub(bigPow(64, 40), big.NewInt(1)),
		bigPow(10, 100),
	}

	for _, name := range PresetNames() {
		a, err := Preset(name)
		require.NoError(t, err)
		for _, v := range values {
			encoded := a.EncodeNumber(v)
			decoded, err := a.DecodeNumber(encoded)
			require.NoError(t, err, "Failed to decode %q (from %v) with %v", encoded, v, a)
			require.Equal(t, 0, v.Cmp(decoded), "Round trip failed for %v -> %q -> %v with %v", v, encoded, decoded, a)
		}
	}
}

func Test_EncodeNumber_Big(t *testing.T) {
	a := Default()
	require.Equal(t, "1"+strings.Repeat("0", 40), a.EncodeNumber(bigPow(64, 40)))
	require.Equal(t, strings.Repeat("_", 40), a.EncodeNumber(new(big.Int).Sub(bigPow(64, 40), big.NewInt(1))))
}

func Test_EncodeNumber_DigitCount(t *testing.T) {
	a := Default()
	for k := int64(1); k <= 30; k++ {
		p := bigPow(64, k)
		require.Len(t, a.EncodeNumber(p), int(k+1), "64^%d", k)
		require.Len(t, a.EncodeNumber(new(big.Int).Sub(p, big.NewInt(1))), int(k), "64^%d - 1", k)
	}
}

func Test_EncodeNumber_Negative(t *testing.T) {
	require.Panics(t, func() {
		Default().EncodeNumber(big.NewInt(-1))
	})
	require.Panics(t, func() {
		Default().EncodeNumber(nil)
	})
}

func Test_DecodeNumber_InvalidSymbol(t *testing.T) {
	a := Default()
	for _, input := range []string{"$", "$12", "12$4", "123$", "12.", "ü"} {
		_, err := a.DecodeNumber(input)
		require.Error(t, err, "Expected %q to fail", input)
		require.True(t, errors.Is(err, ErrInvalidSymbol), "Unexpected error for %q: %v", input, err)
	}

	_, err := a.DecodeNumber("12$4")
	var e *Error
	require.True(t, errors.As(err, &e))
	require.Equal(t, '$', e.Symbol)
	require.Equal(t, 2, e.Pos)
	require.Contains(t, e.Error(), "position 2")
}

func Test_DecodeNumber_PadOnlyIsZeroForPadStyle(t *testing.T) {
	a, err := Preset(Web64)
	require.NoError(t, err)

	_, err = a.DecodeNumber("B~")
	require.True(t, errors.Is(err, ErrInvalidSymbol))

	_, err = Default().DecodeNumber(".")
	require.True(t, errors.Is(err, ErrInvalidSymbol))
}

func Test_DecodeUint64_Overflow(t *testing.T) {
	a := Default()
	encoded := a.EncodeNumber(bigPow(2, 64))
	_, err := a.DecodeUint64(encoded)
	require.True(t, errors.Is(err, ErrOverflow))
	require.Equal(t, KindOverflow, KindOf(err))
}

func Test_ParseNumber(t *testing.T) {
	v, err := ParseNumber(" 18446744073709551616 ")
	require.NoError(t, err)
	require.Equal(t, 0, bigPow(2, 64).Cmp(v))

	for _, input := range []string{"", "-1", "12a", "0x10", "1.5"} {
		_, err := ParseNumber(input)
		require.Error(t, err, "Expected %q to fail", input)
	}
}
