package number

import (
	"bytes"
	"github.com/bokysan/radixace/internal/args"
	"github.com/bokysan/radixace/internal/commands"
	"github.com/bokysan/radixace/internal/radix"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func setup(t *testing.T, input string, opts args.AlphabetOptions) *bytes.Buffer {
	oldOutput, oldInput, oldAlphabet := commands.Output, commands.Input, args.Alphabet
	t.Cleanup(func() {
		commands.Output, commands.Input, args.Alphabet = oldOutput, oldInput, oldAlphabet
	})
	buf := &bytes.Buffer{}
	commands.Output = buf
	commands.Input = strings.NewReader(input)
	args.Alphabet = opts
	return buf
}

func Test_Encode(t *testing.T) {
	buf := setup(t, "", args.AlphabetOptions{Preset: radix.URL64})
	require.NoError(t, (&EncodeCommand{}).Execute([]string{"64", "0", "4095", "18446744073709551616"}))
	require.Equal(t, "10\n0\n__\n"+"G0000000000\n", buf.String())
}

func Test_EncodeBase(t *testing.T) {
	buf := setup(t, "255\n\n256\n", args.AlphabetOptions{Preset: radix.URL64})
	require.NoError(t, (&EncodeCommand{Base: 16}).Execute(nil))
	require.Equal(t, "FF\n100\n", buf.String())
}

func Test_EncodeZeroStyles(t *testing.T) {
	buf := setup(t, "", args.AlphabetOptions{Preset: radix.Web64})
	require.NoError(t, (&EncodeCommand{}).Execute([]string{"0"}))
	require.Equal(t, "~\n", buf.String())

	buf = setup(t, "", args.AlphabetOptions{Preset: radix.URL64, Zero: "pad"})
	require.NoError(t, (&EncodeCommand{}).Execute([]string{"0"}))
	require.Equal(t, ".\n", buf.String())

	_, err := (&args.AlphabetOptions{Preset: radix.URL64, Zero: "empty"}).Build()
	require.Error(t, err)
}

func Test_ZeroSurvivesPipe(t *testing.T) {
	for _, preset := range radix.PresetNames() {
		t.Run(preset, func(t *testing.T) {
			encoded := setup(t, "", args.AlphabetOptions{Preset: preset})
			require.NoError(t, (&EncodeCommand{}).Execute([]string{"0", "7", "0"}))

			decoded := setup(t, encoded.String(), args.AlphabetOptions{Preset: preset})
			require.NoError(t, (&DecodeCommand{}).Execute(nil))
			require.Equal(t, "0\n7\n0\n", decoded.String())
		})
	}
}

func Test_EncodeInvalid(t *testing.T) {
	setup(t, "", args.AlphabetOptions{Preset: radix.URL64})
	require.Error(t, (&EncodeCommand{}).Execute([]string{"-5"}))

	err := (&EncodeCommand{Base: 65}).Execute([]string{"5"})
	require.True(t, errors.Is(err, radix.ErrInvalidBase), "Unexpected error: %v", err)
}

func Test_Decode(t *testing.T) {
	buf := setup(t, "10\n__\n", args.AlphabetOptions{Preset: radix.URL64})
	require.NoError(t, (&DecodeCommand{}).Execute(nil))
	require.Equal(t, "64\n4095\n", buf.String())

	buf = setup(t, "", args.AlphabetOptions{Preset: radix.URL64})
	require.NoError(t, (&DecodeCommand{Base: 2}).Execute([]string{"101"}))
	require.Equal(t, "5\n", buf.String())
}

func Test_DecodeErrors(t *testing.T) {
	setup(t, "", args.AlphabetOptions{Preset: radix.URL64})

	err := (&DecodeCommand{}).Execute([]string{"12$4"})
	require.True(t, errors.Is(err, radix.ErrInvalidSymbol), "Unexpected error: %v", err)
	require.Contains(t, err.Error(), "12$4")

	err = (&DecodeCommand{Base: 16}).Execute([]string{"FG"})
	require.True(t, errors.Is(err, radix.ErrDigitOutOfRange), "Unexpected error: %v", err)
}

func Test_InvalidAlphabet(t *testing.T) {
	setup(t, "", args.AlphabetOptions{Symbols: "aa"})
	err := (&EncodeCommand{}).Execute([]string{"1"})
	require.True(t, errors.Is(err, radix.ErrInvalidAlphabet), "Unexpected error: %v", err)
}
