package armor

import (
	"bytes"
	"github.com/bokysan/radixace/internal/commands"
	"github.com/bokysan/radixace/internal/util/enc"
	"github.com/stretchr/testify/require"
	"testing"
)

func setup(t *testing.T, input []byte) *bytes.Buffer {
	oldOutput, oldInput := commands.Output, commands.Input
	t.Cleanup(func() {
		commands.Output, commands.Input = oldOutput, oldInput
	})
	buf := &bytes.Buffer{}
	commands.Output = buf
	commands.Input = bytes.NewReader(input)
	return buf
}

func Test_Encode(t *testing.T) {
	buf := setup(t, []byte("Hello"))
	require.NoError(t, (&EncodeCommand{codecOption{Codec: "base64"}}).Execute(nil))
	require.Equal(t, "sgvSBg7\n", buf.String())

	buf = setup(t, []byte("Hello"))
	require.NoError(t, (&EncodeCommand{codecOption{Codec: "raw"}}).Execute(nil))
	require.Equal(t, "Hello\n", buf.String())
}

func Test_RoundTrip(t *testing.T) {
	data := []byte{0, 0, 1, 2, 3, 0xfe, 0xff, '\n', 'a', 'b', 'c'}
	for _, name := range enc.Names() {
		t.Run(name, func(t *testing.T) {
			encoded := setup(t, data)
			require.NoError(t, (&EncodeCommand{codecOption{Codec: name}}).Execute(nil))

			decoded := setup(t, encoded.Bytes())
			require.NoError(t, (&DecodeCommand{codecOption{Codec: name}}).Execute(nil))
			require.Equal(t, data, decoded.Bytes())
		})
	}
}

func Test_UnknownCodec(t *testing.T) {
	setup(t, []byte("x"))
	require.Error(t, (&EncodeCommand{codecOption{Codec: "rot13"}}).Execute(nil))
	require.Error(t, (&DecodeCommand{codecOption{Codec: "rot13"}}).Execute(nil))
}

func Test_DecodeInvalid(t *testing.T) {
	setup(t, []byte("!!!!"))
	require.Error(t, (&DecodeCommand{codecOption{Codec: "base32"}}).Execute(nil))
}
