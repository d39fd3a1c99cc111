package enc

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_Base85Encoder(t *testing.T) {
	encoder := Base85Encoder{}
	encoded := encoder.Encode(encoderTest)
	require.NotContains(t, encoded, ".")
	require.NotContains(t, encoded, "\\")
	require.NotContains(t, encoded, "`")
	decoded, err := encoder.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, encoderTest, decoded)
}

func Test_Base85EncoderZeroes(t *testing.T) {
	encoder := Base85Encoder{}
	data := make([]byte, 16)
	encoded := encoder.Encode(data)
	require.Equal(t, "zzzz", encoded)
	decoded, err := encoder.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, data, decoded)
}
