package encoding

import (
	"errors"
	"testing"

	"github.com/speedgraph/psp/errs"
	"github.com/stretchr/testify/require"
)

func TestVarInt16_RoundTripAndLength(t *testing.T) {
	tests := []struct {
		value uint16
		n     int
	}{
		{0, 1},
		{0x7F, 1},
		{0x80, 2},
		{0x3FFF, 2},
		{0x4000, 3},
		{0xFFFF, 3},
	}
	for _, tt := range tests {
		buf := AppendVarInt16(nil, tt.value)
		require.Len(t, buf, tt.n)
		require.Equal(t, tt.n, VarInt16Len(tt.value))

		decoded, n, err := DecodeVarInt16(buf)
		require.NoError(t, err)
		require.Equal(t, tt.value, decoded)
		require.Equal(t, tt.n, n)
	}
}

func TestVarInt16_RoundTripExhaustive(t *testing.T) {
	for v := 0; v <= 0xFFFF; v += 37 {
		buf := AppendVarInt16(nil, uint16(v))
		decoded, n, err := DecodeVarInt16(buf)
		require.NoError(t, err)
		require.Equal(t, uint16(v), decoded)
		require.Equal(t, len(buf), n)
	}
}

func TestVarInt16_TrailingBytesIgnored(t *testing.T) {
	buf := AppendVarInt16(nil, 300)
	buf = append(buf, 0xFF, 0xFF)
	decoded, n, err := DecodeVarInt16(buf)
	require.NoError(t, err)
	require.Equal(t, uint16(300), decoded)
	require.Equal(t, 2, n)
}

func TestVarInt16_TruncatedStream(t *testing.T) {
	_, _, err := DecodeVarInt16([]byte{0x80})
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrTruncatedProfile))
}

func TestVarInt16_EmptyStream(t *testing.T) {
	_, _, err := DecodeVarInt16(nil)
	require.ErrorIs(t, err, errs.ErrTruncatedProfile)
}

func TestVarInt16_TooManyContinuationBytes(t *testing.T) {
	_, _, err := DecodeVarInt16([]byte{0x80, 0x80, 0x80, 0x01})
	require.ErrorIs(t, err, errs.ErrTruncatedVarInt)
}
