package encoding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZigZag16_KnownValues(t *testing.T) {
	tests := []struct {
		signed   int16
		unsigned uint16
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
		{math.MaxInt16, math.MaxUint16 - 1},
		{math.MinInt16, math.MaxUint16},
	}
	for _, tt := range tests {
		require.Equal(t, tt.unsigned, EncodeZigZag16(tt.signed))
		require.Equal(t, tt.signed, DecodeZigZag16(tt.unsigned))
	}
}

func TestZigZag16_RoundTripAllValues(t *testing.T) {
	for x := -32768; x <= 32767; x++ {
		signed := int16(x)
		u := EncodeZigZag16(signed)
		require.Equal(t, signed, DecodeZigZag16(u))
	}
}

func TestZigZag16_KeepsSmallMagnitudesSmall(t *testing.T) {
	for x := int16(-1023); x <= 1023; x++ {
		u := EncodeZigZag16(x)
		require.LessOrEqual(t, int(u), 2*int(absInt16(x))+1)
	}
}

func absInt16(x int16) int16 {
	if x < 0 {
		return -x
	}

	return x
}
