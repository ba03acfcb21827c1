package section

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeader_EncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		resolution int
		bitset     uint8
	}{
		{"all seven days, 240 min", 240, 0x7F},
		{"missing days", 240, 0x5B},
		{"one bin per day", 1440, 0x01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Header{TimeResolutionMinutes: tt.resolution, DaysBitSet: tt.bitset}
			encoded, err := h.Encode(nil)
			require.NoError(t, err)
			require.Len(t, encoded, HeaderSize)

			decoded, n, err := DecodeHeader(encoded)
			require.NoError(t, err)
			require.Equal(t, HeaderSize, n)
			require.Equal(t, h, decoded)
		})
	}
}

func TestHeader_FullDayResolutionEncodesAsZero(t *testing.T) {
	h := Header{TimeResolutionMinutes: 1440, DaysBitSet: 0x7F}
	encoded, err := h.Encode(nil)
	require.NoError(t, err)
	require.Equal(t, byte(0), encoded[0])
}

func TestHeader_240MinutesScenario(t *testing.T) {
	h := Header{TimeResolutionMinutes: 240, DaysBitSet: 0x7F}
	encoded, err := h.Encode(nil)
	require.NoError(t, err)
	require.Equal(t, byte(0xF0), encoded[0])
	require.Equal(t, byte(0x7F), encoded[1])
}

func TestHeader_ResolutionTooLargeFails(t *testing.T) {
	h := Header{TimeResolutionMinutes: 1439, DaysBitSet: 0x01}
	_, err := h.Encode(nil)
	require.Error(t, err)
}

func TestHeader_IsRelevantDay(t *testing.T) {
	h := Header{DaysBitSet: 0x5B} // 0b01011011 -> days 0,1,3,4,6
	for day, want := range map[int]bool{0: true, 1: true, 2: false, 3: true, 4: true, 5: false, 6: true} {
		require.Equal(t, want, h.IsRelevantDay(day), "day %d", day)
	}
}

func TestDecodeHeader_Truncated(t *testing.T) {
	_, _, err := DecodeHeader([]byte{0x01})
	require.Error(t, err)
}
