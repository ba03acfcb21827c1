package compress

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"None": NewNoopCodec(),
		"Zlib": NewZlibCodec(),
		"Zstd": NewZstdCodec(),
		"S2":   NewS2Codec(),
		"LZ4":  NewLZ4Codec(),
	}
}

func TestBackend_String(t *testing.T) {
	tests := []struct {
		backend  Backend
		expected string
	}{
		{BackendNone, "none"},
		{BackendZlib, "zlib"},
		{BackendZstd, "zstd"},
		{BackendS2, "s2"},
		{BackendLZ4, "lz4"},
		{Backend(99), "unknown"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, tt.backend.String())
	}
}

func TestNewCodec_AllBackends(t *testing.T) {
	for _, b := range AllBackends() {
		codec, err := NewCodec(b)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	codec, err := NewCodec(BackendNone)
	require.NoError(t, err)
	require.IsType(t, NoopCodec{}, codec)
}

func TestNewCodec_UnsupportedBackend(t *testing.T) {
	_, err := NewCodec(Backend(99))
	require.Error(t, err)
}

func TestCompressionStats_Calculations(t *testing.T) {
	tests := []struct {
		name            string
		stats           CompressionStats
		expectedRatio   float64
		expectedSavings float64
	}{
		{
			name:            "good compression",
			stats:           CompressionStats{Algorithm: "zlib", OriginalSize: 1000, CompressedSize: 300},
			expectedRatio:   0.3,
			expectedSavings: 70.0,
		},
		{
			name:            "no benefit",
			stats:           CompressionStats{Algorithm: "none", OriginalSize: 500, CompressedSize: 500},
			expectedRatio:   1.0,
			expectedSavings: 0.0,
		},
		{
			name:            "expansion",
			stats:           CompressionStats{Algorithm: "s2", OriginalSize: 100, CompressedSize: 120},
			expectedRatio:   1.2,
			expectedSavings: -20.0,
		},
		{
			name:            "empty original",
			stats:           CompressionStats{Algorithm: "lz4", OriginalSize: 0, CompressedSize: 100},
			expectedRatio:   0,
			expectedSavings: 100.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.expectedRatio, tt.stats.CompressionRatio(), 0.001)
			require.InDelta(t, tt.expectedSavings, tt.stats.SpaceSavings(), 0.001)
		})
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{"small_text", []byte("Hello, World!")},
		{"repeated_pattern", bytes.Repeat([]byte("ABCD"), 100)},
		{"binary_data", []byte{0x00, 0x01, 0x02, 0x03, 0xFF, 0xFE, 0xFD, 0xFC}},
		{"single_byte", []byte{0x42}},
		{"psp_profile_like", bytes.Repeat([]byte{0x2A, 0x2B, 0x01, 0x00}, 336)},
		{"highly_compressible", make([]byte, 64*1024)},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					compressed, err := codec.Compress(tc.data)
					require.NoError(t, err)

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, tc.data, decompressed)
				})
			}
		})
	}
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestAllCodecs_InterfaceCompliance(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			var _ Codec = codec
			require.NotNil(t, codec)
		})
	}
}

func TestZlibCodec_InvalidData(t *testing.T) {
	_, err := NewZlibCodec().Decompress([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	require.Error(t, err)
}

func TestNoopCodec_PassesThroughSameSlice(t *testing.T) {
	data := []byte("unchanged")
	codec := NewNoopCodec()

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &compressed[0])

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Same(t, &compressed[0], &decompressed[0])
}

func TestAllCodecs_ProgressiveDataSizes(t *testing.T) {
	sizes := []int{1, 10, 100, 336, 2048, 16384}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			for _, size := range sizes {
				t.Run(fmt.Sprintf("%d_bytes", size), func(t *testing.T) {
					data := make([]byte, size)
					for i := range data {
						data[i] = byte(i % 256)
					}

					compressed, err := codec.Compress(data)
					require.NoError(t, err)

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, data, decompressed)
				})
			}
		})
	}
}
