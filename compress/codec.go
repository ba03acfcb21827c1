// Package compress provides the pluggable compression codecs used by the
// psp pipeline.
//
// BlobCodec always selects the zlib codec for the public wire format
// (matching the RFC 1950 zlib stream the original PSP converter produces)
// or the no-op codec when its internal testing toggle disables
// compression. The LZ4, S2, and Zstd codecs are never selected by
// BlobCodec's default; callers can opt into one via
// blob.WithCompressionCodec.
package compress

import "fmt"

// Compressor compresses a byte buffer.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte buffer previously produced by the
// matching Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression for a single algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats summarizes a single compress/decompress measurement,
// for reporting backend efficiency.
type CompressionStats struct {
	Algorithm      string
	OriginalSize   int
	CompressedSize int
}

// CompressionRatio returns CompressedSize/OriginalSize; values below 1.0
// indicate the data shrank.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100).
func (s CompressionStats) SpaceSavings() float64 {
	return (1 - s.CompressionRatio()) * 100
}

// Backend selects one of the compress package's registered Codec
// implementations.
type Backend int

const (
	BackendNone Backend = iota
	BackendZlib
	BackendZstd
	BackendS2
	BackendLZ4
)

func (b Backend) String() string {
	switch b {
	case BackendNone:
		return "none"
	case BackendZlib:
		return "zlib"
	case BackendZstd:
		return "zstd"
	case BackendS2:
		return "s2"
	case BackendLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// NewCodec is a factory function returning the Codec implementation for
// the given backend.
func NewCodec(backend Backend) (Codec, error) {
	switch backend {
	case BackendNone:
		return NewNoopCodec(), nil
	case BackendZlib:
		return NewZlibCodec(), nil
	case BackendZstd:
		return NewZstdCodec(), nil
	case BackendS2:
		return NewS2Codec(), nil
	case BackendLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("unsupported compression backend: %s", backend)
	}
}

// AllBackends lists the compressing backends registered with NewCodec
// (zlib, zstd, s2, lz4, in that order); BackendNone is not included.
func AllBackends() []Backend {
	return []Backend{BackendZlib, BackendZstd, BackendS2, BackendLZ4}
}
