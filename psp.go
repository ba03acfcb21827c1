// Package psp provides a space-efficient binary format for storing a road
// segment's mean speeds and optional per-day 24-hour speed profiles.
//
// A PSP blob carries two mandatory mean speeds (working-day, weekend-day)
// for a single directed road segment, and optionally a 24-hour speed
// profile for each of up to seven days at a shared time resolution. The
// format favors compactness: speeds are quantized through a 10-bit
// value-dependent float, delta-coded between consecutive bins, zigzag- and
// varint-packed, then zlib-compressed.
//
// # Core Features
//
//   - Compact quantization: FlexFloat10 trades precision for width the way
//     a road segment's mean speed tolerates (finer resolution at low
//     speeds, coarser at high speeds)
//   - Cross-day delta coding: consecutive bins (including the boundary
//     between one day's last bin and the next relevant day's first) are
//     zigzag/varint-packed as differences of their FlexFloat10 codes
//   - Optional zlib compression of the per-day payload
//   - A 3-byte fast path for segments with no daily profile at all
//   - Pluggable compression backends for benchmarking (LZ4, Zstd, S2)
//
// # Basic Usage
//
// Encoding a segment with a full week of 4-hour-resolution profiles:
//
//	import "github.com/speedgraph/psp"
//
//	dayToSpeeds := make([][]float64, 7)
//	for day := range dayToSpeeds {
//	    dayToSpeeds[day] = []float64{60, 40, 45, 50, 45, 50}
//	}
//
//	data := psp.NewBlobDataFromArrays(81, 87, dayToSpeeds, 240)
//	encoded, err := psp.Encode(data)
//
// Decoding:
//
//	decoded, err := psp.Decode(encoded)
//	speeds, ok := decoded.DaySpeedsAsSlice(0) // Sunday
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the blob
// package, mirroring the most common use cases. For compression backend
// selection, decode memoization, or size estimation, use the blob,
// compress, and regression packages directly.
package psp

import (
	"github.com/speedgraph/psp/blob"
)

var defaultCodec = blob.NewBlobCodec()

// NewBlobData constructs a BlobData carrying only the two mean speeds and
// no daily profiles. See blob.NewBlobData.
func NewBlobData(weekDaySpeed, weekendSpeed uint8) blob.BlobData {
	return blob.NewBlobData(weekDaySpeed, weekendSpeed)
}

// NewBlobDataFromArrays constructs a BlobData from a dense day-to-speeds
// array, indexed 0 (Sunday) through 6 (Saturday). See
// blob.NewBlobDataFromArrays.
func NewBlobDataFromArrays(weekDaySpeed, weekendSpeed uint8, dayToSpeeds [][]float64, timeResolutionMinutes int) blob.BlobData {
	return blob.NewBlobDataFromArrays(weekDaySpeed, weekendSpeed, dayToSpeeds, timeResolutionMinutes)
}

// Encode encodes data into its PSP wire format using the package-level
// default codec (zlib compression, matching the original converter).
func Encode(data blob.BlobData) ([]byte, error) {
	return defaultCodec.Encode(data)
}

// Decode parses an encoded PSP blob using the package-level default codec.
func Decode(encoded []byte) (blob.BlobData, error) {
	return defaultCodec.Decode(encoded)
}

// HasSupportedVersion reports whether encoded's version byte is one this
// package can decode.
func HasSupportedVersion(encoded []byte) bool {
	return defaultCodec.HasSupportedVersion(encoded)
}

// SetMeanSpeeds overwrites encoded's mean-speed bytes in place, leaving the
// rest of the blob untouched. encoded must have been produced by Encode (or
// an equivalent blob.BlobCodec) with a supported version.
func SetMeanSpeeds(encoded []byte, weekDaySpeed, weekendSpeed uint8) error {
	return defaultCodec.SetMeanSpeeds(encoded, weekDaySpeed, weekendSpeed)
}

// AsEncoded returns the speed, in km/h, that speed would decode to after a
// round trip through FlexFloat10 quantization.
func AsEncoded(speed float64) float64 {
	return defaultCodec.AsEncoded(speed)
}

// ToText renders speed as it would appear in a human-readable export,
// clamped and quantized the same way Encode would store it.
func ToText(speed float64) string {
	return defaultCodec.ToText(speed)
}
