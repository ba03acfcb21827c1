package encoding

import "github.com/speedgraph/psp/errs"

// maxVarInt16Bytes is the maximum number of bytes a VarInt16-encoded
// value can occupy: a 16-bit value zig-zagged from a signed 16-bit delta
// needs at most three base-128 groups.
const maxVarInt16Bytes = 3

// AppendVarInt16 appends the base-128 variable-length encoding of value
// to dst and returns the extended slice. Values up to 0x7F take one byte,
// up to 0x3FFF take two, and the rest take three.
func AppendVarInt16(dst []byte, value uint16) []byte {
	v := value
	for v >= 0x80 {
		dst = append(dst, byte(v&0x7F)|0x80)
		v >>= 7
	}

	return append(dst, byte(v))
}

// VarInt16Len reports the number of bytes AppendVarInt16 would emit for
// value, without allocating.
func VarInt16Len(value uint16) int {
	switch {
	case value <= 0x7F:
		return 1
	case value <= 0x3FFF:
		return 2
	default:
		return 3
	}
}

// DecodeVarInt16 reads a base-128 variable-length value from the start of
// data, returning the decoded value and the number of bytes consumed.
//
// It returns errs.ErrTruncatedProfile if data ends before a terminating
// byte (top bit clear) is found, and errs.ErrTruncatedVarInt if more than
// three bytes would be required, which cannot happen for a value produced
// by a conforming encoder.
func DecodeVarInt16(data []byte) (uint16, int, error) {
	var result uint32

	for i := 0; i < maxVarInt16Bytes; i++ {
		if i >= len(data) {
			return 0, 0, errs.ErrTruncatedProfile
		}

		b := data[i]
		result |= uint32(b&0x7F) << (7 * i)
		if b&0x80 == 0 {
			return uint16(result), i + 1, nil //nolint:gosec
		}
	}

	return 0, 0, errs.ErrTruncatedVarInt
}
