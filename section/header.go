package section

import (
	"fmt"

	"github.com/speedgraph/psp/errs"
	"github.com/speedgraph/psp/format"
)

// outResFullDay is the on-wire substitute written for a time resolution
// of 1440 minutes (one bin per day), since 1440 itself does not fit in a
// byte.
const outResFullDay = 0

// HeaderSize is the fixed size, in bytes, of the profile header.
const HeaderSize = 2

// Header is the two-byte profile header that follows the mean-speed bytes
// whenever a blob carries at least one daily speed profile.
type Header struct {
	// TimeResolutionMinutes is the width of one time bin, in minutes. It
	// always divides 1440.
	TimeResolutionMinutes int

	// DaysBitSet has bit d set (LSB = Sunday, bit 6 = Saturday) iff day d
	// carries a profile.
	DaysBitSet uint8
}

// DayMask returns the bitset mask for the given day index (0 = Sunday,
// 6 = Saturday).
func DayMask(day int) uint8 {
	return 1 << uint(day) //nolint:gosec
}

// IsRelevantDay reports whether the header's bitset has the given day's
// bit set.
func (h Header) IsRelevantDay(day int) bool {
	return h.DaysBitSet&DayMask(day) != 0
}

// Encode appends the header's two bytes (outRes, daysBitSet) to dst.
//
// It returns errs.ErrResolutionTooLarge if TimeResolutionMinutes, after
// the 1440->0 substitution, does not fit in a single byte.
func (h Header) Encode(dst []byte) ([]byte, error) {
	outRes := h.TimeResolutionMinutes
	if outRes == format.MinutesPerDay {
		outRes = outResFullDay
	}

	if outRes > 0xFF {
		return nil, fmt.Errorf("%w: %d", errs.ErrResolutionTooLarge, h.TimeResolutionMinutes)
	}

	return append(dst, byte(outRes), h.DaysBitSet), nil
}

// DecodeHeader reads a two-byte profile header from the start of data.
func DecodeHeader(data []byte) (Header, int, error) {
	if len(data) < HeaderSize {
		return Header{}, 0, errs.ErrTruncatedBlob
	}

	outRes := int(data[0])
	resolution := outRes
	if outRes == outResFullDay {
		resolution = format.MinutesPerDay
	}

	return Header{
		TimeResolutionMinutes: resolution,
		DaysBitSet:            data[1],
	}, HeaderSize, nil
}
